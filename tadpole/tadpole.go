package tadpole

import (
	"fmt"

	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
	"github.com/katalvlaran/oneloop/specfn"
)

// Evaluate computes the tadpole A₀(m²) under cfg. The squared mass may be
// complex with non-positive imaginary part (complex-mass scheme); real
// inputs are the physical case.
func Evaluate(m complex128, cfg core.Config) (core.Result, error) {
	if !(cfg.MuSquared() > 0) {
		return core.Result{}, fmt.Errorf("tadpole: %w", core.ErrBadScale)
	}
	if !kinematics.CausalMasses(m) {
		return core.Result{}, fmt.Errorf("tadpole: Im m² > 0: %w", core.ErrDomain)
	}
	if m == 0 {
		return core.Result{}, nil
	}

	mu2 := complex(cfg.MuSquared(), 0)
	eps0 := m * (1 - specfn.Log(m/mu2))

	return core.NewResult(eps0, m, 0).Scaled(cfg.Normalization()), nil
}
