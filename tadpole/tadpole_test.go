package tadpole_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/tadpole"
)

func TestEvaluate_ClosedForm(t *testing.T) {
	cfg := core.DefaultConfig()

	got, err := tadpole.Evaluate(0.25, cfg)
	require.NoError(t, err)

	assert.Equal(t, complex(0, 0), got.EpsilonMinus2())
	assert.Equal(t, complex(0.25, 0), got.EpsilonMinus1())
	assert.InDelta(t, 0.25*(1-math.Log(0.25)), real(got.Epsilon0()), 1e-15)
	assert.Equal(t, 0.0, imag(got.Epsilon0()))
}

func TestEvaluate_MasslessVanishes(t *testing.T) {
	got, err := tadpole.Evaluate(0, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, core.Result{}, got)
}

func TestEvaluate_ScaleShift(t *testing.T) {
	base := core.DefaultConfig()
	shifted, err := core.NewConfig(core.WithRenormalizationScale(4.0))
	require.NoError(t, err)

	a, err := tadpole.Evaluate(0.25, base)
	require.NoError(t, err)
	b, err := tadpole.Evaluate(0.25, shifted)
	require.NoError(t, err)

	// μ² → k·μ² adds m²·ln k to the finite part; the pole is untouched.
	assert.Equal(t, a.EpsilonMinus1(), b.EpsilonMinus1())
	assert.InDelta(t, 0.25*math.Log(4), real(b.Epsilon0()-a.Epsilon0()), 1e-15)
}

func TestEvaluate_ComplexMass(t *testing.T) {
	cfg := core.DefaultConfig()

	got, err := tadpole.Evaluate(complex(0.25, -0.05), cfg)
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, imag(got.Epsilon0()))

	// Narrow width closes onto the real-mass value.
	narrow, err := tadpole.Evaluate(complex(0.25, -1e-9), cfg)
	require.NoError(t, err)
	realMass, err := tadpole.Evaluate(0.25, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(narrow.Epsilon0()-realMass.Epsilon0()), 1e-7)
}

func TestEvaluate_FeynmanConvention(t *testing.T) {
	fey, err := core.NewConfig(core.WithConvention(core.FeynmanConvention))
	require.NoError(t, err)

	raw, err := tadpole.Evaluate(0.25, core.DefaultConfig())
	require.NoError(t, err)
	got, err := tadpole.Evaluate(0.25, fey)
	require.NoError(t, err)

	assert.Equal(t, raw.Scaled(complex(core.ToFeynman, 0)), got)
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := tadpole.Evaluate(0.25, core.Config{})
	assert.ErrorIs(t, err, core.ErrBadScale)

	_, err = tadpole.Evaluate(complex(0.25, 0.05), core.DefaultConfig())
	assert.ErrorIs(t, err, core.ErrDomain)
}
