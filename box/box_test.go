package box_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/box"
	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
)

// simplexOracle integrates 1/Δ² over the Feynman simplex by nested
// composite Simpson rules, the raw D₀ wherever Δ stays strictly
// positive there (spacelike or below-threshold kinematics with positive
// masses).
func simplexOracle(pt kinematics.FourPoint) float64 {
	s := kinematics.CayleyFour(pt)
	delta := func(z1, z2, z3 float64) float64 {
		z := [4]float64{z1, z2, z3, 1 - z1 - z2 - z3}
		var d float64
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				d += z[i] * real(s[i][j]) * z[j]
			}
		}

		return d / 2
	}

	simpson := func(w float64, g func(float64) float64) float64 {
		const n = 160
		h := w / n
		sum := g(0) + g(w)
		for i := 1; i < n; i++ {
			wgt := 2.0
			if i%2 == 1 {
				wgt = 4.0
			}
			sum += wgt * g(float64(i) * h)
		}

		return sum * h / 3
	}

	return simpson(1, func(x float64) float64 {
		return simpson(1-x, func(y float64) float64 {
			return simpson(1-x-y, func(z float64) float64 {
				d := delta(x, y, z)

				return 1 / (d * d)
			})
		})
	})
}

func evalReal(t *testing.T, cfg core.Config, p [6]float64, m [4]float64) core.Result {
	t.Helper()
	res, err := box.Evaluate(
		complex(p[0], 0), complex(p[1], 0), complex(p[2], 0),
		complex(p[3], 0), complex(p[4], 0), complex(p[5], 0),
		complex(m[0], 0), complex(m[1], 0), complex(m[2], 0), complex(m[3], 0), cfg)
	require.NoError(t, err)

	return res
}

func point(p [6]float64, m [4]float64) kinematics.FourPoint {
	return kinematics.FourPoint{
		P1: complex(p[0], 0), P2: complex(p[1], 0), P3: complex(p[2], 0),
		P4: complex(p[3], 0), P12: complex(p[4], 0), P23: complex(p[5], 0),
		M1: complex(m[0], 0), M2: complex(m[1], 0), M3: complex(m[2], 0),
		M4: complex(m[3], 0),
	}
}

func TestEvaluate_GenericOracle(t *testing.T) {
	cfg := core.DefaultConfig()

	// Spacelike legs and channels, distinct masses: the full reduction
	// including the six-dimensional remainder.
	p := [6]float64{-1.0, -1.2, -1.4, -1.6, -2.0, -2.2}
	m := [4]float64{0.5, 0.6, 0.7, 0.8}
	got := evalReal(t, cfg, p, m)
	want := simplexOracle(point(p, m))

	assert.Equal(t, complex(0, 0), got.EpsilonMinus2())
	assert.Equal(t, complex(0, 0), got.EpsilonMinus1())
	assert.InDelta(t, want, real(got.Epsilon0()), 1e-7)
	assert.InDelta(t, 0, imag(got.Epsilon0()), 1e-10)
}

func TestEvaluate_LightLikeLegsOracle(t *testing.T) {
	cfg := core.DefaultConfig()

	// Two light-like legs with equal massive lines, everything below
	// threshold: finite, with the poles of all four pinched triangles
	// cancelling exactly.
	p := [6]float64{0.01, 0.01, 0.001, 0, 0.01, 0}
	m := [4]float64{0.02, 0.02, 0.02, 0.02}
	got := evalReal(t, cfg, p, m)
	want := simplexOracle(point(p, m))

	assert.Equal(t, complex(0, 0), got.EpsilonMinus2())
	assert.Equal(t, complex(0, 0), got.EpsilonMinus1())
	assert.InDelta(t, want, real(got.Epsilon0()), 1e-3*want)
	assert.InDelta(t, 0, imag(got.Epsilon0()), 1e-8)
}

func TestEvaluate_DegenerateGramReduction(t *testing.T) {
	cfg := core.DefaultConfig()

	// detG(p) = 0 exactly: the shifted-box weight vanishes and the
	// triangle reduction alone is exact.
	p := [6]float64{-1.0, -2.0, -1.0, -5.0, -2.5, -2.5}
	m := [4]float64{0.5, 0.6, 0.7, 0.8}
	got := evalReal(t, cfg, p, m)
	want := simplexOracle(point(p, m))

	assert.Equal(t, complex(0, 0), got.EpsilonMinus1())
	assert.InDelta(t, want, real(got.Epsilon0()), 1e-7)
	assert.InDelta(t, 0, imag(got.Epsilon0()), 1e-10)
}

func TestEvaluate_AllSoftMomenta(t *testing.T) {
	cfg := core.DefaultConfig()

	// Distinct masses against the quadrature oracle.
	got := evalReal(t, cfg, [6]float64{}, [4]float64{0.5, 0.4, 0.3, 0.2})
	want := simplexOracle(point([6]float64{}, [4]float64{0.5, 0.4, 0.3, 0.2}))
	assert.Equal(t, complex(0, 0), got.EpsilonMinus1())
	assert.InDelta(t, want, real(got.Epsilon0()), 1e-8)

	// Equal masses: D₀ = 1/(6m⁴) exactly, scale independent.
	got = evalReal(t, cfg, [6]float64{}, [4]float64{0.25, 0.25, 0.25, 0.25})
	assert.InDelta(t, 8.0/3, real(got.Epsilon0()), 1e-13)
	assert.InDelta(t, 0, imag(got.Epsilon0()), 1e-14)

	// A coincident pair joins the distinct-mass form continuously.
	near := evalReal(t, cfg, [6]float64{}, [4]float64{0.5, 0.3 + 1e-7, 0.3, 0.2})
	limit := evalReal(t, cfg, [6]float64{}, [4]float64{0.5, 0.3, 0.3, 0.2})
	assert.InDelta(t, 0, cmplx.Abs(near.Epsilon0()-limit.Epsilon0()), 1e-5)
}

func TestEvaluate_RotationSymmetry(t *testing.T) {
	cfg := core.DefaultConfig()

	// Rotating the external legs by one slot maps (p12, p23) to
	// (p23, p12) and drags the lines along.
	a := evalReal(t, cfg,
		[6]float64{-1.0, -1.2, -1.4, -1.6, -2.0, -2.2}, [4]float64{0.5, 0.6, 0.7, 0.8})
	b := evalReal(t, cfg,
		[6]float64{-1.2, -1.4, -1.6, -1.0, -2.2, -2.0}, [4]float64{0.6, 0.7, 0.8, 0.5})

	assert.InDelta(t, 0, cmplx.Abs(a.Epsilon0()-b.Epsilon0()), 1e-10)
}

func TestEvaluate_ScaleIndependence(t *testing.T) {
	base := core.DefaultConfig()
	shifted, err := core.NewConfig(core.WithRenormalizationScale(3.0))
	require.NoError(t, err)

	// A finite box carries no poles, so μ² drops out entirely.
	p := [6]float64{-1.0, -1.2, -1.4, -1.6, -2.0, -2.2}
	m := [4]float64{0.5, 0.6, 0.7, 0.8}
	a := evalReal(t, base, p, m)
	b := evalReal(t, shifted, p, m)

	assert.InDelta(t, 0, cmplx.Abs(a.Epsilon0()-b.Epsilon0()), 1e-12)
}

func TestEvaluate_ComplexMasses(t *testing.T) {
	cfg := core.DefaultConfig()

	wide, err := box.Evaluate(-1.0, -1.2, -1.4, -1.6, -2.0, -2.2,
		complex(0.5, -1e-3), complex(0.6, -1e-3), complex(0.7, -1e-3),
		complex(0.8, -1e-3), cfg)
	require.NoError(t, err)
	narrow := evalReal(t, cfg,
		[6]float64{-1.0, -1.2, -1.4, -1.6, -2.0, -2.2}, [4]float64{0.5, 0.6, 0.7, 0.8})

	assert.InDelta(t, 0, cmplx.Abs(wide.Epsilon0()-narrow.Epsilon0()), 1e-2)
}

// TestEvaluate_AboveThreshold crosses the s-channel threshold with real
// masses: the six-dimensional remainder switches to the deformed
// contour and the box acquires an absorptive part.
func TestEvaluate_AboveThreshold(t *testing.T) {
	cfg := core.DefaultConfig()

	res, err := box.Evaluate(-1.0, -1.0, -1.0, -1.0, 6.0, -1.0,
		0.25, 0.25, 0.25, 0.25, cfg)
	require.NoError(t, err)

	want := complex(0.117673292189, 0.667066330987)
	assert.InDelta(t, 0, cmplx.Abs(res.Epsilon0()-want), 1e-5)
	assert.Equal(t, complex(0, 0), res.EpsilonMinus1())
	assert.Greater(t, imag(res.Epsilon0()), 0.0)

	// Narrow-width masses must approach the real-mass value.
	narrow, err := box.Evaluate(-1.0, -1.0, -1.0, -1.0, 6.0, -1.0,
		complex(0.25, -1e-3), complex(0.25, -1e-3),
		complex(0.25, -1e-3), complex(0.25, -1e-3), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(narrow.Epsilon0()-res.Epsilon0()), 2e-2)
}

func TestEvaluate_FeynmanConvention(t *testing.T) {
	raw := core.DefaultConfig()
	fey, err := core.NewConfig(core.WithConvention(core.FeynmanConvention))
	require.NoError(t, err)

	p := [6]float64{-1.0, -1.2, -1.4, -1.6, -2.0, -2.2}
	m := [4]float64{0.5, 0.6, 0.7, 0.8}
	a := evalReal(t, raw, p, m)
	b, err := box.Evaluate(
		complex(p[0], 0), complex(p[1], 0), complex(p[2], 0),
		complex(p[3], 0), complex(p[4], 0), complex(p[5], 0),
		complex(m[0], 0), complex(m[1], 0), complex(m[2], 0), complex(m[3], 0), fey)
	require.NoError(t, err)

	assert.Equal(t, a.Scaled(complex(core.ToFeynman, 0)), b)
}

func TestEvaluate_Errors(t *testing.T) {
	cfg := core.DefaultConfig()

	_, err := box.Evaluate(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, cfg)
	assert.ErrorIs(t, err, core.ErrSingular)

	// The massless on-shell box is infrared divergent.
	_, err = box.Evaluate(0, 0, 0, 0, -2.0, -3.0, 0, 0, 0, 0, cfg)
	assert.ErrorIs(t, err, core.ErrUnsupported)

	_, err = box.Evaluate(-1.0, -1.2, -1.4, -1.6, -2.0, -2.2,
		complex(0.5, 0.1), 0.6, 0.7, 0.8, cfg)
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = box.Evaluate(-1.0, -1.2, -1.4, -1.6, -2.0, -2.2,
		0.5, 0.6, 0.7, 0.8, core.Config{})
	assert.ErrorIs(t, err, core.ErrBadScale)
}
