package specfn_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/oneloop/specfn"
)

// dilogSeries is the defining power series Σ zⁿ/n², an independent oracle
// for arguments well inside the unit disc.
func dilogSeries(z complex128) complex128 {
	var sum, pow complex128 = 0, 1
	for n := 1; n <= 200; n++ {
		pow *= z
		sum += pow / complex(float64(n*n), 0)
	}

	return sum
}

func TestDilog_SpecialValues(t *testing.T) {
	assert.Equal(t, complex(0, 0), specfn.Dilog(0))
	assert.InDelta(t, specfn.Pi2Over6, real(specfn.Dilog(1)), 1e-15)
	assert.InDelta(t, -specfn.Pi2Over6/2, real(specfn.Dilog(-1)), 1e-15)

	ln2 := math.Log(2)
	assert.InDelta(t, specfn.Pi2Over6/2-ln2*ln2/2, real(specfn.Dilog(0.5)), 1e-15)
}

func TestDilog_SeriesOracle(t *testing.T) {
	for _, z := range []complex128{
		0.6,
		-0.55,
		complex(0.3, 0.4),
		complex(-0.2, -0.5),
		complex(0.45, -0.35),
	} {
		got := specfn.Dilog(z)
		want := dilogSeries(z)
		assert.InDeltaf(t, 0, cmplx.Abs(got-want), 1e-14, "z=%v", z)
	}
}

func TestDilog_ReflectionIdentity(t *testing.T) {
	// Li₂(z) + Li₂(1−z) = π²/6 − Log z · Log(1−z), principal branch.
	for _, z := range []complex128{
		complex(0.3, 0.4),
		complex(-0.8, 0.2),
		complex(1.4, -0.6),
		complex(0.5, -2.0),
	} {
		lhs := specfn.Dilog(z) + specfn.Dilog(1-z)
		rhs := complex(specfn.Pi2Over6, 0) - specfn.Log(z)*specfn.Log(1-z)
		assert.InDeltaf(t, 0, cmplx.Abs(lhs-rhs), 1e-13, "z=%v", z)
	}
}

func TestDilog_CutSides(t *testing.T) {
	// On the cut x > 1 the two edges are complex conjugates and the
	// imaginary part is ∓π·ln x.
	for _, x := range []float64{1.5, 3, 42} {
		lower := specfn.DilogS(complex(x, 0), -1)
		upper := specfn.DilogS(complex(x, 0), +1)
		assert.Equal(t, cmplx.Conj(lower), upper)
		assert.InDelta(t, -math.Pi*math.Log(x), imag(lower), 1e-13)
	}

	// The lower edge is the limit from below the axis.
	limit := specfn.Dilog(complex(3, -1e-10))
	assert.InDelta(t, 0, cmplx.Abs(limit-specfn.DilogS(3, -1)), 1e-8)
}

func TestLog_CutSides(t *testing.T) {
	ln2 := math.Log(2)

	assert.Equal(t, complex(ln2, -math.Pi), specfn.Log(-2))
	assert.Equal(t, complex(ln2, math.Pi), specfn.LogS(-2, +1))
	assert.Equal(t, complex(ln2, -math.Pi), specfn.LogS(-2, -1))

	// Off the cut LogS ignores the side and agrees with cmplx.Log.
	z := complex(3, 4)
	assert.Equal(t, cmplx.Log(z), specfn.LogS(z, +1))
	assert.Equal(t, cmplx.Log(z), specfn.LogS(z, -1))
	assert.Equal(t, complex(ln2, 0), specfn.Log(2))
}

func TestLogRat_ConsistentSides(t *testing.T) {
	// Both operands on the same cut edge: the iπ terms cancel and the
	// ratio log is real.
	got := specfn.LogRat(-2, -1, -3, -1)
	assert.InDelta(t, math.Log(2.0/3.0), real(got), 1e-15)
	assert.Equal(t, 0.0, imag(got))

	// Opposite edges leave the full 2πi winding.
	wound := specfn.LogRat(-2, +1, -3, -1)
	assert.InDelta(t, 2*math.Pi, imag(wound), 1e-15)
}
