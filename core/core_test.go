package core_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := core.DefaultConfig()

	assert.Equal(t, 1.0, cfg.MuSquared())
	assert.Equal(t, 1e-10, cfg.Threshold())
	assert.Equal(t, core.RawConvention, cfg.Convention())
	assert.Equal(t, complex(1, 0), cfg.Normalization())
	assert.NotPanics(t, func() { cfg.Warn("probe") })
}

func TestNewConfig_Options(t *testing.T) {
	cfg, err := core.NewConfig(
		core.WithRenormalizationScale(91.1876*91.1876),
		core.WithOnShellThreshold(1e-8),
		core.WithConvention(core.FeynmanConvention),
	)
	require.NoError(t, err)

	assert.InDelta(t, 8315.18, cfg.MuSquared(), 0.01)
	assert.Equal(t, 1e-8, cfg.Threshold())
	assert.Equal(t, complex(core.ToFeynman, 0), cfg.Normalization())
}

func TestNewConfig_Rejections(t *testing.T) {
	cases := []struct {
		name string
		opt  core.Option
		want error
	}{
		{"zero scale", core.WithRenormalizationScale(0), core.ErrBadScale},
		{"negative scale", core.WithRenormalizationScale(-1), core.ErrBadScale},
		{"nan scale", core.WithRenormalizationScale(math.NaN()), core.ErrBadScale},
		{"inf scale", core.WithRenormalizationScale(math.Inf(1)), core.ErrBadScale},
		{"negative threshold", core.WithOnShellThreshold(-1e-12), core.ErrBadThreshold},
		{"nan threshold", core.WithOnShellThreshold(math.NaN()), core.ErrBadThreshold},
		{"unknown convention", core.WithConvention(core.Convention(99)), core.ErrBadConvention},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewConfig(tc.opt)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConfig_Raw(t *testing.T) {
	cfg, err := core.NewConfig(core.WithConvention(core.FeynmanConvention))
	require.NoError(t, err)

	raw := cfg.Raw()
	assert.Equal(t, complex(1, 0), raw.Normalization())
	// The receiver is a value: the original keeps its convention.
	assert.Equal(t, core.FeynmanConvention, cfg.Convention())
	assert.Equal(t, cfg.MuSquared(), raw.MuSquared())
}

func TestConfig_WarnRouting(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg, err := core.NewConfig(core.WithLogger(logger))
	require.NoError(t, err)

	cfg.Warn("degenerate branch", "det", 1e-14)
	assert.Contains(t, buf.String(), "degenerate branch")
	assert.Contains(t, buf.String(), "det")
}

func TestResult_Accessors(t *testing.T) {
	r := core.NewResult(complex(1, 2), complex(3, 0), complex(0, -4))

	assert.Equal(t, complex(1, 2), r.Epsilon0())
	assert.Equal(t, complex(3, 0), r.EpsilonMinus1())
	assert.Equal(t, complex(0, -4), r.EpsilonMinus2())
}

func TestResult_Combinators(t *testing.T) {
	a := core.NewResult(1, 2, 3)
	b := core.NewResult(10, 20, 30)

	sum := a.AddScaled(b, complex(0.5, 0))
	assert.Equal(t, complex(6, 0), sum.Epsilon0())
	assert.Equal(t, complex(12, 0), sum.EpsilonMinus1())
	assert.Equal(t, complex(18, 0), sum.EpsilonMinus2())

	scaled := a.Scaled(complex(0, 1))
	assert.Equal(t, complex(0, 1), scaled.Epsilon0())
	assert.Equal(t, complex(0, 2), scaled.EpsilonMinus1())

	shifted := a.ShiftEpsilon0(complex(-1, 0))
	assert.Equal(t, complex(0, 0), shifted.Epsilon0())
	assert.Equal(t, a.EpsilonMinus1(), shifted.EpsilonMinus1())

	// Combinators never mutate the receiver.
	assert.Equal(t, complex(1, 0), a.Epsilon0())
}

func TestResult_String(t *testing.T) {
	s := core.NewResult(1, 0, 0).String()
	assert.Contains(t, s, "ε⁰")
	assert.Contains(t, s, "ε⁻²")
}
