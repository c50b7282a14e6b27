package core

import (
	"io"
	"log/slog"
	"math"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMuSquared is the default renormalization scale μ².
	// Every logarithmic term is measured against it.
	DefaultMuSquared = 1.0

	// DefaultThreshold is the default relative on-shell threshold.
	// Two kinematic quantities closer than Threshold·Scale(point) are
	// treated as coincident and routed through a limiting branch.
	DefaultThreshold = 1e-10
)

// ToFeynman converts a raw (Ellis–Zanderighi style) coefficient to the
// textbook Feynman-diagram normalization. Numerically −1/(16π²).
const ToFeynman = -1.0 / (16.0 * math.Pi * math.Pi)

// Convention selects the multiplicative normalization applied to every
// returned coefficient.
type Convention int

const (
	// RawConvention returns coefficients in the engine's native
	// normalization (loop measure dᵈℓ/(iπ^{d/2}), rΓ stripped).
	RawConvention Convention = iota

	// FeynmanConvention multiplies every coefficient by ToFeynman.
	FeynmanConvention
)

// Config carries the full evaluation context of a single engine call.
// It is a value type: callers hold it, engines receive a copy, nothing
// mutates it after construction.
type Config struct {
	muSquared  float64
	threshold  float64
	convention Convention
	logger     *slog.Logger
}

// Option mutates a Config under construction and may reject bad values.
type Option func(*Config) error

// WithRenormalizationScale sets μ². Fails with ErrBadScale unless mu2 is
// finite and strictly positive.
func WithRenormalizationScale(mu2 float64) Option {
	return func(c *Config) error {
		if !(mu2 > 0) || math.IsInf(mu2, 0) {
			return ErrBadScale
		}
		c.muSquared = mu2

		return nil
	}
}

// WithOnShellThreshold sets the relative degeneracy tolerance.
// Fails with ErrBadThreshold unless eps is finite and non-negative.
func WithOnShellThreshold(eps float64) Option {
	return func(c *Config) error {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			return ErrBadThreshold
		}
		c.threshold = eps

		return nil
	}
}

// WithConvention selects the output normalization.
func WithConvention(conv Convention) Option {
	return func(c *Config) error {
		if conv != RawConvention && conv != FeynmanConvention {
			return ErrBadConvention
		}
		c.convention = conv

		return nil
	}
}

// WithLogger routes diagnostics (precision warnings) to l.
// A nil l restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.logger = l

		return nil
	}
}

// DefaultConfig returns the documented defaults: μ² = 1, relative
// threshold 1e-10, raw convention, discarding logger.
func DefaultConfig() Config {
	return Config{
		muSquared:  DefaultMuSquared,
		threshold:  DefaultThreshold,
		convention: RawConvention,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// NewConfig builds a Config from the defaults plus opts, failing fast on
// the first invalid option.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Config{}, err
		}
	}

	return c, nil
}

// MuSquared returns the renormalization scale μ².
func (c Config) MuSquared() float64 { return c.muSquared }

// Threshold returns the relative on-shell threshold.
func (c Config) Threshold() float64 { return c.threshold }

// Convention returns the selected output normalization.
func (c Config) Convention() Convention { return c.convention }

// Raw returns a copy with RawConvention selected. Composite reductions
// evaluate subintegrals through it and apply the outer normalization once
// at the end.
func (c Config) Raw() Config {
	c.convention = RawConvention

	return c
}

// Normalization returns the multiplicative constant implied by the
// convention: 1 for RawConvention, ToFeynman for FeynmanConvention.
func (c Config) Normalization() complex128 {
	if c.convention == FeynmanConvention {
		return complex(ToFeynman, 0)
	}

	return 1
}

// Warn emits a non-fatal precision diagnostic. Engines call it when a
// near-degenerate point is evaluated through a limiting branch whose
// guaranteed accuracy is reduced.
func (c Config) Warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
