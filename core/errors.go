package core

import "errors"

// Sentinel errors for configuration and evaluation.
//
// Engines return these sentinels (possibly wrapped with fmt.Errorf("...: %w"))
// and tests match them via errors.Is. Engines never panic on user input and
// never return NaN in place of an error.
var (
	// ErrBadScale indicates a renormalization scale μ² ≤ 0 or non-finite.
	ErrBadScale = errors.New("core: renormalization scale must be positive and finite")

	// ErrBadThreshold indicates a negative or non-finite on-shell threshold.
	ErrBadThreshold = errors.New("core: on-shell threshold must be non-negative and finite")

	// ErrBadConvention indicates an unknown unit convention.
	ErrBadConvention = errors.New("core: unknown unit convention")

	// ErrDomain indicates a kinematic input outside the supported
	// analytic-continuation region, e.g. a squared mass with positive
	// imaginary part (violating the causal −i0 prescription).
	ErrDomain = errors.New("core: input outside supported analytic region")

	// ErrSingular indicates a genuinely non-regularizable configuration,
	// e.g. a bubble with p = m1 = m2 = 0. Such points have no finite
	// dimensionally-regularized value and are surfaced, never replaced by
	// NaN or an arbitrary number.
	ErrSingular = errors.New("core: kinematic point has no regularized value")

	// ErrUnsupported indicates a recognized configuration with no
	// implemented formula branch in this version.
	ErrUnsupported = errors.New("core: configuration not supported by any formula branch")
)
