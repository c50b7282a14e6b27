package oneloop

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/katalvlaran/oneloop/box"
	"github.com/katalvlaran/oneloop/bubble"
	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/tadpole"
	"github.com/katalvlaran/oneloop/triangle"
)

// ErrBadLogLevel indicates a verbosity name outside the accepted set.
var ErrBadLogLevel = errors.New("oneloop: unknown log level")

// levelQuiet sits above every record slog can emit.
const levelQuiet = slog.Level(128)

// Session is a caller-owned evaluation context: a core.Config guarded by
// a read/write lock plus an adjustable diagnostic verbosity. Every
// evaluation takes one consistent snapshot of the configuration at
// entry, so concurrent evaluations and setter calls never observe a
// half-applied change.
//
// The zero Session is not usable; construct one with NewSession.
type Session struct {
	mu  sync.RWMutex
	cfg core.Config
	lvl *slog.LevelVar
}

// NewSession returns a Session with the package defaults (μ² = 1,
// threshold 1e-10, raw convention) adjusted by opts. Diagnostics go to
// stderr at warning verbosity until SetLogLevel says otherwise.
func NewSession(opts ...core.Option) (*Session, error) {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	cfg, err := core.NewConfig(append([]core.Option{core.WithLogger(logger)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return &Session{cfg: cfg, lvl: lvl}, nil
}

// SetRenormalizationScale sets μ². Fails with core.ErrBadScale unless
// mu2 is finite and strictly positive.
func (s *Session) SetRenormalizationScale(mu2 float64) error {
	return s.apply(core.WithRenormalizationScale(mu2))
}

// SetOnShellThreshold sets the relative degeneracy tolerance. Fails with
// core.ErrBadThreshold on a negative or non-finite eps.
func (s *Session) SetOnShellThreshold(eps float64) error {
	return s.apply(core.WithOnShellThreshold(eps))
}

// SetUnitConvention selects the output normalization by name: "raw" for
// the engine's native coefficients, "feynman" for the textbook
// −1/(16π²) normalization.
func (s *Session) SetUnitConvention(name string) error {
	switch name {
	case "raw":
		return s.apply(core.WithConvention(core.RawConvention))
	case "feynman":
		return s.apply(core.WithConvention(core.FeynmanConvention))
	}

	return fmt.Errorf("oneloop: unit convention %q: %w", name, core.ErrBadConvention)
}

// SetLogLevel sets the diagnostic verbosity by name: quiet, error,
// warning, message or printall.
func (s *Session) SetLogLevel(name string) error {
	var lvl slog.Level
	switch name {
	case "quiet":
		lvl = levelQuiet
	case "error":
		lvl = slog.LevelError
	case "warning":
		lvl = slog.LevelWarn
	case "message":
		lvl = slog.LevelInfo
	case "printall":
		lvl = slog.LevelDebug
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, name)
	}
	s.lvl.Set(lvl)

	return nil
}

// apply rebuilds the held configuration through one option under the
// write lock, leaving it untouched when the option rejects its value.
func (s *Session) apply(opt core.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg
	if err := opt(&cfg); err != nil {
		return err
	}
	s.cfg = cfg

	return nil
}

// snapshot returns the configuration under the read lock.
func (s *Session) snapshot() core.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

// OnePoint evaluates the tadpole A₀ for internal mass m. The momentum
// arguments of all Session methods are squared invariants; the mass
// arguments are masses, squared here before they reach the engines. A
// complex mass continues the result off the real axis (Im m² ≤ 0).
func (s *Session) OnePoint(m complex128) (core.Result, error) {
	return tadpole.Evaluate(m*m, s.snapshot())
}

// TwoPoint evaluates the bubble B₀(p²; m1, m2).
func (s *Session) TwoPoint(p, m1, m2 complex128) (core.Result, error) {
	return bubble.Evaluate(p, m1*m1, m2*m2, s.snapshot())
}

// ThreePoint evaluates the triangle C₀(p1², p2², p3²; m1, m2, m3).
func (s *Session) ThreePoint(p1, p2, p3, m1, m2, m3 complex128) (core.Result, error) {
	return triangle.Evaluate(p1, p2, p3, m1*m1, m2*m2, m3*m3, s.snapshot())
}

// FourPoint evaluates the box D₀(p1²…p4², p12, p23; m1…m4).
func (s *Session) FourPoint(p1, p2, p3, p4, p12, p23, m1, m2, m3, m4 complex128) (core.Result, error) {
	return box.Evaluate(p1, p2, p3, p4, p12, p23, m1*m1, m2*m2, m3*m3, m4*m4, s.snapshot())
}

// std is the process-default Session behind the package-level surface.
var std = func() *Session {
	s, err := NewSession()
	if err != nil {
		panic(err)
	}

	return s
}()

// SetRenormalizationScale sets μ² on the default Session.
func SetRenormalizationScale(mu2 float64) error { return std.SetRenormalizationScale(mu2) }

// SetOnShellThreshold sets the degeneracy tolerance on the default Session.
func SetOnShellThreshold(eps float64) error { return std.SetOnShellThreshold(eps) }

// SetUnitConvention selects the output normalization on the default Session.
func SetUnitConvention(name string) error { return std.SetUnitConvention(name) }

// SetLogLevel sets the diagnostic verbosity on the default Session.
func SetLogLevel(name string) error { return std.SetLogLevel(name) }

// OnePoint evaluates A₀ on the default Session.
func OnePoint(m complex128) (core.Result, error) { return std.OnePoint(m) }

// TwoPoint evaluates B₀ on the default Session.
func TwoPoint(p, m1, m2 complex128) (core.Result, error) { return std.TwoPoint(p, m1, m2) }

// ThreePoint evaluates C₀ on the default Session.
func ThreePoint(p1, p2, p3, m1, m2, m3 complex128) (core.Result, error) {
	return std.ThreePoint(p1, p2, p3, m1, m2, m3)
}

// FourPoint evaluates D₀ on the default Session.
func FourPoint(p1, p2, p3, p4, p12, p23, m1, m2, m3, m4 complex128) (core.Result, error) {
	return std.FourPoint(p1, p2, p3, p4, p12, p23, m1, m2, m3, m4)
}
