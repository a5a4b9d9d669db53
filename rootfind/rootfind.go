package rootfind

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"go.uber.org/zap"
)

// Defaults applied by DefaultSettings, and by the solvers when the
// corresponding Settings fields are zero or negative.
const (
	// DefaultMaxError is the approximate relative error below which an
	// estimate is accepted.
	DefaultMaxError = 1e-5

	// DefaultMaxIterations bounds the number of iterations of one solve.
	DefaultMaxIterations = 100
)

// Method names, as they appear in errors, log fields, and Recorder labels.
const (
	MethodBisection     = "bisection"
	MethodFalsePosition = "false-position"
	MethodSecant        = "secant"
)

// Outcome labels passed to a Recorder at every terminal.
const (
	OutcomeExactRoot       = "exact-root"
	OutcomeConverged       = "converged"
	OutcomeInvalidBracket  = "invalid-bracket"
	OutcomeMaxIterations   = "max-iterations"
	OutcomeZeroDenominator = "zero-denominator"
)

// Objective is the scalar function whose root is sought. Solvers treat it as
// a black box: no assumptions beyond continuity on the interval of interest,
// and it is expected to be pure (evaluating the same point twice yields the
// same value).
type Objective func(x float64) float64

// Settings contains per-call configuration for the solvers.
//
// The zero value is usable: zero or negative numeric fields fall back to the
// package defaults, and a nil *Settings means all defaults. A solve never
// mutates the Settings it is given.
type Settings struct {
	// Target is the right-hand side y of f(x) = y. Ignored when
	// TargetFunc is set.
	Target float64

	// TargetFunc is an optional functional right-hand side y(x); when
	// non-nil the solvers seek f(x) = y(x).
	TargetFunc Objective

	// MaxError is the approximate relative error below which an estimate
	// is accepted. Defaults to DefaultMaxError.
	MaxError float64

	// MaxIterations bounds the iteration count. Defaults to
	// DefaultMaxIterations.
	MaxIterations int

	// Verbose enables human-readable status lines on Output.
	Verbose bool

	// Output receives the verbose status lines. Defaults to os.Stdout.
	Output io.Writer

	// Logger receives debug-level iteration traces. Defaults to a nop
	// logger.
	Logger *zap.Logger

	// Recorder, when non-nil, observes the terminal outcome of the solve.
	Recorder Recorder
}

// DefaultSettings returns the default solver configuration.
func DefaultSettings() *Settings {
	return &Settings{
		MaxError:      DefaultMaxError,
		MaxIterations: DefaultMaxIterations,
	}
}

// withDefaults returns a normalized copy of s. A nil receiver yields the
// defaults.
func (s *Settings) withDefaults() Settings {
	var cfg Settings
	if s != nil {
		cfg = *s
	}
	if cfg.MaxError <= 0 {
		cfg.MaxError = DefaultMaxError
	}
	if cfg.MaxIterations < 1 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Status identifies how a solve arrived at its root.
type Status int

const (
	// StatusConverged marks an estimate accepted because the approximate
	// relative error fell below Settings.MaxError.
	StatusConverged Status = iota + 1

	// StatusExactRoot marks an estimate at which the effective objective
	// evaluated to exactly zero.
	StatusExactRoot
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return OutcomeConverged
	case StatusExactRoot:
		return OutcomeExactRoot
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Iteration is one assessed estimate from a solve.
type Iteration struct {
	// Index is the zero-based iteration number.
	Index int

	// Estimate is the root estimate assessed on this iteration.
	Estimate float64

	// RelativeError is the approximate relative error of the estimate
	// against its predecessor. NaN on an exact-root entry, where no error
	// is computed.
	RelativeError float64
}

// Result contains the outcome of a successful solve. Failed solves return a
// nil Result alongside the error; no partial results are produced.
type Result struct {
	// Root is the accepted estimate.
	Root float64

	// Status reports whether the root was exact or accepted by tolerance.
	Status Status

	// Iterations is the zero-based index of the iteration that produced
	// the root.
	Iterations int

	// RelativeError is the approximate relative error of the accepted
	// estimate. NaN for an exact root.
	RelativeError float64

	// FuncEvals counts evaluations of the effective objective, including
	// those spent validating a bracket.
	FuncEvals int

	// History holds one entry per assessed estimate, in order.
	History []Iteration
}

// Recorder observes solve outcomes, for example to feed metrics. A Recorder
// must be safe for concurrent use if solves run concurrently. The metrics
// subpackage provides a Prometheus-backed implementation.
type Recorder interface {
	RecordSolve(method, outcome string, iterations int, elapsed time.Duration)
}

// RelativeError returns the approximate relative error between successive
// estimates of an iterative method, |(current - previous) / current|. When
// current is zero the error is undefined and +Inf is returned, which no
// finite tolerance accepts.
func RelativeError(previous, current float64) float64 {
	if current == 0 {
		return math.Inf(1)
	}
	return math.Abs((current - previous) / current)
}

// session carries the state shared by one solve call: the normalized
// configuration, the effective objective, and the bookkeeping every solver
// maintains.
type session struct {
	method  string
	cfg     Settings
	solve   Objective
	logger  *zap.Logger
	history []Iteration
	evals   int
	start   time.Time
}

// newSession normalizes the settings and resolves the effective objective
// solve(x) = f(x) - y once, counting evaluations as it is called.
func newSession(method string, f Objective, s *Settings) *session {
	cfg := s.withDefaults()
	sess := &session{
		method: method,
		cfg:    cfg,
		logger: cfg.Logger.Named(method),
		start:  time.Now(),
	}
	rhs := cfg.TargetFunc
	if rhs == nil {
		y := cfg.Target
		rhs = func(float64) float64 { return y }
	}
	sess.solve = func(x float64) float64 {
		sess.evals++
		return f(x) - rhs(x)
	}
	return sess
}

// record appends one assessed estimate to the history and traces it.
func (s *session) record(index int, estimate, relErr float64) {
	s.history = append(s.history, Iteration{
		Index:         index,
		Estimate:      estimate,
		RelativeError: relErr,
	})
	s.logger.Debug("Assessed estimate",
		zap.Int("iteration", index),
		zap.Float64("estimate", estimate),
		zap.Float64("relative_error", relErr),
	)
}

// observe reports the terminal outcome to the Recorder, if any.
func (s *session) observe(outcome string, iterations int) {
	if s.cfg.Recorder == nil {
		return
	}
	s.cfg.Recorder.RecordSolve(s.method, outcome, iterations, time.Since(s.start))
}

// succeed finalizes a successful result with the evaluation count and the
// iteration history.
func (s *session) succeed(res *Result) (*Result, error) {
	res.FuncEvals = s.evals
	res.History = s.history
	outcome := res.Status.String()
	s.observe(outcome, res.Iterations)
	s.logger.Debug("Solve succeeded",
		zap.Float64("root", res.Root),
		zap.String("status", outcome),
		zap.Int("iterations", res.Iterations),
		zap.Int("func_evals", res.FuncEvals),
	)
	return res, nil
}

// fail finalizes a failed solve. No partial result accompanies a failure.
func (s *session) fail(outcome string, iterations int, err *Error) (*Result, error) {
	s.observe(outcome, iterations)
	s.logger.Debug("Solve failed",
		zap.String("outcome", outcome),
		zap.Int("iterations", iterations),
		zap.Error(err),
	)
	return nil, err
}

// exactRoot is the terminal for an estimate whose effective objective value
// is exactly zero.
func (s *session) exactRoot(root float64, iteration int) (*Result, error) {
	s.reportExactRoot(root, iteration)
	return s.succeed(&Result{
		Root:          root,
		Status:        StatusExactRoot,
		Iterations:    iteration,
		RelativeError: math.NaN(),
	})
}

// converged is the terminal for an estimate accepted by tolerance.
func (s *session) converged(root float64, iteration int, relErr float64) (*Result, error) {
	s.reportConverged(root, iteration, relErr)
	return s.succeed(&Result{
		Root:          root,
		Status:        StatusConverged,
		Iterations:    iteration,
		RelativeError: relErr,
	})
}

// invalidBracket is the terminal for an interval with no guaranteed sign
// change.
func (s *session) invalidBracket(xa, fa, xb, fb float64) (*Result, error) {
	err := newErrorf(s.method, "validate", ErrInvalidBracket,
		"f(%g)=%g and f(%g)=%g have the same sign", xa, fa, xb, fb)
	return s.fail(OutcomeInvalidBracket, 0, err)
}

// zeroDenominator is the terminal for a vanishing interpolation denominator.
func (s *session) zeroDenominator(iteration int, x0, x1 float64) (*Result, error) {
	err := newErrorf(s.method, "interpolate", ErrZeroDenominator,
		"f(%g) == f(%g) at iteration %d", x0, x1, iteration)
	return s.fail(OutcomeZeroDenominator, iteration, err)
}

// exhausted is the terminal for an iteration budget that ran out.
func (s *session) exhausted() (*Result, error) {
	s.reportExhausted()
	err := newErrorf(s.method, "iterate", ErrMaxIterations,
		"no root found in %d iterations within an approximate error tolerance of %.3e",
		s.cfg.MaxIterations, s.cfg.MaxError)
	return s.fail(OutcomeMaxIterations, s.cfg.MaxIterations, err)
}
