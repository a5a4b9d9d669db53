// Package rootfind solves scalar equations f(x) = y by iterative bracketing
// and interpolation.
//
// Three methods are provided. Bisection halves a bracketing interval and is
// guaranteed to converge on a continuous objective. FalsePosition replaces
// the midpoint with the x-intercept of the secant line through the bracket
// endpoints, which often converges faster when the objective is close to
// linear over the bracket. Secant iterates on the two most recent points
// without any bracket, so it needs neither an interval nor a derivative, but
// it may diverge.
//
// All three take an optional *Settings carrying the right-hand side of the
// equation, the error tolerance, the iteration budget, and diagnostics
// hooks; a nil *Settings means the package defaults (target 0, tolerance
// 1e-5, 100 iterations). An estimate is accepted when the effective
// objective evaluates to exactly zero or when the approximate relative
// error between successive estimates falls below the tolerance. Failures
// return a nil *Result and a typed error wrapping ErrInvalidBracket,
// ErrMaxIterations, or ErrZeroDenominator.
//
// Solvers keep no shared state, so concurrent calls are safe provided the
// supplied objective, output writer, logger, and recorder are. The metrics
// subpackage provides a Prometheus collector that plugs into
// Settings.Recorder for applications that aggregate solve outcomes.
package rootfind
