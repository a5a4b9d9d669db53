package rootfind

import "math"

// Secant finds x such that f(x) equals the configured target starting from
// two initial guesses, in either order, interpolating through the two most
// recent points. No bracket is required and none is validated, so
// convergence is not guaranteed: on unfavorable objectives the iteration may
// wander or diverge until the budget runs out.
//
// Each iteration short-circuits when the older point is an exact root, then
// accepts the newer point when the approximate relative error between the
// two falls below Settings.MaxError, and otherwise replaces the older point
// with the x-intercept of the secant line. Equal function values at the two
// points fail with ErrZeroDenominator; exhausting Settings.MaxIterations
// fails with ErrMaxIterations.
func Secant(f Objective, x0, x1 float64, s *Settings) (*Result, error) {
	sess := newSession(MethodSecant, f, s)

	f0 := sess.solve(x0)
	for i := 0; i < sess.cfg.MaxIterations; i++ {
		if f0 == 0 {
			sess.record(i, x0, math.NaN())
			return sess.exactRoot(x0, i)
		}

		relErr := RelativeError(x0, x1)
		sess.record(i, x1, relErr)
		if relErr < sess.cfg.MaxError {
			return sess.converged(x1, i, relErr)
		}

		f1 := sess.solve(x1)
		if f0 == f1 {
			return sess.zeroDenominator(i, x0, x1)
		}
		x2 := x1 - f1*(x0-x1)/(f0-f1)
		x0, f0, x1 = x1, f1, x2
	}
	return sess.exhausted()
}
