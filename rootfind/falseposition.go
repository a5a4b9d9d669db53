package rootfind

import "math"

// FalsePosition finds x such that f(x) equals the configured target inside
// [xLower, xUpper] by the regula falsi rule: each estimate is the x-intercept
// of the secant line through the bracket endpoints. The contract matches
// Bisection: bounds in either order, the interval must bracket a sign change
// or the call fails with ErrInvalidBracket, and exhausting the budget fails
// with ErrMaxIterations.
//
// Convergence is often faster than bisection when the objective is close to
// linear over the bracket, but one endpoint can stall for many iterations on
// strongly curved objectives, so the rate is not guaranteed to beat halving.
// Equal function values at the endpoints make the secant line horizontal and
// fail with ErrZeroDenominator; on a validated bracket this is reachable
// only when both endpoints are exact roots.
func FalsePosition(f Objective, xLower, xUpper float64, s *Settings) (*Result, error) {
	sess := newSession(MethodFalsePosition, f, s)

	xa := math.Min(xLower, xUpper)
	xb := math.Max(xLower, xUpper)

	fa := sess.solve(xa)
	fb := sess.solve(xb)
	if fa*fb > 0 {
		return sess.invalidBracket(xa, fa, xb, fb)
	}

	var xc, xp float64
	for i := 0; i < sess.cfg.MaxIterations; i++ {
		if i == 0 {
			xp = xa
		} else {
			xp = xc
		}

		if fa == fb {
			return sess.zeroDenominator(i, xa, xb)
		}
		xc = xb - fb*(xa-xb)/(fa-fb)
		fc := sess.solve(xc)
		if fc == 0 {
			sess.record(i, xc, math.NaN())
			return sess.exactRoot(xc, i)
		}

		// Zero function values compare as non-positive here.
		if (fa > 0) == (fc > 0) {
			// Same sign at xa and xc: the root lies in [xc, xb].
			xa, fa = xc, fc
		} else {
			// The root lies in [xa, xc].
			xb, fb = xc, fc
		}

		relErr := RelativeError(xp, xc)
		sess.record(i, xc, relErr)
		if relErr < sess.cfg.MaxError {
			return sess.converged(xc, i, relErr)
		}
	}
	return sess.exhausted()
}
