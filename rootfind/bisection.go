package rootfind

import "math"

// Bisection finds x such that f(x) equals the configured target inside
// [xLower, xUpper] by repeated interval halving. The bounds may be given in
// either order; the interval must bracket a sign change of the effective
// objective or the call fails with ErrInvalidBracket.
//
// For a continuous objective on a valid bracket convergence is guaranteed:
// each iteration halves the interval. The estimate is accepted when the
// effective objective evaluates to exactly zero, or when the approximate
// relative error between successive midpoints falls below Settings.MaxError.
// Exhausting Settings.MaxIterations fails with ErrMaxIterations.
func Bisection(f Objective, xLower, xUpper float64, s *Settings) (*Result, error) {
	sess := newSession(MethodBisection, f, s)

	xa := math.Min(xLower, xUpper)
	xb := math.Max(xLower, xUpper)

	fa := sess.solve(xa)
	fb := sess.solve(xb)
	if fa*fb > 0 {
		return sess.invalidBracket(xa, fa, xb, fb)
	}

	var xc, xp float64
	for i := 0; i < sess.cfg.MaxIterations; i++ {
		// Previous estimate for the error check; the lower bound stands
		// in before the first midpoint exists.
		if i == 0 {
			xp = xa
		} else {
			xp = xc
		}

		xc = (xa + xb) / 2
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
			xb = xc
		}

		relErr := RelativeError(xp, xc)
		sess.record(i, xc, relErr)
		if relErr < sess.cfg.MaxError {
			return sess.converged(xc, i, relErr)
		}
	}
	return sess.exhausted()
}
