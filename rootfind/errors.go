package rootfind

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Failures returned by the solvers wrap exactly one of
// these, so callers can classify outcomes with errors.Is.
var (
	// ErrInvalidBracket reports that the supplied interval does not
	// guarantee a sign change of the effective objective, so none of the
	// bracketing methods can promise a root inside it.
	ErrInvalidBracket = errors.New("interval does not bracket a sign change")

	// ErrMaxIterations reports that the iteration budget ran out before an
	// exact root or the error tolerance was reached.
	ErrMaxIterations = errors.New("maximum iterations exceeded")

	// ErrZeroDenominator reports a vanishing denominator in an
	// interpolation update: the two working points evaluate to the same
	// value, so the secant line has no x-intercept.
	ErrZeroDenominator = errors.New("zero denominator in interpolation update")
)

// Error is a solver failure with context. It wraps one of the sentinel kinds
// above; Method and Op identify where the failure happened.
type Error struct {
	// Method is the solver that failed ("bisection", "false-position",
	// "secant").
	Method string
	// Op is the operation that failed within the solver.
	Op string
	// Message describes the failure with the offending values.
	Message string
	// Err is the sentinel kind underlying this failure.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var prefix string
	if e.Method != "" && e.Op != "" {
		prefix = fmt.Sprintf("%s: %s", e.Method, e.Op)
	} else if e.Method != "" {
		prefix = e.Method
	} else if e.Op != "" {
		prefix = e.Op
	}

	if e.Err != nil {
		if prefix != "" {
			return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	if prefix != "" {
		return fmt.Sprintf("%s: %s", prefix, e.Message)
	}
	return e.Message
}

// Unwrap returns the sentinel kind, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AsError reports whether err is (or wraps) a solver *Error, returning it
// when so.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// newErrorf builds a solver failure wrapping the given sentinel kind.
func newErrorf(method, op string, kind error, format string, args ...interface{}) *Error {
	return &Error{
		Method:  method,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
		Err:     kind,
	}
}
