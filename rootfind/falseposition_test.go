package rootfind

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestFalsePositionConverges(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	res, err := FalsePosition(f, 0, 2, &Settings{Logger: testLogger(t)})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, StatusConverged, res.Status)
	assert.True(t, scalar.EqualWithinAbs(res.Root, math.Sqrt2, 1e-3),
		"root %v should approximate sqrt(2)", res.Root)
	assert.Less(t, res.RelativeError, DefaultMaxError)
	assert.Len(t, res.History, res.Iterations+1)
	assert.Equal(t, res.Iterations+3, res.FuncEvals)
}

func TestFalsePositionExactRootOnLinear(t *testing.T) {
	// The secant line through the endpoints of a linear objective passes
	// through its root, so the first estimate is exact.
	res, err := FalsePosition(func(x float64) float64 { return x - 2 }, 0, 4, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, StatusExactRoot, res.Status)
	assert.Equal(t, 2.0, res.Root)
	assert.Equal(t, 0, res.Iterations)
	assert.True(t, math.IsNaN(res.RelativeError))
	assert.Equal(t, 3, res.FuncEvals)
}

func TestFalsePositionAgreesWithBisection(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	fp, err := FalsePosition(f, 0, 2, nil)
	require.NoError(t, err)
	bi, err := Bisection(f, 0, 2, nil)
	require.NoError(t, err)

	assert.True(t, scalar.EqualWithinAbs(fp.Root, bi.Root, 1e-3),
		"both methods should land on sqrt(2): %v vs %v", fp.Root, bi.Root)
	assert.NotEqual(t, fp.Iterations, bi.Iterations,
		"interpolation and halving should need different iteration counts here")
	assert.Less(t, fp.Iterations, bi.Iterations,
		"interpolation should beat halving on a near-linear bracket")
}

func TestFalsePositionReplacesUpperEndpoint(t *testing.T) {
	// The root of sin on [-1, 2] sits off-center, so the first interpolant
	// overshoots it and replaces the upper endpoint. The second interpolant
	// pins that update: it must be computed with the replaced endpoint's
	// function value, not the original one.
	res, err := FalsePosition(math.Sin, -1, 2, &Settings{Logger: testLogger(t)})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, scalar.EqualWithinAbs(res.Root, 0, 1e-6),
		"root %v should approximate 0", res.Root)
	assert.Equal(t, 6, res.Iterations)

	require.GreaterOrEqual(t, len(res.History), 2)
	assert.True(t, scalar.EqualWithinAbs(res.History[0].Estimate, 0.44189, 1e-4),
		"first interpolant %v should land right of the root", res.History[0].Estimate)
	assert.True(t, scalar.EqualWithinAbs(res.History[1].Estimate, -0.04398, 1e-4),
		"second interpolant %v should reflect the updated upper endpoint",
		res.History[1].Estimate)
}

func TestFalsePositionInvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	res, err := FalsePosition(f, 2, 5, nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidBracket)

	solveErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, MethodFalsePosition, solveErr.Method)
}

func TestFalsePositionZeroDenominator(t *testing.T) {
	// Both endpoints are exact roots of (x-1)(x-3): the validation product
	// is zero, which passes, and the first interpolation then has equal
	// endpoint values.
	f := func(x float64) float64 { return (x - 1) * (x - 3) }
	res, err := FalsePosition(f, 1, 3, nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrZeroDenominator)

	solveErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, MethodFalsePosition, solveErr.Method)
	assert.Equal(t, "interpolate", solveErr.Op)
}

func TestFalsePositionMaxIterations(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	res, err := FalsePosition(f, 0, 2, &Settings{MaxIterations: 1})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrMaxIterations)
}

func TestFalsePositionNearRootBracket(t *testing.T) {
	// A bracket already tight around the root satisfies the tolerance at
	// the first interpolant.
	res, err := FalsePosition(quartic, quarticRoot-1e-9, quarticRoot+1e-9, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.LessOrEqual(t, res.Iterations, 1)
	assert.True(t, scalar.EqualWithinAbs(res.Root, quarticRoot, 1e-8),
		"root %v should approximate %v", res.Root, quarticRoot)
}

func TestFalsePositionVerboseExactRoot(t *testing.T) {
	var buf bytes.Buffer
	_, err := FalsePosition(func(x float64) float64 { return x - 2 }, 0, 4,
		&Settings{Verbose: true, Output: &buf})
	require.NoError(t, err)

	assert.Equal(t, "Exact root found.\nRoot: 2.000000e+00\nIterations: 0\n", buf.String())
}

func TestFalsePositionTargetValue(t *testing.T) {
	// Solve x^2 = 2 instead of pre-shifting the objective.
	res, err := FalsePosition(func(x float64) float64 { return x * x }, 0, 2,
		&Settings{Target: 2})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, scalar.EqualWithinAbs(res.Root, math.Sqrt2, 1e-3),
		"root %v should approximate sqrt(2)", res.Root)
}
