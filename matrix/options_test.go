package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewOptions()
	_, explicit := o.PivotTolerance()
	require.False(t, explicit, "scale-relative threshold by default")
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptions_LastWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithPivotTolerance(1e-6),
		matrix.WithNoValidateNaNInf(),
		nil, // skipped
		matrix.WithPivotTolerance(1e-3),
	)
	tol, explicit := o.PivotTolerance()
	require.True(t, explicit)
	require.Equal(t, 1e-3, tol)
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
}

func TestWithPivotTolerance_PanicsOnNonsense(t *testing.T) {
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithPivotTolerance(tol) })
	}
}
