package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/matrix"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{2, 0}, {0, 2}})
	var typedNil *matrix.Dense

	cases := []struct {
		name string
		x, y matrix.Matrix
		want bool
	}{
		{"identical values", a, MustFrom(t, [][]float64{{2, 0}, {0, 2}}), true},
		{"same instance", a, a, true},
		{"generic path", hide{a}, a, true},
		{"one element differs", a, MustFrom(t, [][]float64{{2, 0}, {0, 2.0000001}}), false},
		{"different rows", a, MustFrom(t, [][]float64{{2, 0}}), false},
		{"different cols", a, MustFrom(t, [][]float64{{2}, {0}}), false},
		{"transposed shape, same data", MustFrom(t, [][]float64{{1, 2}}), MustFrom(t, [][]float64{{1}, {2}}), false},
		{"left nil", nil, a, false},
		{"right nil", a, nil, false},
		{"both nil", nil, nil, false},
		{"typed nil", typedNil, a, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.Equal(tc.x, tc.y))
			require.Equal(t, tc.want, matrix.Equal(tc.y, tc.x), "symmetric")
		})
	}
}

func TestEqual_NaNNeverEqual(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, matrix.Equal(m, m))
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{1, 2}, {3, 4 + 1e-10}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, -1e-9, 0) // negative tolerance is normalized
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
