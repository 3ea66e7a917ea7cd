package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/matrix"
)

func TestFromAny(t *testing.T) {
	t.Parallel()

	dense := [][]float64{{1, 2}, {3, 4}}

	cases := []struct {
		name string
		in   any
		want [][]float64
	}{
		{"dense matrix", MustFrom(t, dense), dense},
		{"wrapped matrix", hide{MustFrom(t, dense)}, dense},
		{"[][]float64", dense, dense},
		{"[][]float32", [][]float32{{1, 2}, {3, 4}}, dense},
		{"[][]int", [][]int{{1, 2}, {3, 4}}, dense},
		{"[][]int64", [][]int64{{1, 2}, {3, 4}}, dense},
		{"[]float64 column", []float64{1, 2, 3}, [][]float64{{1}, {2}, {3}}},
		{"[]int column", []int{5, 6}, [][]float64{{5}, {6}}},
		{"[]int64 column", []int64{7}, [][]float64{{7}}},
		{"[]float32 column", []float32{0.5}, [][]float64{{0.5}}},
		{"float64 scalar", 2.5, [][]float64{{2.5}}},
		{"int scalar", 3, [][]float64{{3}}},
		{"int64 scalar", int64(4), [][]float64{{4}}},
		{"float32 scalar", float32(0.25), [][]float64{{0.25}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromAny(tc.in)
			require.NoError(t, err)
			CompareExact(t, tc.want, m)
		})
	}
}

func TestFromAny_Errors(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	cases := []struct {
		name   string
		in     any
		target error
	}{
		{"untyped nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"string", "[[1,2],[3,4]]", matrix.ErrNotCoercible},
		{"map", map[int]float64{0: 1}, matrix.ErrNotCoercible},
		{"bool", true, matrix.ErrNotCoercible},
		{"empty rows", [][]float64{}, matrix.ErrBadShape},
		{"empty vector", []int{}, matrix.ErrBadShape},
		{"ragged", [][]int{{1, 2}, {3}}, matrix.ErrBadShape},
		{"nan", []float64{math.NaN()}, matrix.ErrNaNInf},
		{"inf scalar", math.Inf(1), matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromAny(tc.in)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestFromAny_CopiesMatrix(t *testing.T) {
	src := MustFrom(t, [][]float64{{1}})
	m, err := matrix.FromAny(src)
	require.NoError(t, err)
	MustSet(t, src, 0, 0, 2)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}
