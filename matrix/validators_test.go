package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hmmgen/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
}

func TestValidateWeights_Table(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"ok", [][]float64{{0.2, 0.8}, {1, 0}}, nil},
		{"non-square", [][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.ErrDimensionMismatch},
		{"nan", [][]float64{{math.NaN(), 1}, {1, 1}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{1, 1}, {math.Inf(1), 1}}, matrix.ErrNaNInf},
		{"negative", [][]float64{{1, -0.1}, {1, 1}}, matrix.ErrNegative},
		// zero-sum rows pass here: distribution validity is the sampler's call
		{"zero row", [][]float64{{0, 0}, {1, 1}}, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFromRows(tc.rows)
			require.NoError(t, err)
			err = matrix.ValidateWeights(m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateWeights_Nil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateWeights(nil), matrix.ErrNilMatrix)
}
