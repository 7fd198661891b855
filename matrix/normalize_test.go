package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hmmgen/matrix"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRowsL1(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 3},
		{0, 0},
		{0.25, 0.25},
	})
	require.NoError(t, err)

	y, norms, err := matrix.NormalizeRowsL1(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{4, 0, 0.5}, norms, 1e-12)

	row0, _ := y.Row(0)
	require.InDeltaSlice(t, []float64{0.25, 0.75}, row0, 1e-12)
	// degenerate row is copied unchanged
	row1, _ := y.Row(1)
	require.Equal(t, []float64{0, 0}, row1)
	row2, _ := y.Row(2)
	require.InDeltaSlice(t, []float64{0.5, 0.5}, row2, 1e-12)

	// input untouched
	orig, _ := m.Row(0)
	require.Equal(t, []float64{1, 3}, orig)
}

func TestRowSums_Nil(t *testing.T) {
	_, err := matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
