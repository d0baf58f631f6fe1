// Package transactions_test contains unit tests for the Dense presence matrix.
package transactions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itemsets/transactions"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := transactions.NewDense(-1, 5)
	require.ErrorIs(t, err, transactions.ErrInvalidDimensions)
	require.ErrorIs(t, err, transactions.ErrInputShape)

	_, err = transactions.NewDense(5, -1)
	require.ErrorIs(t, err, transactions.ErrInvalidDimensions)
}

// TestNewDenseZeroShape verifies that empty transaction sets are legal.
func TestNewDenseZeroShape(t *testing.T) {
	m, err := transactions.NewDense(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := transactions.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, transactions.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, transactions.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, transactions.ErrOutOfRange)

	_, err = m.Items(5)
	require.ErrorIs(t, err, transactions.ErrOutOfRange)
}

// TestSetRejectsNonBinary verifies the binary policy on Set.
func TestSetRejectsNonBinary(t *testing.T) {
	m, err := transactions.NewDense(1, 1)
	require.NoError(t, err)

	for _, v := range []float64{0.5, 2, -1, math.NaN(), math.Inf(1)} {
		err = m.Set(0, 0, v)
		require.ErrorIs(t, err, transactions.ErrNonBinary, "value %v", v)
		require.ErrorIs(t, err, transactions.ErrInputShape)
	}
	require.NoError(t, m.Set(0, 0, 1))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestFromRows covers the rectangular and binary checks of FromRows.
func TestFromRows(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		err  error
	}{
		{"Empty", [][]float64{}, nil},
		{"Valid", [][]float64{{1, 0}, {0, 1}}, nil},
		{"Ragged", [][]float64{{1, 0}, {1}}, transactions.ErrNonRectangular},
		{"NonBinary", [][]float64{{1, 0}, {3, 1}}, transactions.ErrNonBinary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := transactions.FromRows(tc.rows)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.ErrorIs(t, err, transactions.ErrInputShape)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.rows), m.Rows())
		})
	}
}

// TestFromBoolsAndItems checks row extraction on a boolean table.
func TestFromBoolsAndItems(t *testing.T) {
	m, err := transactions.FromBools([][]bool{
		{true, false, true},
		{false, false, false},
	})
	require.NoError(t, err)

	items, err := m.Items(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, items)

	items, err = m.Items(1)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = transactions.FromBools([][]bool{{true}, {true, false}})
	require.ErrorIs(t, err, transactions.ErrNonRectangular)
}

// TestFromItemSets verifies duplicate collapsing and unknown id rejection.
func TestFromItemSets(t *testing.T) {
	m, err := transactions.FromItemSets([][]int{{2, 0, 2}, {1}}, 3)
	require.NoError(t, err)
	assert.Equal(t, "[1, 0, 1]\n[0, 1, 0]\n", m.String())

	_, err = transactions.FromItemSets([][]int{{3}}, 3)
	require.ErrorIs(t, err, transactions.ErrUnknownItem)
}

// TestCloneIndependence ensures Clone() does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := transactions.FromRows([][]float64{{1, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 0))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// floatTable is a host-side Matrix used to exercise the generic Baskets path.
type floatTable [][]float64

func (f floatTable) Rows() int { return len(f) }
func (f floatTable) Cols() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}
func (f floatTable) At(i, j int) (float64, error) {
	if i < 0 || i >= len(f) || j < 0 || j >= len(f[i]) {
		return 0, transactions.ErrOutOfRange
	}
	return f[i][j], nil
}

// TestBaskets checks both the Dense fast path and the generic validating path.
func TestBaskets(t *testing.T) {
	d, err := transactions.FromRows([][]float64{{1, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	got, err := transactions.Baskets(d)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, got)

	got, err = transactions.Baskets(floatTable{{1, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {0, 1}}, got)

	_, err = transactions.Baskets(floatTable{{1, 0}, {0.3, 1}})
	require.ErrorIs(t, err, transactions.ErrNonBinary)

	// ragged host tables surface as out-of-range reads
	_, err = transactions.Baskets(floatTable{{1, 0}, {1}})
	require.ErrorIs(t, err, transactions.ErrInputShape)
}
