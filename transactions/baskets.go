package transactions

import "fmt"

// Baskets validates m and returns, for every transaction, the ascending
// column indices of its present items.
//
// Every cell is checked: values other than 0 and 1 return ErrNonBinary with
// the offending coordinates, so malformed input is rejected before any mining
// work starts. A *Dense is already binary by construction and takes a fast path.
//
// Complexity: O(r*c).
func Baskets(m Matrix) ([][]int, error) {
	if d, ok := m.(*Dense); ok {
		out := make([][]int, d.r)
		for i := 0; i < d.r; i++ {
			out[i], _ = d.Items(i) // row is in range by construction
		}

		return out, nil
	}

	rows, cols := m.Rows(), m.Cols()
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	out := make([][]int, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		items := make([]int, 0)
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			switch v {
			case 0:
			case 1:
				items = append(items, j)
			default:
				return nil, fmt.Errorf("cell (%d,%d) = %v: %w", i, j, v, ErrNonBinary)
			}
		}
		out[i] = items
	}

	return out, nil
}
