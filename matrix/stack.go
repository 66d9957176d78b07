// SPDX-License-Identifier: MIT

package matrix

// HStack concatenates blocks along the column axis: the result has the
// common row count and Σ Cols(block) columns, with block k's columns placed
// after blocks 0..k-1. Row i of the result is the concatenation of row i of
// every block, so callers must align rows before stacking.
//
// Errors:
//   - ErrInvalidDimensions if no blocks are given.
//   - ErrNilMatrix if any block is nil.
//   - ErrDimensionMismatch if row counts differ.
//
// Complexity: O(r * Σc) time and space.
func HStack(blocks ...*Dense) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf("HStack", ErrInvalidDimensions)
	}

	// Stage 1: validate and size.
	var rows, cols int
	for k, b := range blocks {
		if err := ValidateNotNil(b); err != nil {
			return nil, denseErrorf("HStack", 0, k, err)
		}
		if k == 0 {
			rows = b.r
		} else if b.r != rows {
			return nil, denseErrorf("HStack", b.r, k, ErrDimensionMismatch)
		}
		cols += b.c
	}

	// Stage 2: copy row by row, block by block (fixed order).
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i, off int
	for i = 0; i < rows; i++ {
		off = i * cols
		for _, b := range blocks {
			copy(out.data[off:off+b.c], b.data[i*b.c:(i+1)*b.c])
			off += b.c
		}
	}

	return out, nil
}
