package reduce

import "github.com/katalvlaran/vrh/internal/matrix"

// Z2 transforms mat in place so that the submatrix with top-left at (x, x)
// has ones only on its diagonal up to its rank, zeros elsewhere, reading
// every cell mod 2. Call with x = 0 for a full reduction.
//
// Procedure, per cell (x, x):
//  1. scan (k, l) with k,l >= x for any cell with v mod 2 == 1;
//  2. if none, the remaining submatrix is zero mod 2 and the rank is x — done;
//  3. else swap that cell to (x, x) via one RowSwap and one ColSwap;
//  4. clear the rest of column x below row x via RowAdd(x, i);
//  5. clear the rest of row x right of column x via ColAdd(x, j);
//  6. recurse on x+1.
//
// Each step shrinks the active submatrix by one row and column, so the
// recursion (implemented here as a loop) terminates in min(rows, cols)
// iterations at most.
func Z2(mat *matrix.Dense[uint], x int) {
	rows, cols := mat.Dim()
	for ; x < rows && x < cols; x++ {
		pr, pc, found := findPivot(mat, x, rows, cols)
		if !found {
			return
		}
		mat.RowSwap(x, pr)
		mat.ColSwap(x, pc)

		for i := x + 1; i < rows; i++ {
			if isOne(mat, i, x) {
				mat.RowAdd(x, i)
			}
		}
		for j := x + 1; j < cols; j++ {
			if isOne(mat, x, j) {
				mat.ColAdd(x, j)
			}
		}
	}
}

// findPivot scans cells (k, l) with k, l >= x for the first one mod 2 == 1,
// row-major.
func findPivot(mat *matrix.Dense[uint], x, rows, cols int) (r, c int, found bool) {
	for k := x; k < rows; k++ {
		for l := x; l < cols; l++ {
			if isOne(mat, k, l) {
				return k, l, true
			}
		}
	}
	return 0, 0, false
}

// isOne reports whether mat[r,c] mod 2 == 1. Dense.Get always returns
// ok == true for in-bounds cells; reduce only ever probes in-bounds ones.
func isOne(mat *matrix.Dense[uint], r, c int) bool {
	v, _ := mat.Get(r, c)
	return v%2 == 1
}

// Rank counts the diagonal ones mat has after reduction: the number of
// j in [0, min(rows,cols)) with mat[j,j] mod 2 == 1.
func Rank(mat *matrix.Dense[uint]) int {
	rows, cols := mat.Dim()
	n := rows
	if cols < n {
		n = cols
	}
	rank := 0
	for j := 0; j < n; j++ {
		if isOne(mat, j, j) {
			rank++
		}
	}
	return rank
}
