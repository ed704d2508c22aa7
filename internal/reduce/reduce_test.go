package reduce_test

import (
	"testing"

	"github.com/katalvlaran/vrh/internal/matrix"
	"github.com/katalvlaran/vrh/internal/reduce"
	"github.com/stretchr/testify/require"
)

func denseFromRows(t *testing.T, rows []string) *matrix.Dense[uint] {
	t.Helper()
	r := len(rows)
	c := len(rows[0])
	m, err := matrix.NewDense[uint](r, c)
	require.NoError(t, err)
	for i, row := range rows {
		require.Len(t, row, c)
		for j, ch := range row {
			if ch == '1' {
				require.NoError(t, m.Set(i, j, 1))
			}
		}
	}
	return m
}

func assertMod2(t *testing.T, m *matrix.Dense[uint], rows []string) {
	t.Helper()
	for i, row := range rows {
		for j, ch := range row {
			v, ok := m.Get(i, j)
			require.True(t, ok)
			want := uint(0)
			if ch == '1' {
				want = 1
			}
			require.Equalf(t, want, v%2, "mismatch at (%d,%d)", i, j)
		}
	}
}

// TestReduceZ2DukeExample reduces the Duke 4x6 example, leaving
// (0,0),(1,1),(2,2) as the only ones mod 2, row 3 entirely zero.
func TestReduceZ2DukeExample(t *testing.T) {
	m := denseFromRows(t, []string{
		"111000",
		"100110",
		"010101",
		"001011",
	})
	reduce.Z2(m, 0)
	assertMod2(t, m, []string{
		"100000",
		"010000",
		"001000",
		"000000",
	})
	require.Equal(t, 3, reduce.Rank(m))
}

// TestReduceZ2SixByFour verifies a 6x4 matrix reduces to identity in the
// top-left 3x3 block and zeros elsewhere.
func TestReduceZ2SixByFour(t *testing.T) {
	m := denseFromRows(t, []string{
		"1100",
		"1010",
		"0110",
		"1001",
		"0101",
		"0011",
	})
	reduce.Z2(m, 0)
	assertMod2(t, m, []string{
		"1000",
		"0100",
		"0010",
		"0000",
		"0000",
		"0000",
	})
	require.Equal(t, 3, reduce.Rank(m))
}

// TestReduceZ2Idempotent verifies Z2 applied twice yields the same matrix
// mod 2 (the second pass finds no pivot beyond the already-cleared
// diagonal and is a no-op).
func TestReduceZ2Idempotent(t *testing.T) {
	m := denseFromRows(t, []string{
		"110000",
		"100110",
		"010101",
		"001011",
	})
	reduce.Z2(m, 0)
	first := snapshot(m)
	reduce.Z2(m, 0)
	second := snapshot(m)
	require.Equal(t, first, second)
}

// TestReduceZ2EmptyMatrix exercises a matrix with no ones: rank 0, no
// pivot ever found.
func TestReduceZ2EmptyMatrix(t *testing.T) {
	m, err := matrix.NewDense[uint](3, 3)
	require.NoError(t, err)
	reduce.Z2(m, 0)
	require.Equal(t, 0, reduce.Rank(m))
}

func snapshot(m *matrix.Dense[uint]) [][]uint {
	rows, cols := m.Dim()
	out := make([][]uint, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]uint, cols)
		for c := 0; c < cols; c++ {
			v, _ := m.Get(r, c)
			out[r][c] = v % 2
		}
	}
	return out
}
