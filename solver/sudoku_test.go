// Package solver_test: the sudoku end-to-end suite. The wavefunction's
// propagation hook removes a committed digit from its row, column, and 3×3
// box; the pin sets live in testdata/sudoku.yaml.
package solver_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/collapse/grid"
	"github.com/katalvlaran/collapse/layout"
	"github.com/katalvlaran/collapse/solver"
)

// sudoku is a 9×9 wavefunction over digits 1..9.
type sudoku struct {
	layout *grid.Grid[int]
}

func newSudoku() *sudoku {
	g := grid.New[int](9, 9)
	weights := make(map[int]int, 9)
	for digit := 1; digit <= 9; digit++ {
		weights[digit] = 1
	}
	layout.AddPossibilities[int, grid.Coord2D](g, weights)

	return &sudoku{layout: g}
}

func (s *sudoku) InitialState() layout.Layout[int, grid.Coord2D] {
	return s.layout
}

func (s *sudoku) Collapse(l layout.Layout[int, grid.Coord2D], coord grid.Coord2D, value int) {
	// 1. Same row and same column cannot repeat the digit.
	peers := append(s.layout.Row(coord.Y), s.layout.Col(coord.X)...)

	// 2. Neither can the 3×3 box around the committed cell.
	boxX, boxY := coord.X/3*3, coord.Y/3*3
	for dy := uint(0); dy < 3; dy++ {
		for dx := uint(0); dx < 3; dx++ {
			peers = append(peers, grid.NewCoord2D(boxX+dx, boxY+dy))
		}
	}

	layout.RemoveCellsPossibility(l, peers, value)
}

// pin is one pre-placed digit of a puzzle.
type pin struct {
	X uint `yaml:"x"`
	Y uint `yaml:"y"`
	V int  `yaml:"v"`
}

// sudokuFixtures maps the testdata pin sets.
type sudokuFixtures struct {
	Easy       []pin `yaml:"easy"`
	Hard       []pin `yaml:"hard"`
	Impossible []pin `yaml:"impossible"`
}

func loadSudokuFixtures(t *testing.T) sudokuFixtures {
	t.Helper()

	raw, err := os.ReadFile("testdata/sudoku.yaml")
	require.NoError(t, err)

	var fixtures sudokuFixtures
	require.NoError(t, yaml.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures.Easy)
	require.NotEmpty(t, fixtures.Hard)
	require.NotEmpty(t, fixtures.Impossible)

	return fixtures
}

// requireValidSudoku asserts a fully collapsed layout with no repeated
// digit in any row, column, or box, and all pins still in place.
func requireValidSudoku(t *testing.T, l layout.Layout[int, grid.Coord2D], pins []pin) {
	t.Helper()

	var board [9][9]int
	for _, e := range l.Cells() {
		v, ok := e.Cell.Value()
		require.True(t, ok, "cell %v must be collapsed", e.Coord)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 9)
		board[e.Coord.Y][e.Coord.X] = v
	}

	for i := 0; i < 9; i++ {
		var row, col, box [10]bool
		for j := 0; j < 9; j++ {
			require.False(t, row[board[i][j]], "row %d repeats %d", i, board[i][j])
			row[board[i][j]] = true

			require.False(t, col[board[j][i]], "column %d repeats %d", i, board[j][i])
			col[board[j][i]] = true

			y, x := i/3*3+j/3, i%3*3+j%3
			require.False(t, box[board[y][x]], "box %d repeats %d", i, board[y][x])
			box[board[y][x]] = true
		}
	}

	for _, p := range pins {
		require.Equal(t, p.V, board[p.Y][p.X], "pin at (%d,%d) must survive", p.X, p.Y)
	}
}

func solveSudoku(t *testing.T, pins []pin, seed int64) (layout.Layout[int, grid.Coord2D], bool, int) {
	t.Helper()

	s := solver.New[int, grid.Coord2D](newSudoku(), solver.WithSeed(seed))
	for _, p := range pins {
		s.CollapseInitial(grid.NewCoord2D(p.X, p.Y), p.V)
	}

	solution, ok := s.Solve()

	return solution, ok, s.Backtracks()
}

func TestSudoku_Easy(t *testing.T) {
	t.Parallel()

	fixtures := loadSudokuFixtures(t)
	solution, ok, _ := solveSudoku(t, fixtures.Easy, 1)
	require.True(t, ok)
	requireValidSudoku(t, solution, fixtures.Easy)
}

func TestSudoku_Hard(t *testing.T) {
	t.Parallel()

	fixtures := loadSudokuFixtures(t)
	solution, ok, _ := solveSudoku(t, fixtures.Hard, 2)
	require.True(t, ok)
	requireValidSudoku(t, solution, fixtures.Hard)
}

// TestSudoku_Impossible: the pin set forces three cells of one column to
// avoid every digit; the search must exhaust and report its backtracks.
func TestSudoku_Impossible(t *testing.T) {
	t.Parallel()

	fixtures := loadSudokuFixtures(t)
	_, ok, backtracks := solveSudoku(t, fixtures.Impossible, 3)
	require.False(t, ok)
	require.GreaterOrEqual(t, backtracks, 1)
}

// TestSudoku_PinsVisibleInInitialState: pinning prunes the initial state
// before any solve runs.
func TestSudoku_PinsVisibleInInitialState(t *testing.T) {
	t.Parallel()

	s := solver.New[int, grid.Coord2D](newSudoku(), solver.WithSeed(4))
	s.CollapseInitial(grid.NewCoord2D(0, 0), 7)

	pinned, _ := s.InitialState().Cell(grid.NewCoord2D(0, 0))
	v, ok := pinned.Value()
	require.True(t, ok)
	require.Equal(t, 7, v)

	// Row, column, and box peers all lost the digit.
	for _, coord := range []grid.Coord2D{
		grid.NewCoord2D(8, 0), // row peer
		grid.NewCoord2D(0, 8), // column peer
		grid.NewCoord2D(2, 2), // box peer
	} {
		peer, _ := s.InitialState().Cell(coord)
		require.NotContains(t, peer.Possibilities(), 7)
	}

	// An unrelated cell keeps all nine digits.
	free, _ := s.InitialState().Cell(grid.NewCoord2D(4, 4))
	require.Len(t, free.Possibilities(), 9)
}
