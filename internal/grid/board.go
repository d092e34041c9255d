// Package grid implements the rules of the sliding-tile merge puzzle:
// move resolution, tile spawning, win and terminal detection.
//
// Every operation is pure. Boards are immutable values, so callers can keep
// the board from before a move and compare it with the one returned.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is an immutable N×N grid of tile values stored row-major.
// Zero marks an empty cell; every other value is a power of two.
type Board struct {
	n     int
	cells []int
}

// NewBoard returns an empty board of the given size.
func NewBoard(n int) Board {
	if n < 0 {
		n = 0
	}
	return Board{n: n, cells: make([]int, n*n)}
}

// FromRows builds a board from a square matrix, validating its shape and values.
func FromRows(rows [][]int) (Board, error) {
	n := len(rows)
	if n < 2 {
		return Board{}, fmt.Errorf("%w: size %d is below 2", ErrInvalidBoard, n)
	}
	b := NewBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), n)
		}
		copy(b.cells[r*n:], row)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// MustFromRows is like FromRows but panics on invalid input.
// Intended for literals in tests and fixtures.
func MustFromRows(rows [][]int) Board {
	b, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}

// fromRows copies rows without validation. Callers guarantee the shape.
func fromRows(rows [][]int) Board {
	b := NewBoard(len(rows))
	for r, row := range rows {
		copy(b.cells[r*b.n:], row)
	}
	return b
}

// Validate checks that the board is non-empty and holds only 0 or powers of two.
func (b Board) Validate() error {
	if b.n < 2 || len(b.cells) != b.n*b.n {
		return fmt.Errorf("%w: size %d", ErrInvalidBoard, b.n)
	}
	for i, v := range b.cells {
		if v != 0 && !isTileValue(v) {
			return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, i/b.n, i%b.n, v)
		}
	}
	return nil
}

// isTileValue reports whether v is a power of two no smaller than 2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.n
}

// At returns the value at row r, column c. Out-of-range coordinates return 0.
func (b Board) At(r, c int) int {
	if r < 0 || r >= b.n || c < 0 || c >= b.n {
		return 0
	}
	return b.cells[r*b.n+c]
}

// Rows returns a fresh copy of the board as a matrix.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.n)
	for r := range b.n {
		rows[r] = make([]int, b.n)
		copy(rows[r], b.cells[r*b.n:(r+1)*b.n])
	}
	return rows
}

// Equal reports whether both boards have the same size and contents.
func (b Board) Equal(other Board) bool {
	if b.n != other.n {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// with returns a copy of b with one cell replaced.
func (b Board) with(r, c, v int) Board {
	out := Board{n: b.n, cells: make([]int, len(b.cells))}
	copy(out.cells, b.cells)
	out.cells[r*b.n+c] = v
	return out
}

// String renders the board as space-separated rows, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := range b.n {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.n {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.At(r, c); v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
	}
	return sb.String()
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range b.n {
		for c := range b.n {
			if b.At(r, c) == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// ContainsValue reports whether any cell equals target.
func ContainsValue(b Board, target int) bool {
	for _, v := range b.cells {
		if v == target {
			return true
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// IsTerminal reports whether no move can change the board: there is no
// empty cell and no horizontally or vertically adjacent pair is equal.
func IsTerminal(b Board) bool {
	if b.n == 0 {
		return false
	}
	for r := range b.n {
		for c := range b.n {
			val := b.At(r, c)
			if val == 0 {
				return false
			}
			// Right and bottom neighbours cover every interior edge once.
			if c+1 < b.n && b.At(r, c+1) == val {
				return false
			}
			if r+1 < b.n && b.At(r+1, c) == val {
				return false
			}
		}
	}
	return true
}
