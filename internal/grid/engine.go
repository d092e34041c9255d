package grid

import "fmt"

// MoveResult describes the outcome of one ApplyMove call.
type MoveResult struct {
	Changed       bool // Some tile moved or merged
	ScoreGained   int  // Sum of all tiles created by merges
	MergedAny     bool // At least one merge happened
	Merges        int  // Number of merges performed
	ReachedTarget bool // Board holds the win target after a changed move
}

// Spawn records where SpawnTile placed a tile.
type Spawn struct {
	Row, Col int
	Value    int
}

// Engine applies a fixed set of Rules. It holds no board state and is safe
// for concurrent use.
type Engine struct {
	rules Rules
}

// NewEngine creates an engine after validating the rules.
func NewEngine(rules Rules) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rules: rules}, nil
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// check validates a board against the engine's rules.
func (e *Engine) check(b Board) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.n != e.rules.Size {
		return fmt.Errorf("%w: size %d, engine expects %d", ErrInvalidBoard, b.n, e.rules.Size)
	}
	return nil
}

// NewGame returns an empty board with two spawned tiles.
func (e *Engine) NewGame(rng RNG) (Board, error) {
	b := NewBoard(e.rules.Size)
	for range 2 {
		var err error
		if b, _, err = e.SpawnTile(b, rng); err != nil {
			return Board{}, err
		}
	}
	return b, nil
}

// ApplyMove slides and merges every line toward d.
//
// The board is rotated so that d points at the left edge, each row is
// resolved left-to-right, and the board is rotated back. When nothing moves
// the input board is returned as is and the result is the zero MoveResult.
func (e *Engine) ApplyMove(b Board, d Direction) (Board, MoveResult, error) {
	if !d.Valid() {
		return b, MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	if err := e.check(b); err != nil {
		return b, MoveResult{}, err
	}

	turns := d.Rotations()
	rows := rotateRows(b.Rows(), turns)

	var res MoveResult
	for i, row := range rows {
		slid, score, merges := slideRow(row)
		if !equalRow(row, slid) {
			res.Changed = true
		}
		rows[i] = slid
		res.ScoreGained += score
		res.Merges += merges
	}

	if !res.Changed {
		return b, MoveResult{}, nil
	}

	res.MergedAny = res.Merges > 0
	out := fromRows(rotateRows(rows, (4-turns)%4))
	res.ReachedTarget = ContainsValue(out, e.rules.WinTarget)
	return out, res, nil
}

// SpawnTile places a 2 (or a 4, with probability Spawn4Prob) in an empty
// cell chosen uniformly in row-major order.
// A full board is returned unchanged together with ErrBoardFull.
func (e *Engine) SpawnTile(b Board, rng RNG) (Board, Spawn, error) {
	if err := e.check(b); err != nil {
		return b, Spawn{}, err
	}

	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, Spawn{}, ErrBoardFull
	}

	cell := empty[rng.IntN(len(empty))]

	value := 2
	if rng.Float64() < e.rules.Spawn4Prob {
		value = 4
	}

	return b.with(cell.Row, cell.Col, value), Spawn{Row: cell.Row, Col: cell.Col, Value: value}, nil
}

// slideRow compresses a row to the left and merges equal neighbours.
// A tile produced by a merge does not merge again in the same pass.
// Returns the new row, the score gained and the number of merges.
func slideRow(row []int) (result []int, score, merges int) {
	result = make([]int, len(row))
	writePos := 0
	mergedAt := -1

	for _, v := range row {
		if v == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == v && mergedAt != writePos-1 {
			// Merge with previous tile
			result[writePos-1] *= 2
			score += result[writePos-1]
			merges++
			mergedAt = writePos - 1
		} else {
			result[writePos] = v
			writePos++
		}
	}

	return result, score, merges
}

func equalRow(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Rotate returns b rotated 90 degrees clockwise.
func Rotate(b Board) Board {
	return fromRows(rotateRows(b.Rows(), 1))
}

// rotateRows applies turns clockwise quarter rotations to a square matrix.
func rotateRows(rows [][]int, turns int) [][]int {
	n := len(rows)
	for range turns {
		next := make([][]int, n)
		for i := range next {
			next[i] = make([]int, n)
		}
		for r := range n {
			for c := range n {
				next[c][n-1-r] = rows[r][c]
			}
		}
		rows = next
	}
	return rows
}
