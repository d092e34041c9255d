package session

import "github.com/vovakirdan/tui-2048/internal/grid"

// Snapshot captures the complete session state for display, logging and tests.
type Snapshot struct {
	ID              string
	Variant         string
	Board           [][]int
	Score           int
	Best            int
	Moves           int
	MaxTile         int
	State           State
	Won             bool
	AcknowledgedWin bool
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:              s.id,
		Variant:         s.Variant(),
		Board:           s.board.Rows(),
		Score:           s.score,
		Best:            s.best,
		Moves:           s.moves,
		MaxTile:         grid.MaxTile(s.board),
		State:           s.state,
		Won:             s.won,
		AcknowledgedWin: s.hasAcknowledgedWin,
	}
}
