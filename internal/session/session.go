// Package session owns the state of one game: the current board, score,
// best score and the win/game-over flow around the pure grid engine.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// State is the session lifecycle state.
type State string

const (
	StatePlaying    State = "playing"
	StateWinPending State = "win_pending" // Win overlay shown, waiting for the player
	StateTerminal   State = "terminal"    // No move left; absorbing
)

// Cue is the feedback a front end should give for an accepted move.
type Cue int

const (
	CueNone Cue = iota
	CueMove
	CueMerge
	CueWin
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueMerge:
		return "merge"
	case CueWin:
		return "win"
	default:
		return "none"
	}
}

// Outcome reports what one Move call did.
type Outcome struct {
	Accepted bool            // Board changed and the move was committed
	Move     grid.MoveResult // Engine result for the move
	Spawn    grid.Spawn      // Tile added after the move
	Spawned  bool
	Cue      Cue
	Won      bool // Target reached for the first time; show the win overlay
	Terminal bool // No further move is possible
	NewBest  bool // Score now exceeds the previous best
}

// Session is a single game in progress. It is not safe for concurrent use:
// the caller must apply one move at a time.
type Session struct {
	id        string
	engine    *grid.Engine
	rng       grid.RNG
	board     grid.Board
	score     int
	best      int
	moves     int
	state     State
	startedAt time.Time

	hasAcknowledgedWin bool // Player chose to keep playing after the win overlay
	won                bool // Target reached at some point this session
}

// New starts a session with two spawned tiles.
// best is the persisted best score for the engine's variant.
func New(engine *grid.Engine, rng grid.RNG, best int) (*Session, error) {
	if engine == nil || rng == nil {
		return nil, errors.New("session: engine and rng are required")
	}
	s := &Session{
		engine: engine,
		rng:    rng,
		best:   best,
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards the board and starts over. The best score is kept.
func (s *Session) Restart() error {
	board, err := s.engine.NewGame(s.rng)
	if err != nil {
		return fmt.Errorf("session: new board: %w", err)
	}
	s.id = uuid.NewString()
	s.board = board
	s.score = 0
	s.moves = 0
	s.state = StatePlaying
	s.startedAt = time.Now()
	s.hasAcknowledgedWin = false
	s.won = false
	return nil
}

// Move applies one move. Moves are ignored while the win overlay is pending
// or after the game ended, and moves that change nothing are no-ops:
// no tile spawns and no score is added.
//
// The new board is committed only after the move and the spawn both succeed.
func (s *Session) Move(d grid.Direction) (Outcome, error) {
	if s.state != StatePlaying {
		return Outcome{}, nil
	}

	next, res, err := s.engine.ApplyMove(s.board, d)
	if err != nil {
		return Outcome{}, err
	}
	if !res.Changed {
		return Outcome{Move: res}, nil
	}

	out := Outcome{Accepted: true, Move: res, Cue: CueMove}
	if res.MergedAny {
		out.Cue = CueMerge
	}

	spawned, sp, err := s.engine.SpawnTile(next, s.rng)
	switch {
	case err == nil:
		out.Spawn = sp
		out.Spawned = true
	case errors.Is(err, grid.ErrBoardFull):
		// A changed move always frees or keeps a cell; nothing to place.
	default:
		return Outcome{}, err
	}

	s.board = spawned
	s.score += res.ScoreGained
	s.moves++
	if s.score > s.best {
		s.best = s.score
		out.NewBest = true
	}

	if res.ReachedTarget && !s.hasAcknowledgedWin && !s.won {
		s.won = true
		s.state = StateWinPending
		out.Won = true
		out.Cue = CueWin
	}

	// Terminal is checked only after the spawn.
	if grid.IsTerminal(s.board) {
		s.state = StateTerminal
		out.Terminal = true
	}

	return out, nil
}

// Continue dismisses the win overlay and resumes play on the same board.
// Reports whether the session was waiting for it.
func (s *Session) Continue() bool {
	if s.state != StateWinPending {
		return false
	}
	s.hasAcknowledgedWin = true
	s.state = StatePlaying
	return true
}

// ID returns the unique identifier of the current game.
func (s *Session) ID() string { return s.id }

// Board returns the current board.
func (s *Session) Board() grid.Board { return s.board }

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Best returns the best score known to this session.
func (s *Session) Best() int { return s.best }

// Moves returns the number of accepted moves.
func (s *Session) Moves() int { return s.moves }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Won reports whether the target tile was reached this game.
func (s *Session) Won() bool { return s.won }

// AcknowledgedWin reports whether the player chose to continue past the win.
func (s *Session) AcknowledgedWin() bool { return s.hasAcknowledgedWin }

// Variant returns the rules identifier, e.g. "4x4-2048".
func (s *Session) Variant() string { return s.engine.Rules().Variant() }

// Duration returns how long the current game has been running.
func (s *Session) Duration() time.Duration { return time.Since(s.startedAt) }
