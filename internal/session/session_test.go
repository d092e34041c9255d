package session

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

func newTestSession(t *testing.T, best int) *Session {
	t.Helper()
	engine, err := grid.NewEngine(grid.DefaultRules())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	s, err := New(engine, grid.NewRand(42), best)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func countTiles(b grid.Board) int {
	n := 0
	for _, row := range b.Rows() {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, 500)

	if got := countTiles(s.Board()); got != 2 {
		t.Errorf("new session has %d tiles, want 2", got)
	}
	if s.State() != StatePlaying {
		t.Errorf("State = %s, want playing", s.State())
	}
	if s.Score() != 0 || s.Best() != 500 {
		t.Errorf("Score/Best = %d/%d, want 0/500", s.Score(), s.Best())
	}
	if s.ID() == "" {
		t.Error("session should have an ID")
	}
}

func TestMoveSpawnsAndScores(t *testing.T) {
	s := newTestSession(t, 0)
	s.board = grid.MustFromRows([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	out, err := s.Move(grid.Left)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if !out.Accepted || !out.Spawned {
		t.Fatalf("move should be accepted with a spawn: %+v", out)
	}
	if out.Cue != CueMerge {
		t.Errorf("Cue = %s, want merge", out.Cue)
	}
	if s.Score() != 4 {
		t.Errorf("Score = %d, want 4", s.Score())
	}
	if !out.NewBest || s.Best() != 4 {
		t.Errorf("best should follow the score, got %d", s.Best())
	}
	if got := countTiles(s.Board()); got != 2 {
		t.Errorf("tiles after merge+spawn = %d, want 2", got)
	}
	if s.Moves() != 1 {
		t.Errorf("Moves = %d, want 1", s.Moves())
	}
}

func TestBlockedMoveIsNoOp(t *testing.T) {
	s := newTestSession(t, 0)
	board := grid.MustFromRows([][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	s.board = board

	out, err := s.Move(grid.Left)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if out.Accepted || out.Spawned || out.Cue != CueNone {
		t.Errorf("blocked move should be ignored: %+v", out)
	}
	if !s.Board().Equal(board) || s.Moves() != 0 || s.Score() != 0 {
		t.Error("blocked move should not touch the session")
	}
}

func TestWinFlow(t *testing.T) {
	s := newTestSession(t, 0)
	s.board = grid.MustFromRows([][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	out, err := s.Move(grid.Left)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if !out.Won || out.Cue != CueWin {
		t.Fatalf("merging into 2048 should win: %+v", out)
	}
	if s.State() != StateWinPending {
		t.Fatalf("State = %s, want win_pending", s.State())
	}

	// Moves are ignored while the overlay is up.
	before := s.Board()
	if out, _ := s.Move(grid.Right); out.Accepted {
		t.Error("move during win overlay should be ignored")
	}
	if !s.Board().Equal(before) {
		t.Error("board changed during win overlay")
	}

	if !s.Continue() {
		t.Fatal("Continue() should resume a pending win")
	}
	if s.State() != StatePlaying || !s.AcknowledgedWin() {
		t.Errorf("after Continue: state %s, acknowledged %v", s.State(), s.AcknowledgedWin())
	}
	if s.Continue() {
		t.Error("second Continue() should report nothing to resume")
	}

	// A second target tile does not bring the overlay back.
	s.board = grid.MustFromRows([][]int{
		{2048, 1024, 1024, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	out, err = s.Move(grid.Left)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if out.Won || s.State() != StatePlaying {
		t.Errorf("acknowledged win should not re-trigger: %+v, state %s", out, s.State())
	}
}

// fixedRNG always picks the first empty cell and spawns a 2.
type fixedRNG struct{}

func (fixedRNG) IntN(int) int     { return 0 }
func (fixedRNG) Float64() float64 { return 0.99 }

func TestTerminalAfterSpawn(t *testing.T) {
	s := newTestSession(t, 0)
	s.rng = fixedRNG{}
	// Moving right frees (0,0); the spawned 2 then sits next to a 4 and an 8.
	s.board = grid.MustFromRows([][]int{
		{4, 0, 16, 32},
		{8, 16, 32, 64},
		{16, 32, 64, 128},
		{32, 64, 128, 256},
	})

	out, err := s.Move(grid.Right)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if !out.Accepted {
		t.Fatal("move should be accepted")
	}
	if !out.Terminal || s.State() != StateTerminal {
		t.Fatalf("board should be terminal after spawn:\n%v", s.Board())
	}

	if out, _ := s.Move(grid.Up); out.Accepted {
		t.Error("terminal session should ignore moves")
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	if s.State() != StatePlaying || s.Score() != 0 {
		t.Errorf("Restart should reset state and score, got %s/%d", s.State(), s.Score())
	}
}

func TestInvalidDirectionLeavesSession(t *testing.T) {
	s := newTestSession(t, 0)
	before := s.Snapshot()

	if _, err := s.Move(grid.Direction(9)); err == nil {
		t.Error("invalid direction should return an error")
	}
	if !s.Board().Equal(grid.MustFromRows(before.Board)) {
		t.Error("invalid direction should not change the board")
	}
}

func TestMotivation(t *testing.T) {
	tests := []struct {
		score  int
		won    bool
		prefix string
	}{
		{100, true, "Genius"},
		{6000, false, "So close"},
		{2500, false, "Finding"},
		{10, false, "Like life"},
	}
	for _, tt := range tests {
		if got := Motivation(tt.score, tt.won); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("Motivation(%d, %v) = %q, want prefix %q", tt.score, tt.won, got, tt.prefix)
		}
	}
}

func TestRender(t *testing.T) {
	s := newTestSession(t, 1234)
	s.board = grid.MustFromRows([][]int{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	})

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Best: 1234", "2048", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}

	s.state = StateTerminal
	s.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("terminal render should show GAME OVER:\n%s", screen.String())
	}

	small := core.NewScreen(20, 5)
	s.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen should show resize hint")
	}
}
