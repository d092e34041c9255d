package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fakeStore records saved results in memory.
type fakeStore struct {
	saved []storage.GameResult
	high  int
	err   error
}

func (f *fakeStore) SaveResult(r storage.GameResult) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saved = append(f.saved, r)
	return int64(len(f.saved)), nil
}

func (f *fakeStore) HighScore(string) (int, error) { return f.high, f.err }

func (f *fakeStore) TopScores(variant string, limit int) ([]storage.GameResult, error) {
	var out []storage.GameResult
	for _, r := range f.saved {
		if r.Variant == variant && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeStore) Variants() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, r := range f.saved {
		if !seen[r.Variant] {
			seen[r.Variant] = true
			out = append(out, r.Variant)
		}
	}
	return out, f.err
}

func newTestModel(t *testing.T, store ScoreStore, fb Feedback) Model {
	t.Helper()
	m, err := NewModel(Options{
		Rules:    grid.DefaultRules(),
		Seed:     7,
		Store:    store,
		Feedback: fb,
		Width:    80,
		Height:   24,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

// playAll presses each arrow key once; a fresh board always accepts at least one.
func playAll(t *testing.T, m Model) Model {
	t.Helper()
	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyRight, tea.KeyDown, tea.KeyLeft} {
		m, _ = send(t, m, tea.KeyMsg{Type: k})
	}
	return m
}

func TestNewModelReadsBest(t *testing.T) {
	store := &fakeStore{high: 1234}
	m := newTestModel(t, store, nil)

	if got := m.Session().Best(); got != 1234 {
		t.Errorf("Best() = %d, want 1234", got)
	}
	if m.Session().State() != session.StatePlaying {
		t.Errorf("State() = %v, want playing", m.Session().State())
	}
}

func TestNewModelToleratesStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk on fire")}
	m := newTestModel(t, store, nil)

	if got := m.Session().Best(); got != 0 {
		t.Errorf("Best() = %d, want 0", got)
	}
}

func TestNewModelBadRules(t *testing.T) {
	_, err := NewModel(Options{Rules: grid.Rules{Size: 1, WinTarget: 2048}})
	if !errors.Is(err, grid.ErrInvalidRules) {
		t.Errorf("NewModel() error = %v, want ErrInvalidRules", err)
	}
}

func TestModelKeysMove(t *testing.T) {
	var cues []session.Cue
	m := newTestModel(t, nil, FeedbackFunc(func(c session.Cue) { cues = append(cues, c) }))

	m = playAll(t, m)

	if m.Session().Moves() == 0 {
		t.Fatal("no move accepted")
	}
	if len(cues) != m.Session().Moves() {
		t.Errorf("got %d cues for %d moves", len(cues), m.Session().Moves())
	}
}

func TestModelMouseSwipe(t *testing.T) {
	m := newTestModel(t, nil, nil)

	swipes := [][2]int{{0, -5}, {10, 0}, {0, 5}, {-10, 0}}
	for _, d := range swipes {
		m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m, _ = send(t, m, tea.MouseMsg{X: 40 + d[0], Y: 12 + d[1], Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	}

	if m.Session().Moves() == 0 {
		t.Error("no swipe accepted")
	}
}

func TestModelShortDragIgnored(t *testing.T) {
	m := newTestModel(t, nil, nil)
	before := m.Session().Board()

	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 41, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.Session().Moves() != 0 || !m.Session().Board().Equal(before) {
		t.Error("a drag below the threshold should not move")
	}
}

func TestModelQuitSavesOnce(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store, nil)
	m = playAll(t, m)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(store.saved))
	}

	got := store.saved[0]
	snap := m.Session().Snapshot()
	if got.SessionID != snap.ID || got.Score != snap.Score || got.Moves != snap.Moves || got.Variant != "4x4-2048" {
		t.Errorf("saved %+v, session %+v", got, snap)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelQuitWithoutMovesSavesNothing(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store, nil)

	send(t, m, runeKey('q'))

	if len(store.saved) != 0 {
		t.Errorf("saved %d results, want 0", len(store.saved))
	}
}

func TestModelRestart(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store, nil)
	m = playAll(t, m)
	firstID := m.Session().ID()

	m, _ = send(t, m, runeKey('r'))

	if len(store.saved) != 1 {
		t.Errorf("restart should store the abandoned game, saved %d", len(store.saved))
	}
	if m.Session().ID() == firstID {
		t.Error("restart should start a new session")
	}
	if m.Session().Score() != 0 || m.Session().Moves() != 0 {
		t.Errorf("restart left score %d moves %d", m.Session().Score(), m.Session().Moves())
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showScore {
		t.Fatal("tab should open the scoreboard")
	}
	if got := m.scores.Variant(); got != "4x4-2048" {
		t.Errorf("scoreboard variant = %q", got)
	}

	// Arrows scroll the table instead of moving tiles.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Session().Moves() != 0 {
		t.Error("keys leaked to the board while the scoreboard was open")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showScore {
		t.Error("esc should close the scoreboard")
	}
}

func TestModelScoreboardNeedsStore(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showScore {
		t.Error("scoreboard should stay closed without a store")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m = playAll(t, m)
	before := m.Session().Snapshot()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if !m.Session().Board().Equal(grid.MustFromRows(before.Board)) {
		t.Error("resize changed the board")
	}
	if m.View() == "" {
		t.Error("View() should render the game")
	}
}
