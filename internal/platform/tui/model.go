// Package tui provides the Bubble Tea front end for the 2048 session.
// It handles the terminal UI loop, input mapping, score persistence and
// the SSH server that hosts the same model remotely.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ScoreStore persists finished games and serves the scoreboard.
// *storage.Store implements it.
type ScoreStore interface {
	ScoreReader
	SaveResult(r storage.GameResult) (int64, error)
	HighScore(variant string) (int, error)
}

// Options configures a game model.
type Options struct {
	Rules          grid.Rules
	Seed           int64 // 0 = random based on time
	Store          ScoreStore
	Logger         *log.Logger
	Feedback       Feedback
	Width          int
	Height         int
	SwipeThreshold int // Minimum drag in cells; 0 uses the default
}

// Model is the Bubble Tea model for one player's 2048 session.
type Model struct {
	sess     *session.Session
	store    ScoreStore
	logger   *log.Logger
	feedback Feedback
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	width    int
	height   int

	swipe     int
	dragging  bool
	dragX     int
	dragY     int
	saved     bool // Result for the current session already stored
	beatBest  bool
	quitting  bool
	scores    ScoreboardModel
	showScore bool
}

// NewModel creates a model with a fresh session. The best score is read from
// the store when one is configured.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fb := opts.Feedback
	if fb == nil {
		fb = nopFeedback{}
	}
	swipe := opts.SwipeThreshold
	if swipe <= 0 {
		swipe = core.DefaultSwipeThreshold
	}

	engine, err := grid.NewEngine(opts.Rules)
	if err != nil {
		return Model{}, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	best := 0
	if opts.Store != nil {
		high, hsErr := opts.Store.HighScore(opts.Rules.Variant())
		if hsErr != nil {
			logger.Warn("could not read best score", "error", hsErr)
		} else {
			best = high
		}
	}

	sess, err := session.New(engine, grid.NewRand(seed), best)
	if err != nil {
		return Model{}, err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}

	h := help.New()
	h.Width = width

	logger.Info("session started", "session", sess.ID(), "variant", sess.Variant(), "seed", seed, "best", best)

	return Model{
		sess:     sess,
		store:    opts.Store,
		logger:   logger,
		feedback: fb,
		keys:     DefaultKeyMap(),
		help:     h,
		screen:   core.NewScreen(width, max(height-1, 1)),
		width:    width,
		height:   height,
		swipe:    swipe,
	}, nil
}

// Session returns the underlying game session.
func (m Model) Session() *session.Session {
	return m.sess
}

// Init initializes the model. Moves are event driven, so no tick loop runs.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleResize(wsm)
	}

	if m.showScore {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.showScore {
		updated, cmd := m.scores.Update(msg)
		if sb, ok := updated.(ScoreboardModel); ok {
			m.scores = sb
		}
		return m, cmd
	}
	return m, nil
}

// handleMouse turns a left-button drag into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		return m.apply(core.SwipeAction(msg.X-m.dragX, msg.Y-m.dragY, m.swipe))
	}
	return m, nil
}

// apply performs one action against the session.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.saveResult()
		m.quitting = true
		m.logger.Info("session ended", "session", m.sess.ID(), "score", m.sess.Score(), "moves", m.sess.Moves())
		return m, tea.Quit

	case core.ActionRestart:
		m.saveResult()
		if err := m.sess.Restart(); err != nil {
			m.logger.Error("restart failed", "error", err)
			return m, nil
		}
		m.saved = false
		m.beatBest = false
		m.logger.Info("session restarted", "session", m.sess.ID())

	case core.ActionContinue:
		if m.sess.Continue() {
			m.logger.Info("playing past the target", "session", m.sess.ID(), "score", m.sess.Score())
		}

	case core.ActionScores:
		if m.store != nil {
			m.scores = NewScoreboardModel(m.store, m.sess.Variant(), m.width, m.height)
			m.showScore = true
		}

	default:
		if d, ok := directionFor(action); ok {
			m.move(d)
		}
	}

	return m, nil
}

// move applies a direction and reacts to the outcome.
func (m *Model) move(d grid.Direction) {
	out, err := m.sess.Move(d)
	if err != nil {
		m.logger.Error("move rejected", "direction", d, "error", err)
		return
	}
	if !out.Accepted {
		return
	}

	m.feedback.Cue(out.Cue)
	if out.NewBest {
		m.beatBest = true
	}
	if !out.Spawned {
		m.logger.Warn("no empty cell after move", "session", m.sess.ID())
	}
	if out.Won {
		m.logger.Info("target reached", "session", m.sess.ID(), "score", m.sess.Score(), "moves", m.sess.Moves())
	}
	if out.Terminal {
		m.logger.Info("game over", "session", m.sess.ID(), "score", m.sess.Score(), "best", m.sess.Best())
		m.saveResult()
	}
}

// saveResult stores the current game once. Games without a move are skipped.
func (m *Model) saveResult() {
	if m.saved || m.store == nil || m.sess.Moves() == 0 {
		return
	}
	snap := m.sess.Snapshot()
	_, err := m.store.SaveResult(storage.GameResult{
		Variant:   snap.Variant,
		SessionID: snap.ID,
		Score:     snap.Score,
		MaxTile:   snap.MaxTile,
		Moves:     snap.Moves,
		Won:       snap.Won,
	})
	if err != nil {
		m.logger.Error("could not save score", "session", snap.ID, "error", err)
		return
	}
	m.saved = true
	if m.beatBest {
		m.logger.Info("new best score", "variant", snap.Variant, "score", snap.Score)
	}
}

// updateScores forwards messages to the scoreboard overlay.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		m.showScore = false
		return m.apply(core.ActionQuit)
	case m.scores.IsGoingBack():
		m.showScore = false
		return m, nil
	}
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScore {
		return m.scores.View()
	}

	m.sess.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags become swipes
	)

	_, err = p.Run()
	return err
}
