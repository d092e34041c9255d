package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSwipe int
	flagMenu  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  Mouse drag        - Swipe
  C/Enter           - Keep going after reaching the target
  R                 - Restart
  Tab               - Scoreboard
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --menu
  t2048 play --size 3 --target 256
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVarP(&flagMenu, "menu", "m", false, "Pick a board preset before playing")
	playCmd.Flags().IntVar(&flagSwipe, "swipe", 0, "Minimum mouse drag in cells that counts as a swipe (0 = default)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The full-screen UI owns stdout, so logs go to a file.
	logOut, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, cfg.Log.Level, "t2048")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rules := cfg.Rules()
	if flagMenu {
		preset, menuErr := tui.RunPresetMenu(rules.Variant(), width, height)
		if menuErr != nil {
			return menuErr
		}
		if preset == nil {
			return nil
		}
		rules = preset.Rules
		logger.Debug("preset selected", "preset", preset.ID)
	}

	store, closeStore := openStore(cfg.Storage.Path, logger)
	defer closeStore()

	return tui.Run(tui.Options{
		Rules:          rules,
		Seed:           flagSeed,
		Store:          store,
		Logger:         logger,
		Feedback:       tui.NewBellFeedback(os.Stdout, cfg.Feedback.Bell),
		Width:          width,
		Height:         height,
		SwipeThreshold: flagSwipe,
	})
}

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
