// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play in this terminal
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores [variant]   - Show high scores
//	t2048 list               - List board presets
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.t2048/config.yaml, then ./configs/t2048.yaml)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--preset <id>       - Use a board preset
//	--size, --target    - Board size and win tile, overriding the config and preset
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagPreset   string
	flagSize     int
	flagTarget   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the sliding-tile merge puzzle for the terminal.
Slide the board in one of four directions; equal neighbours merge
into their sum. Reach the target tile to win, then keep going.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - List board presets

Examples:
  t2048 play
  t2048 play --preset big
  t2048 play --size 5 --target 4096
  t2048 serve --ssh :2222
  t2048 scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board preset, see 'list' (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTarget, "target", 0, "Winning tile (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagPreset != "" {
		preset, err := registry.Get(flagPreset)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Game.Size = preset.Rules.Size
		cfg.Game.WinTarget = preset.Rules.WinTarget
		cfg.Game.Spawn4Prob = preset.Rules.Spawn4Prob
	}
	if flagSize != 0 {
		cfg.Game.Size = flagSize
	}
	if flagTarget != 0 {
		cfg.Game.WinTarget = flagTarget
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds a structured logger at the configured level.
func newLogger(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	// Level was checked by config.Validate
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openStore opens the score database. Games still work without it, so a
// failure is logged and a nil store returned.
func openStore(path string, logger *log.Logger) (tui.ScoreStore, func()) {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", path, "error", err)
		return nil, func() {}
	}
	return store, func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("closing scores database", "error", cerr)
		}
	}
}
