package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Size:       grid.DefaultSize,
			WinTarget:  grid.DefaultWinTarget,
			Spawn4Prob: grid.DefaultSpawn4Prob,
		},
		Storage: StorageConfig{
			Path: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Feedback: FeedbackConfig{
			Bell: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
