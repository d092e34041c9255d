// Package config provides YAML-based configuration loading for the game,
// its score storage, logging and the SSH server.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Config is the complete application configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Feedback FeedbackConfig `yaml:"feedback"`
}

// GameConfig defines the puzzle rules.
type GameConfig struct {
	Size       int     `yaml:"size"`
	WinTarget  int     `yaml:"win_target"`
	Spawn4Prob float64 `yaml:"spawn4_prob"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used by the full-screen client; empty disables file logging
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// FeedbackConfig toggles move feedback.
type FeedbackConfig struct {
	Bell bool `yaml:"bell"` // Ring the terminal bell on merges and wins
}

// Rules converts the game section into engine rules.
func (c Config) Rules() grid.Rules {
	return grid.Rules{
		Size:       c.Game.Size,
		WinTarget:  c.Game.WinTarget,
		Spawn4Prob: c.Game.Spawn4Prob,
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: game: %w", err)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout is negative")
	}
	return nil
}
