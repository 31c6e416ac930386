// Package config handles client configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Start states selectable through game.start_state.
const (
	StartMenu = "menu"
	StartPlay = "play"
)

// Config holds all client settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Game    GameConfig    `yaml:"game"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 means unlimited
}

// GameConfig holds state flow settings.
type GameConfig struct {
	StartState string `yaml:"start_state"`

	// LoadingFrames puts a loading screen of at least this many frames in
	// front of the start state. 0 skips it.
	LoadingFrames int  `yaml:"loading_frames"`
	ShowFPS       bool `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Midgard",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Game: GameConfig{
			StartState:    StartMenu,
			LoadingFrames: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// FrameBudget returns the minimum frame duration for the FPS limit, or 0.
func (c *Config) FrameBudget() time.Duration {
	if c.Window.FPSLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Window.FPSLimit)
}

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit < 0 {
		return fmt.Errorf("fps_limit %d must not be negative", c.Window.FPSLimit)
	}
	switch c.Game.StartState {
	case StartMenu, StartPlay:
	default:
		return fmt.Errorf("unknown start_state %q", c.Game.StartState)
	}
	if c.Game.LoadingFrames < 0 {
		return fmt.Errorf("loading_frames %d must not be negative", c.Game.LoadingFrames)
	}
	return nil
}
