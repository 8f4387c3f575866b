package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultLeftHotkey        = "Mod4-Mod1-Left"
	DefaultRightHotkey       = "Mod4-Mod1-Right"
	DefaultAnimationDuration = 0.13
	DefaultAnimationSteps    = 12

	MinAnimationDuration = 0.08
	MaxAnimationDuration = 0.5
	MinAnimationSteps    = 4
	MaxAnimationSteps    = 30
)

// Config holds the effective snaptile settings.
type Config struct {
	LeftHotkey  string `yaml:"left_hotkey"`
	RightHotkey string `yaml:"right_hotkey"`

	AnimationEnabled  bool    `yaml:"animation_enabled"`
	AnimationDuration float64 `yaml:"animation_duration"` // seconds
	// AnimationSteps is accepted for compatibility; frames are time-based.
	AnimationSteps int `yaml:"animation_steps"`

	DragRestore bool `yaml:"drag_restore"`
	OpenOnLogin bool `yaml:"open_on_login"`

	LogLevel string `yaml:"log_level"`
	// Display overrides $DISPLAY when set.
	Display string `yaml:"display,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LeftHotkey:        DefaultLeftHotkey,
		RightHotkey:       DefaultRightHotkey,
		AnimationEnabled:  true,
		AnimationDuration: DefaultAnimationDuration,
		AnimationSteps:    DefaultAnimationSteps,
		DragRestore:       true,
		OpenOnLogin:       false,
		LogLevel:          "info",
	}
}

// AnimationDurationValue converts AnimationDuration to a time.Duration.
func (c *Config) AnimationDurationValue() time.Duration {
	if c == nil {
		return 0
	}
	return time.Duration(c.AnimationDuration * float64(time.Second))
}

// SlogLevel maps log_level onto a slog level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LeftHotkey) == "" {
		return &ValidationError{Path: "left_hotkey", Err: fmt.Errorf("left_hotkey is required")}
	}
	if strings.TrimSpace(c.RightHotkey) == "" {
		return &ValidationError{Path: "right_hotkey", Err: fmt.Errorf("right_hotkey is required")}
	}
	if normalizeHotkey(c.LeftHotkey) == normalizeHotkey(c.RightHotkey) {
		return &ValidationError{Path: "right_hotkey", Err: fmt.Errorf("right_hotkey must differ from left_hotkey (%q)", c.LeftHotkey)}
	}
	if c.AnimationDuration < MinAnimationDuration || c.AnimationDuration > MaxAnimationDuration {
		return &ValidationError{Path: "animation_duration", Err: fmt.Errorf("animation_duration must be between %g and %g seconds", MinAnimationDuration, MaxAnimationDuration)}
	}
	if c.AnimationSteps < MinAnimationSteps || c.AnimationSteps > MaxAnimationSteps {
		return &ValidationError{Path: "animation_steps", Err: fmt.Errorf("animation_steps must be between %d and %d", MinAnimationSteps, MaxAnimationSteps)}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

// normalizeHotkey lowercases a key sequence so "mod4-mod1-left" and
// "Mod4-Mod1-Left" compare equal.
func normalizeHotkey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
