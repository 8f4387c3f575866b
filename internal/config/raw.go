package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// RawConfig is the on-disk shape. Nil fields were not set by the file.
type RawConfig struct {
	Include IncludeList `yaml:"include"`

	LeftHotkey  *string `yaml:"left_hotkey"`
	RightHotkey *string `yaml:"right_hotkey"`

	AnimationEnabled  *bool    `yaml:"animation_enabled"`
	AnimationDuration *float64 `yaml:"animation_duration"`
	AnimationSteps    *int     `yaml:"animation_steps"`

	DragRestore *bool `yaml:"drag_restore"`
	OpenOnLogin *bool `yaml:"open_on_login"`

	LogLevel *string `yaml:"log_level"`
	Display  *string `yaml:"display"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c
	out.Include = nil

	if overlay.LeftHotkey != nil {
		out.LeftHotkey = overlay.LeftHotkey
	}
	if overlay.RightHotkey != nil {
		out.RightHotkey = overlay.RightHotkey
	}
	if overlay.AnimationEnabled != nil {
		out.AnimationEnabled = overlay.AnimationEnabled
	}
	if overlay.AnimationDuration != nil {
		out.AnimationDuration = overlay.AnimationDuration
	}
	if overlay.AnimationSteps != nil {
		out.AnimationSteps = overlay.AnimationSteps
	}
	if overlay.DragRestore != nil {
		out.DragRestore = overlay.DragRestore
	}
	if overlay.OpenOnLogin != nil {
		out.OpenOnLogin = overlay.OpenOnLogin
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	return out
}
