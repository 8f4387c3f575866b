package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig overlays raw onto DefaultConfig. It does not validate.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.LeftHotkey != nil {
		cfg.LeftHotkey = *raw.LeftHotkey
	}
	if raw.RightHotkey != nil {
		cfg.RightHotkey = *raw.RightHotkey
	}
	if raw.AnimationEnabled != nil {
		cfg.AnimationEnabled = *raw.AnimationEnabled
	}
	if raw.AnimationDuration != nil {
		cfg.AnimationDuration = *raw.AnimationDuration
	}
	if raw.AnimationSteps != nil {
		cfg.AnimationSteps = *raw.AnimationSteps
	}
	if raw.DragRestore != nil {
		cfg.DragRestore = *raw.DragRestore
	}
	if raw.OpenOnLogin != nil {
		cfg.OpenOnLogin = *raw.OpenOnLogin
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}

	return cfg
}
