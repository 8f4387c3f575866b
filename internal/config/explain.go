package config

import (
	"fmt"
	"sort"
)

var explainPaths = map[string]func(*Config) any{
	"left_hotkey":        func(c *Config) any { return c.LeftHotkey },
	"right_hotkey":       func(c *Config) any { return c.RightHotkey },
	"animation_enabled":  func(c *Config) any { return c.AnimationEnabled },
	"animation_duration": func(c *Config) any { return c.AnimationDuration },
	"animation_steps":    func(c *Config) any { return c.AnimationSteps },
	"drag_restore":       func(c *Config) any { return c.DragRestore },
	"open_on_login":      func(c *Config) any { return c.OpenOnLogin },
	"log_level":          func(c *Config) any { return c.LogLevel },
	"display":            func(c *Config) any { return c.Display },
}

// ExplainPaths lists the keys accepted by Explain, sorted.
func ExplainPaths() []string {
	out := make([]string, 0, len(explainPaths))
	for p := range explainPaths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Explain returns the effective value at the given key and where it came from.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	get, ok := explainPaths[path]
	if !ok {
		return nil, Source{}, fmt.Errorf("unknown path: %s", path)
	}
	value := get(res.Config)

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}
