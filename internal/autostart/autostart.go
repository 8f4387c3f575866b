// Package autostart manages the XDG autostart entry that starts the
// snaptile daemon at login.
package autostart

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// EntryName is the file name of the autostart entry.
const EntryName = "snaptile.desktop"

//go:embed templates/snaptile.desktop.tmpl
var entryTemplate string

var entryTmpl = template.Must(template.New("desktop").Parse(entryTemplate))

// Manager writes and removes the autostart entry.
type Manager struct {
	dir  string
	exec string
}

// NewManager returns a manager for $XDG_CONFIG_HOME/autostart (or
// ~/.config/autostart) launching execPath.
func NewManager(execPath string) (*Manager, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return NewManagerAt(filepath.Join(configDir, "autostart"), execPath), nil
}

// NewManagerAt uses dir as the autostart directory.
func NewManagerAt(dir, execPath string) *Manager {
	return &Manager{dir: dir, exec: execPath}
}

// Path returns the full path of the entry.
func (m *Manager) Path() string {
	return filepath.Join(m.dir, EntryName)
}

// Enable writes the entry, replacing any existing one.
func (m *Manager) Enable() error {
	if strings.TrimSpace(m.exec) == "" {
		return fmt.Errorf("executable path is empty")
	}
	var buf bytes.Buffer
	if err := entryTmpl.Execute(&buf, struct{ Exec string }{Exec: quoteExec(m.exec)}); err != nil {
		return fmt.Errorf("failed to render autostart entry: %w", err)
	}
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}
	if err := os.WriteFile(m.Path(), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}

// Disable removes the entry. A missing entry is not an error.
func (m *Manager) Disable() error {
	if err := os.Remove(m.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}
	return nil
}

// Enabled reports whether the entry exists.
func (m *Manager) Enabled() (bool, error) {
	_, err := os.Stat(m.Path())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// quoteExec quotes an Exec path per the desktop entry rules when it
// contains characters the launcher would split or expand.
func quoteExec(path string) string {
	if !strings.ContainsAny(path, " \t\"'\\$`") {
		return path
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(path) + `"`
}
