package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_EnableDisable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "autostart")
	m := NewManagerAt(dir, "/usr/local/bin/snaptile")

	enabled, err := m.Enabled()
	if err != nil || enabled {
		t.Fatalf("expected disabled before enable, got %v, %v", enabled, err)
	}

	if err := m.Enable(); err != nil {
		t.Fatalf("enable: %v", err)
	}
	data, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if !strings.Contains(string(data), "Exec=/usr/local/bin/snaptile daemon\n") {
		t.Fatalf("unexpected entry:\n%s", data)
	}
	if !strings.HasPrefix(string(data), "[Desktop Entry]\n") {
		t.Fatalf("expected desktop entry header, got:\n%s", data)
	}
	if enabled, _ := m.Enabled(); !enabled {
		t.Fatalf("expected enabled after enable")
	}

	if err := m.Disable(); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if enabled, _ := m.Enabled(); enabled {
		t.Fatalf("expected disabled after disable")
	}
	if err := m.Disable(); err != nil {
		t.Fatalf("second disable should be a no-op, got %v", err)
	}
}

func TestManager_EnableQuotesPathWithSpaces(t *testing.T) {
	m := NewManagerAt(t.TempDir(), "/opt/my apps/snaptile")
	if err := m.Enable(); err != nil {
		t.Fatalf("enable: %v", err)
	}
	data, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if !strings.Contains(string(data), `Exec="/opt/my apps/snaptile" daemon`) {
		t.Fatalf("expected quoted exec, got:\n%s", data)
	}
}

func TestManager_EnableRequiresExec(t *testing.T) {
	m := NewManagerAt(t.TempDir(), "")
	if err := m.Enable(); err == nil {
		t.Fatalf("expected error for empty exec path")
	}
}

func TestNewManager_UsesXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	m, err := NewManager("/bin/snaptile")
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	want := filepath.Join(dir, "autostart", EntryName)
	if m.Path() != want {
		t.Fatalf("expected %s, got %s", want, m.Path())
	}
}
