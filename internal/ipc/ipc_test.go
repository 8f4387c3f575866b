package ipc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type fakeService struct {
	mu        sync.Mutex
	reloadErr error
	reloads   int
	snaps     []string
}

func (f *fakeService) Snap(ctx context.Context, direction string) (*SnapData, error) {
	if direction != "left" && direction != "right" {
		return nil, fmt.Errorf("invalid direction %q", direction)
	}
	f.mu.Lock()
	f.snaps = append(f.snaps, direction)
	f.mu.Unlock()
	return &SnapData{Window: 42, Action: "snapped", From: "none", To: direction, Target: FrameInfo{Width: 960, Height: 1080}}, nil
}

func (f *fakeService) Status(ctx context.Context) (*StatusData, error) {
	return &StatusData{
		DaemonRunning: true,
		Trusted:       true,
		LeftHotkey:    HotkeyInfo{Sequence: "Mod4-Mod1-Left", Display: "Alt+Super+Left", Active: true},
		Windows:       []WindowInfo{{ID: 42, State: "left"}},
	}, nil
}

func (f *fakeService) Reload(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads++
	return f.reloadErr
}

func startServer(t *testing.T, svc Service) *Client {
	t.Helper()
	// Unix socket paths are length-limited; keep it short.
	dir, err := os.MkdirTemp("", "snaptile")
	if err != nil {
		t.Fatalf("mkdtemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	srv, err := NewServer(filepath.Join(dir, "s.sock"), svc)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(srv.Stop)
	return NewClientAt(srv.SocketPath())
}

func TestClientServer_Snap(t *testing.T) {
	svc := &fakeService{}
	client := startServer(t, svc)

	data, err := client.Snap("right")
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	if data.Window != 42 || data.To != "right" || data.Target.Width != 960 {
		t.Fatalf("unexpected snap data %+v", data)
	}

	if _, err := client.Snap("up"); err == nil || !strings.Contains(err.Error(), "invalid direction") {
		t.Fatalf("expected daemon error for bad direction, got %v", err)
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.snaps) != 1 {
		t.Fatalf("expected one successful snap, got %v", svc.snaps)
	}
}

func TestClientServer_Status(t *testing.T) {
	client := startServer(t, &fakeService{})

	st, err := client.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if !st.DaemonRunning || st.LeftHotkey.Display != "Alt+Super+Left" || len(st.Windows) != 1 {
		t.Fatalf("unexpected status %+v", st)
	}
	if err := client.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestClientServer_ReloadError(t *testing.T) {
	svc := &fakeService{reloadErr: errors.New("animation_duration: out of range")}
	client := startServer(t, svc)

	err := client.Reload()
	if err == nil || !strings.Contains(err.Error(), "animation_duration") {
		t.Fatalf("expected reload error to surface, got %v", err)
	}

	svc.mu.Lock()
	svc.reloadErr = nil
	svc.mu.Unlock()
	if err := client.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.reloads != 2 {
		t.Fatalf("expected 2 reloads, got %d", svc.reloads)
	}
}

func TestClient_NoDaemon(t *testing.T) {
	client := NewClientAt(filepath.Join(t.TempDir(), "missing.sock"))
	if err := client.Ping(); err == nil || !strings.Contains(err.Error(), "is the daemon running") {
		t.Fatalf("expected connect error, got %v", err)
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	s := &Server{service: &fakeService{}}
	resp := s.handleCommand(context.Background(), &Request{Command: "TILE"})
	if resp.Status != "ERROR" || !strings.Contains(resp.Error, "Unknown command") {
		t.Fatalf("unexpected response %+v", resp)
	}
}
