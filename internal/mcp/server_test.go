package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/1broseidon/snaptile/internal/ipc"
)

type fakeDaemon struct {
	directions []string
	snapData   *ipc.SnapData
	status     *ipc.StatusData
	err        error
}

func (f *fakeDaemon) Snap(direction string) (*ipc.SnapData, error) {
	f.directions = append(f.directions, direction)
	if f.err != nil {
		return nil, f.err
	}
	return f.snapData, nil
}

func (f *fakeDaemon) GetStatus() (*ipc.StatusData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

func TestHandleSnapWindow(t *testing.T) {
	d := &fakeDaemon{snapData: &ipc.SnapData{
		Window: 42,
		Title:  "editor",
		Action: "snapped",
		From:   "none",
		To:     "left",
		Target: ipc.FrameInfo{X: 0, Y: 25, Width: 960, Height: 1055},
	}}
	s := NewServer(d)

	_, out, err := s.handleSnapWindow(context.Background(), nil, SnapWindowInput{Direction: "LEFT"})
	if err != nil {
		t.Fatalf("snap_window: %v", err)
	}
	if len(d.directions) != 1 || d.directions[0] != "left" {
		t.Fatalf("expected normalized direction, got %v", d.directions)
	}
	if out.Window != 42 || out.Action != "snapped" || out.To != "left" {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.Target == nil || out.Target.Width != 960 {
		t.Fatalf("expected target frame, got %+v", out.Target)
	}
}

func TestHandleSnapWindow_UnchangedHasNoTarget(t *testing.T) {
	d := &fakeDaemon{snapData: &ipc.SnapData{Window: 42, Action: "unchanged", From: "left", To: "left"}}
	s := NewServer(d)

	_, out, err := s.handleSnapWindow(context.Background(), nil, SnapWindowInput{Direction: "left"})
	if err != nil {
		t.Fatalf("snap_window: %v", err)
	}
	if out.Target != nil {
		t.Fatalf("expected no target for unchanged, got %+v", out.Target)
	}
}

func TestHandleSnapWindow_InvalidDirection(t *testing.T) {
	d := &fakeDaemon{}
	s := NewServer(d)

	if _, _, err := s.handleSnapWindow(context.Background(), nil, SnapWindowInput{Direction: "up"}); err == nil {
		t.Fatalf("expected error for invalid direction")
	}
	if len(d.directions) != 0 {
		t.Fatalf("daemon should not be called, got %v", d.directions)
	}
}

func TestHandleSnapWindow_DaemonError(t *testing.T) {
	s := NewServer(&fakeDaemon{err: errors.New("failed to connect to daemon")})

	if _, _, err := s.handleSnapWindow(context.Background(), nil, SnapWindowInput{Direction: "right"}); err == nil {
		t.Fatalf("expected daemon error")
	}
}

func TestHandleSnapStatus(t *testing.T) {
	d := &fakeDaemon{status: &ipc.StatusData{
		UptimeSeconds:       90,
		DaemonRunning:       true,
		Trusted:             true,
		LeftHotkey:          ipc.HotkeyInfo{Sequence: "Mod4-Mod1-Left", Display: "Alt+Super+Left", Active: true},
		RightHotkey:         ipc.HotkeyInfo{Sequence: "Mod4-Mod1-Right", Display: "Alt+Super+Right"},
		AnimationEnabled:    true,
		AnimationDurationMS: 130,
		DragRestore:         true,
		Windows: []ipc.WindowInfo{
			{ID: 7, Title: "term", State: "right", Original: ipc.FrameInfo{X: 100, Y: 100, Width: 800, Height: 600}},
		},
	}}
	s := NewServer(d)

	_, out, err := s.handleSnapStatus(context.Background(), nil, SnapStatusInput{})
	if err != nil {
		t.Fatalf("snap_status: %v", err)
	}
	if !out.LeftHotkey.Active || out.RightHotkey.Active {
		t.Fatalf("unexpected hotkey activity %+v / %+v", out.LeftHotkey, out.RightHotkey)
	}
	if out.AnimationDurationMS != 130 || !out.DragRestore {
		t.Fatalf("unexpected settings %+v", out)
	}
	if len(out.Windows) != 1 || out.Windows[0].State != "right" || out.Windows[0].Original.Width != 800 {
		t.Fatalf("unexpected windows %+v", out.Windows)
	}
}
