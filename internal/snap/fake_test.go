package snap

import (
	"sync"

	"github.com/1broseidon/snaptile/internal/platform"
)

type fakeBackend struct {
	mu       sync.Mutex
	front    platform.WindowID
	frames   map[platform.WindowID]platform.Frame
	screens  []platform.Screen
	writes   []platform.Frame
	frameErr error
	setErr   error
}

func newFakeBackend() *fakeBackend {
	full := platform.Frame{X: 0, Y: 0, Width: 1920, Height: 1080}
	return &fakeBackend{
		front:   1,
		frames:  map[platform.WindowID]platform.Frame{1: {X: 100, Y: 100, Width: 800, Height: 600}},
		screens: []platform.Screen{{ID: 0, Frame: full, Visible: full}},
	}
}

func (f *fakeBackend) Trusted() bool { return true }

func (f *fakeBackend) FrontmostWindow() (platform.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.front == 0 {
		return platform.Handle{}, platform.ErrNoWindow
	}
	return platform.NewHandle(f.front), nil
}

func (f *fakeBackend) Frame(h platform.Handle) (platform.Frame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.frameErr != nil {
		return platform.Frame{}, f.frameErr
	}
	fr, ok := f.frames[h.ID()]
	if !ok {
		return platform.Frame{}, platform.ErrNoWindow
	}
	return fr, nil
}

func (f *fakeBackend) SetFrame(h platform.Handle, fr platform.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, fr)
	if f.setErr != nil {
		return f.setErr
	}
	f.frames[h.ID()] = fr
	return nil
}

func (f *fakeBackend) Screens() ([]platform.Screen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.screens) == 0 {
		return nil, platform.ErrNoScreen
	}
	return append([]platform.Screen(nil), f.screens...), nil
}

func (f *fakeBackend) ScreenContaining(p platform.Point) (platform.Screen, error) {
	screens, err := f.Screens()
	if err != nil {
		return platform.Screen{}, err
	}
	return platform.ScreenAt(screens, p)
}

func (f *fakeBackend) frame(id platform.WindowID) platform.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames[id]
}

func (f *fakeBackend) setFrame(id platform.WindowID, fr platform.Frame) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames[id] = fr
}

func (f *fakeBackend) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}
