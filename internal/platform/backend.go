package platform

import "errors"

var (
	// ErrNoWindow is returned when no frontmost window can be resolved.
	ErrNoWindow = errors.New("no frontmost window")
	// ErrNoScreen is returned when no screen geometry is available.
	ErrNoScreen = errors.New("no screen available")
)

// WindowID is a platform-neutral window identifier, stable for the window's lifetime.
type WindowID uint32

// Handle is a per-operation capability for reading and writing one window's
// geometry. Callers obtain a fresh Handle for every snap, restore or
// animation and must not keep it beyond that sequence; the window behind it
// may close at any time.
type Handle struct {
	id WindowID
}

// NewHandle wraps a window ID. Backends call this from FrontmostWindow.
func NewHandle(id WindowID) Handle {
	return Handle{id: id}
}

// ID returns the identity of the window the handle refers to.
func (h Handle) ID() WindowID {
	return h.id
}

// Valid reports whether the handle refers to a window at all.
func (h Handle) Valid() bool {
	return h.id != 0
}

// Accessibility abstracts window-geometry access on the host window system.
type Accessibility interface {
	// Trusted reports whether geometry reads and writes can succeed.
	Trusted() bool
	// FrontmostWindow resolves the focused top-level window. Returns ErrNoWindow
	// when nothing is focused.
	FrontmostWindow() (Handle, error)
	Frame(h Handle) (Frame, error)
	SetFrame(h Handle, f Frame) error
	Screens() ([]Screen, error)
	// ScreenContaining returns the screen whose frame contains p, falling back
	// to the first screen.
	ScreenContaining(p Point) (Screen, error)
}
