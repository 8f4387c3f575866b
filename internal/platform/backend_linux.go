//go:build linux

package platform

import (
	"fmt"
	"math"
	"sort"

	"github.com/1broseidon/snaptile/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// LinuxBackend wraps an existing X11 connection behind the Accessibility interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Accessibility = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11
// connection to display (empty means $DISPLAY).
func NewLinuxBackendFromDisplay(display string) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop starts the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// Quit stops a running EventLoop.
func (b *LinuxBackend) Quit() {
	if b != nil && b.conn != nil {
		b.conn.Quit()
	}
}

// XUtil returns the underlying xgbutil connection for X11-specific operations.
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

// Connection exposes the wrapped X11 connection.
func (b *LinuxBackend) Connection() *x11.Connection {
	if b == nil {
		return nil
	}
	return b.conn
}

// Trusted reports whether the X11 connection is usable. X11 has no
// per-application accessibility permission, so a live connection is enough.
func (b *LinuxBackend) Trusted() bool {
	return b != nil && b.conn != nil && b.conn.Alive()
}

// FrontmostWindow returns a handle for the _NET_ACTIVE_WINDOW.
func (b *LinuxBackend) FrontmostWindow() (Handle, error) {
	conn, err := b.connection()
	if err != nil {
		return Handle{}, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %v", ErrNoWindow, err)
	}
	if wid == 0 || wid == conn.Root {
		return Handle{}, ErrNoWindow
	}
	return NewHandle(WindowID(wid)), nil
}

// Frame returns the window's outer geometry, decorations included, in root
// coordinates.
func (b *LinuxBackend) Frame(h Handle) (Frame, error) {
	conn, err := b.connection()
	if err != nil {
		return Frame{}, err
	}
	if !h.Valid() {
		return Frame{}, ErrNoWindow
	}

	geom, err := conn.WindowGeometry(xproto.Window(h.ID()))
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		X:      float64(geom.X),
		Y:      float64(geom.Y),
		Width:  float64(geom.Width),
		Height: float64(geom.Height),
	}, nil
}

// SetFrame moves and resizes the window, rounding to whole pixels.
func (b *LinuxBackend) SetFrame(h Handle, f Frame) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	if !h.Valid() {
		return ErrNoWindow
	}

	return conn.MoveResizeWindow(xproto.Window(h.ID()), x11.Geometry{
		X:      int(math.Round(f.X)),
		Y:      int(math.Round(f.Y)),
		Width:  max(1, int(math.Round(f.Width))),
		Height: max(1, int(math.Round(f.Height))),
	})
}

// Screens returns all active monitors with their usable areas.
func (b *LinuxBackend) Screens() ([]Screen, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, ErrNoScreen
	}

	screens := make([]Screen, 0, len(monitors))
	for _, m := range monitors {
		screens = append(screens, Screen{
			ID:      m.ID,
			Name:    m.Name,
			Frame:   frameFromMonitor(m),
			Visible: frameFromMonitor(conn.Usable(m)),
		})
	}

	sort.Slice(screens, func(i, j int) bool {
		return screens[i].ID < screens[j].ID
	})

	return screens, nil
}

// ScreenContaining returns the screen under p.
func (b *LinuxBackend) ScreenContaining(p Point) (Screen, error) {
	screens, err := b.Screens()
	if err != nil {
		return Screen{}, err
	}
	return ScreenAt(screens, p)
}

// WindowTitle returns the title of a window, or "" when unknown.
func (b *LinuxBackend) WindowTitle(id WindowID) string {
	conn, err := b.connection()
	if err != nil {
		return ""
	}
	return conn.WindowTitle(xproto.Window(id))
}

// PointerPosition samples the pointer location and whether the primary
// button is held.
func (b *LinuxBackend) PointerPosition() (Point, bool, error) {
	conn, err := b.connection()
	if err != nil {
		return Point{}, false, err
	}
	x, y, mask, err := conn.PointerPosition()
	if err != nil {
		return Point{}, false, err
	}
	return Point{X: float64(x), Y: float64(y)}, mask&x11.ButtonMaskPrimary != 0, nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func frameFromMonitor(m x11.Monitor) Frame {
	return Frame{
		X:      float64(m.X),
		Y:      float64(m.Y),
		Width:  float64(m.Width),
		Height: float64(m.Height),
	}
}
