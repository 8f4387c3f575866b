package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Geometry is a window rectangle in root coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// FrameExtents are the decoration sizes the window manager adds around a
// client window (_NET_FRAME_EXTENTS).
type FrameExtents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// outerFromClient grows a client rectangle by the decorations around it.
func outerFromClient(client Geometry, ext FrameExtents) Geometry {
	return Geometry{
		X:      client.X - ext.Left,
		Y:      client.Y - ext.Top,
		Width:  client.Width + ext.Left + ext.Right,
		Height: client.Height + ext.Top + ext.Bottom,
	}
}

// clientSizeForOuter returns the client size that makes the decorated window
// exactly outer. Sizes never drop below one pixel.
func clientSizeForOuter(outer Geometry, ext FrameExtents) (width, height int) {
	width = max(1, outer.Width-ext.Left-ext.Right)
	height = max(1, outer.Height-ext.Top-ext.Bottom)
	return width, height
}

// MoveResizeWindow places the decorated window so its outer frame is outer.
// With NorthWest gravity the window manager treats x,y as the frame's outer
// corner and width,height as the client size.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, outer Geometry) error {
	// A maximized window ignores size requests on most WMs.
	_ = c.unmaximizeWindow(windowID)

	width, height := clientSizeForOuter(outer, c.GetFrameExtents(windowID))
	err := ewmh.MoveresizeWindow(c.XUtil, windowID, outer.X, outer.Y, width, height)
	if err == nil {
		return nil
	}

	// Fallback to a direct ConfigureWindow request.
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(int32(outer.X)), uint32(int32(outer.Y)), uint32(width), uint32(height)}
	if cerr := xproto.ConfigureWindowChecked(c.XUtil.Conn(), windowID, mask, values).Check(); cerr != nil {
		return fmt.Errorf("move window %d: %w (ewmh request failed: %v)", windowID, cerr, err)
	}
	return nil
}

// GetFrameExtents returns the window decoration sizes, or zeros when the
// window manager does not publish them.
func (c *Connection) GetFrameExtents(windowID xproto.Window) FrameExtents {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil || extents == nil {
		return FrameExtents{}
	}
	return FrameExtents{
		Left:   int(extents.Left),
		Right:  int(extents.Right),
		Top:    int(extents.Top),
		Bottom: int(extents.Bottom),
	}
}

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			if err := ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, state); err != nil {
				return err
			}
		}
	}
	return nil
}

// WindowGeometry returns the outer (decorated) window rectangle in root
// coordinates, the same rectangle MoveResizeWindow writes.
func (c *Connection) WindowGeometry(windowID xproto.Window) (Geometry, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("get geometry of window %d: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("translate coordinates of window %d: %w", windowID, err)
	}

	client := Geometry{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}
	return outerFromClient(client, c.GetFrameExtents(windowID)), nil
}

// GetActiveWindow returns the window named by _NET_ACTIVE_WINDOW.
func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// WindowTitle returns the best available title for a window, or "".
func (c *Connection) WindowTitle(windowID xproto.Window) string {
	if title, err := ewmh.WmNameGet(c.XUtil, windowID); err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	if title, err := icccm.WmNameGet(c.XUtil, windowID); err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}
