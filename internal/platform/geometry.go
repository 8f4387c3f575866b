package platform

import "fmt"

// Point is a position in screen coordinates (top-left origin, y down).
type Point struct {
	X float64
	Y float64
}

// Frame describes a window's position and size in screen coordinates.
type Frame struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MinX returns the left edge.
func (f Frame) MinX() float64 { return f.X }

// MaxX returns the right edge.
func (f Frame) MaxX() float64 { return f.X + f.Width }

// Center returns the midpoint of the frame.
func (f Frame) Center() Point {
	return Point{X: f.X + f.Width/2, Y: f.Y + f.Height/2}
}

// Contains reports whether p lies inside the frame. The right and bottom
// edges are exclusive.
func (f Frame) Contains(p Point) bool {
	return p.X >= f.X && p.X < f.X+f.Width && p.Y >= f.Y && p.Y < f.Y+f.Height
}

func (f Frame) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", f.X, f.Y, f.Width, f.Height)
}

// Screen describes a physical display and its usable area. Visible excludes
// docks, panels and other reserved regions.
type Screen struct {
	ID      int
	Name    string
	Frame   Frame
	Visible Frame
}

// ScreenAt returns the first screen whose full frame contains p. When none
// does, the first screen is returned.
func ScreenAt(screens []Screen, p Point) (Screen, error) {
	if len(screens) == 0 {
		return Screen{}, ErrNoScreen
	}
	for _, s := range screens {
		if s.Frame.Contains(p) {
			return s, nil
		}
	}
	return screens[0], nil
}
