package snap

import (
	"io"
	"log/slog"

	"github.com/1broseidon/snaptile/internal/platform"
)

// DragMonitor restores a snapped window as soon as the user starts dragging
// it, keeping the pointer at the same relative X inside the window.
type DragMonitor struct {
	backend    platform.Accessibility
	store      *Store
	animator   *Animator
	controller *Controller
	logger     *slog.Logger

	enabled  bool
	restored bool // a restore already happened in this gesture
}

func NewDragMonitor(backend platform.Accessibility, store *Store, animator *Animator, controller *Controller, enabled bool, logger *slog.Logger) *DragMonitor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DragMonitor{
		backend:    backend,
		store:      store,
		animator:   animator,
		controller: controller,
		logger:     logger,
		enabled:    enabled,
	}
}

func (d *DragMonitor) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// HandleDrag processes one drag sample at pointer p. It reports whether the
// frontmost window was restored.
func (d *DragMonitor) HandleDrag(p platform.Point) bool {
	if !d.enabled || d.restored {
		return false
	}

	h, err := d.backend.FrontmostWindow()
	if err != nil {
		return false
	}
	id := h.ID()
	rec, ok := d.store.Get(id)
	if !ok || rec.State == None {
		return false
	}

	d.controller.Suppress(true)

	current, err := d.backend.Frame(h)
	if err != nil {
		d.logger.Debug("drag restore: read frame failed", "window", id, "err", err)
		return false
	}

	restored := platform.Frame{
		X:      RestoredX(p, current, rec.Original),
		Y:      current.Y,
		Width:  rec.Original.Width,
		Height: rec.Original.Height,
	}
	if screen, err := d.backend.ScreenContaining(p); err == nil {
		restored.X = ClampX(restored.X, rec.Original.Width, screen.Visible)
	}

	d.animator.Cancel()
	if err := d.backend.SetFrame(h, restored); err != nil {
		d.logger.Debug("drag restore: set frame failed", "window", id, "err", err)
	}
	d.store.Put(id, None, rec.Original)
	d.restored = true

	d.logger.Debug("drag restore",
		"window", id,
		"from", rec.State.String(),
		"frame", restored.String())
	return true
}

// HandlePointerUp ends the gesture and clears the snap guard.
func (d *DragMonitor) HandlePointerUp() {
	d.restored = false
	d.controller.Suppress(false)
}

// RestoredX returns the X that keeps pointer p at the same fraction of the
// window width after resizing from current to original's width.
func RestoredX(p platform.Point, current, original platform.Frame) float64 {
	ratio := 0.0
	if current.Width != 0 {
		ratio = (p.X - current.X) / current.Width
	}
	return p.X - original.Width*ratio
}

// ClampX keeps a window of the given width inside visible horizontally. The
// left edge wins when the window is wider than visible.
func ClampX(x, width float64, visible platform.Frame) float64 {
	return max(visible.MinX(), min(x, visible.MaxX()-width))
}
