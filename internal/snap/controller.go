package snap

import (
	"io"
	"log/slog"
	"time"

	"github.com/1broseidon/snaptile/internal/platform"
)

// Action describes what a snap request did.
type Action string

const (
	ActionSnapped    Action = "snapped"
	ActionRestored   Action = "restored"
	ActionUnchanged  Action = "unchanged"
	ActionNoWindow   Action = "no_window"
	ActionSuppressed Action = "suppressed"
)

// Result reports the outcome of Controller.Snap.
type Result struct {
	Window platform.WindowID `json:"window"`
	From   State             `json:"from"`
	To     State             `json:"to"`
	Target platform.Frame    `json:"target"`
	Action Action            `json:"action"`
}

// Controller applies snap requests to the frontmost window.
//
//	None     + dir      -> dir, animate to the half of the window's screen
//	dir      + dir      -> no-op
//	opposite + dir      -> None, animate back to the original frame
type Controller struct {
	backend  platform.Accessibility
	store    *Store
	animator *Animator
	logger   *slog.Logger

	duration   time.Duration
	suppressed bool
}

func NewController(backend platform.Accessibility, store *Store, animator *Animator, duration time.Duration, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		backend:  backend,
		store:    store,
		animator: animator,
		logger:   logger,
		duration: duration,
	}
}

// SetDuration changes the animation duration for later snaps.
func (c *Controller) SetDuration(d time.Duration) {
	c.duration = d
}

// Suppress sets or clears the drag-restore guard. While set, Snap does nothing.
func (c *Controller) Suppress(on bool) {
	c.suppressed = on
}

func (c *Controller) Suppressed() bool {
	return c.suppressed
}

// Snap moves the frontmost window toward dir.
func (c *Controller) Snap(dir State) Result {
	if !dir.IsDirection() {
		return Result{Action: ActionUnchanged}
	}
	if c.suppressed {
		c.logger.Debug("snap suppressed during drag restore", "direction", dir.String())
		return Result{To: dir, Action: ActionSuppressed}
	}

	h, err := c.backend.FrontmostWindow()
	if err != nil {
		c.logger.Debug("no frontmost window", "err", err)
		return Result{To: dir, Action: ActionNoWindow}
	}
	current, err := c.backend.Frame(h)
	if err != nil {
		c.logger.Debug("read frame failed", "window", h.ID(), "err", err)
		return Result{Window: h.ID(), To: dir, Action: ActionNoWindow}
	}

	id := h.ID()
	rec, _ := c.store.Get(id)
	res := Result{Window: id, From: rec.State}

	switch rec.State {
	case dir:
		res.To = dir
		res.Target = current
		res.Action = ActionUnchanged
		return res

	case dir.Opposite():
		c.store.Put(id, None, rec.Original)
		c.animator.Animate(h, current, rec.Original, c.duration, nil)
		res.To = None
		res.Target = rec.Original
		res.Action = ActionRestored

	default:
		screen, err := c.backend.ScreenContaining(current.Center())
		if err != nil {
			c.logger.Debug("no screen for window", "window", id, "err", err)
			res.To = None
			res.Target = current
			res.Action = ActionUnchanged
			return res
		}
		target := HalfFrame(screen.Visible, dir)
		c.store.Put(id, dir, current)
		c.animator.Animate(h, current, target, c.duration, nil)
		res.To = dir
		res.Target = target
		res.Action = ActionSnapped
	}

	c.logger.Debug("snap",
		"window", id,
		"from", res.From.String(),
		"to", res.To.String(),
		"target", res.Target.String())
	return res
}

// HalfFrame returns the left or right half of visible.
func HalfFrame(visible platform.Frame, dir State) platform.Frame {
	half := visible.Width / 2
	f := platform.Frame{X: visible.X, Y: visible.Y, Width: half, Height: visible.Height}
	if dir == Right {
		f.X = visible.X + half
	}
	return f
}
