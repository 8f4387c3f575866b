package snap

import (
	"io"
	"log/slog"
	"time"

	"github.com/1broseidon/snaptile/internal/platform"
)

// FrameInterval is the animator tick period (60 Hz).
const FrameInterval = time.Second / 60

type job struct {
	handle    platform.Handle
	start     platform.Frame
	target    platform.Frame
	startTime time.Time
	duration  time.Duration
	onDone    func()
}

// Animator moves one window at a time along an eased path. At most one job is
// live; starting another cancels the previous one without running its
// completion callback. Animator is driven by its owner: the owner selects on
// C() and calls Tick with the received time.
type Animator struct {
	backend platform.Accessibility
	logger  *slog.Logger
	enabled bool
	now     func() time.Time

	job    *job
	ticker *time.Ticker
}

func NewAnimator(backend platform.Accessibility, enabled bool, logger *slog.Logger) *Animator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Animator{
		backend: backend,
		logger:  logger,
		enabled: enabled,
		now:     time.Now,
	}
}

// SetEnabled toggles animation for future jobs.
func (a *Animator) SetEnabled(enabled bool) {
	a.enabled = enabled
}

// Animate moves handle from start to target over duration and then calls
// onDone. When animation is off, duration <= 0, or no screen is available,
// the target is written immediately and onDone runs before Animate returns.
func (a *Animator) Animate(h platform.Handle, start, target platform.Frame, duration time.Duration, onDone func()) {
	a.Cancel()

	if !a.enabled || duration <= 0 || !a.hasScreen() {
		a.write(h, target)
		if onDone != nil {
			onDone()
		}
		return
	}

	a.job = &job{
		handle:    h,
		start:     start,
		target:    target,
		startTime: a.now(),
		duration:  duration,
		onDone:    onDone,
	}
	a.ticker = time.NewTicker(FrameInterval)
}

// C delivers ticks while a job is live. It is nil when idle.
func (a *Animator) C() <-chan time.Time {
	if a.ticker == nil {
		return nil
	}
	return a.ticker.C
}

// Active reports whether a job is in flight.
func (a *Animator) Active() bool {
	return a.job != nil
}

// Tick advances the live job to now. The final tick writes the exact target,
// clears the slot and then runs onDone.
func (a *Animator) Tick(now time.Time) {
	j := a.job
	if j == nil {
		return
	}

	x := float64(now.Sub(j.startTime)) / float64(j.duration)
	x = min(max(x, 0), 1)

	if x >= 1 {
		a.write(j.handle, j.target)
		a.stop()
		if j.onDone != nil {
			j.onDone()
		}
		return
	}
	a.write(j.handle, Interpolate(j.start, j.target, x))
}

// Cancel drops the live job, if any, without calling its onDone.
func (a *Animator) Cancel() {
	if a.job != nil {
		a.logger.Debug("animation cancelled", "window", a.job.handle.ID())
	}
	a.stop()
}

func (a *Animator) stop() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	a.job = nil
}

func (a *Animator) hasScreen() bool {
	screens, err := a.backend.Screens()
	return err == nil && len(screens) > 0
}

func (a *Animator) write(h platform.Handle, f platform.Frame) {
	if err := a.backend.SetFrame(h, f); err != nil {
		a.logger.Debug("set frame failed", "window", h.ID(), "frame", f.String(), "err", err)
	}
}
