// Package pointer turns sampled pointer state into drag and release events.
package pointer

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/1broseidon/snaptile/internal/platform"
)

// DefaultInterval samples at 60 Hz.
const DefaultInterval = time.Second / 60

type Kind int

const (
	Drag Kind = iota + 1
	Up
)

func (k Kind) String() string {
	switch k {
	case Drag:
		return "drag"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a drag step (primary button held, pointer moved) or a release.
type Event struct {
	Kind  Kind
	Point platform.Point
}

// Sampler reports the pointer position and whether the primary button is held.
type Sampler interface {
	PointerPosition() (platform.Point, bool, error)
}

// Poller samples a Sampler on a fixed interval and emits Events.
type Poller struct {
	sampler  Sampler
	interval time.Duration
	logger   *slog.Logger
}

func NewPoller(sampler Sampler, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Poller{sampler: sampler, interval: interval, logger: logger}
}

// Run samples until ctx is done, sending events to out. Sampling errors are
// logged once per failure streak and otherwise ignored.
func (p *Poller) Run(ctx context.Context, out chan<- Event) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var (
		t       tracker
		failing bool
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		pos, pressed, err := p.sampler.PointerPosition()
		if err != nil {
			if !failing {
				p.logger.Debug("pointer sample failed", "err", err)
				failing = true
			}
			continue
		}
		failing = false

		ev, ok := t.observe(pos, pressed)
		if !ok {
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// tracker detects press/drag/release edges between samples.
type tracker struct {
	pressed bool
	last    platform.Point
}

func (t *tracker) observe(pos platform.Point, pressed bool) (Event, bool) {
	switch {
	case pressed && !t.pressed:
		t.pressed = true
		t.last = pos
		return Event{}, false
	case pressed && t.pressed:
		if pos == t.last {
			return Event{}, false
		}
		t.last = pos
		return Event{Kind: Drag, Point: pos}, true
	case !pressed && t.pressed:
		t.pressed = false
		t.last = pos
		return Event{Kind: Up, Point: pos}, true
	default:
		return Event{}, false
	}
}
