package snap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/1broseidon/snaptile/internal/platform"
	"github.com/1broseidon/snaptile/internal/pointer"
)

// ErrStopped is returned by Engine calls after Run has returned.
var ErrStopped = errors.New("snap engine stopped")

// Options are the user settings the engine applies.
type Options struct {
	AnimationEnabled  bool
	AnimationDuration time.Duration
	DragRestore       bool
}

// WindowStatus is one stored record.
type WindowStatus struct {
	Window   platform.WindowID `json:"window"`
	State    State             `json:"state"`
	Original platform.Frame    `json:"original"`
}

// Status is a point-in-time view of the engine.
type Status struct {
	Windows    []WindowStatus `json:"windows"`
	Animating  bool           `json:"animating"`
	Suppressed bool           `json:"suppressed"`
	Options    Options        `json:"-"`
}

type request struct {
	fn   func()
	done chan struct{}
}

// Engine owns the store, controller, drag monitor and animator, and runs
// every mutation on the goroutine that called Run.
type Engine struct {
	store      *Store
	animator   *Animator
	controller *Controller
	drag       *DragMonitor
	logger     *slog.Logger
	opts       Options

	triggers chan State
	requests chan request
	stopped  chan struct{}
}

func NewEngine(backend platform.Accessibility, opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	store := NewStore()
	animator := NewAnimator(backend, opts.AnimationEnabled, logger)
	controller := NewController(backend, store, animator, opts.AnimationDuration, logger)
	drag := NewDragMonitor(backend, store, animator, controller, opts.DragRestore, logger)

	return &Engine{
		store:      store,
		animator:   animator,
		controller: controller,
		drag:       drag,
		logger:     logger,
		opts:       opts,
		triggers:   make(chan State, 8),
		requests:   make(chan request),
		stopped:    make(chan struct{}),
	}
}

// Run processes hotkey triggers, pointer events, animation ticks and calls
// until ctx is done. It must be called once.
func (e *Engine) Run(ctx context.Context, events <-chan pointer.Event) error {
	defer close(e.stopped)
	defer e.animator.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil

		case dir := <-e.triggers:
			res := e.controller.Snap(dir)
			e.logger.Debug("hotkey snap", "direction", dir.String(), "action", string(res.Action))

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			switch ev.Kind {
			case pointer.Drag:
				e.drag.HandleDrag(ev.Point)
			case pointer.Up:
				e.drag.HandlePointerUp()
			}

		case now := <-e.animator.C():
			e.animator.Tick(now)

		case req := <-e.requests:
			req.fn()
			close(req.done)
		}
	}
}

// Trigger queues a hotkey snap without blocking. It reports false when the
// queue is full.
func (e *Engine) Trigger(dir State) bool {
	select {
	case e.triggers <- dir:
		return true
	default:
		e.logger.Warn("dropping hotkey snap, engine busy", "direction", dir.String())
		return false
	}
}

// Snap runs a snap on the engine goroutine and returns its result.
func (e *Engine) Snap(ctx context.Context, dir State) (Result, error) {
	var res Result
	err := e.call(ctx, func() {
		res = e.controller.Snap(dir)
	})
	return res, err
}

// Status returns the stored records sorted by window ID.
func (e *Engine) Status(ctx context.Context) (Status, error) {
	var st Status
	err := e.call(ctx, func() {
		st.Windows = make([]WindowStatus, 0, e.store.Len())
		for id, rec := range e.store.Snapshot() {
			st.Windows = append(st.Windows, WindowStatus{Window: id, State: rec.State, Original: rec.Original})
		}
		sort.Slice(st.Windows, func(i, j int) bool {
			return st.Windows[i].Window < st.Windows[j].Window
		})
		st.Animating = e.animator.Active()
		st.Suppressed = e.controller.Suppressed()
		st.Options = e.opts
	})
	return st, err
}

// UpdateConfig applies new options. A running animation keeps its duration.
func (e *Engine) UpdateConfig(ctx context.Context, opts Options) error {
	return e.call(ctx, func() {
		e.opts = opts
		e.animator.SetEnabled(opts.AnimationEnabled)
		e.controller.SetDuration(opts.AnimationDuration)
		e.drag.SetEnabled(opts.DragRestore)
	})
}

func (e *Engine) call(ctx context.Context, fn func()) error {
	req := request{fn: fn, done: make(chan struct{})}
	select {
	case e.requests <- req:
	case <-e.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	// Run closes done right after fn returns.
	<-req.done
	return nil
}
