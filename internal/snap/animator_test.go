package snap

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/1broseidon/snaptile/internal/platform"
)

func TestInterpolate_ConvergesExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		start := platform.Frame{X: rng.Float64() * 3000, Y: rng.Float64() * 2000, Width: rng.Float64() * 1000, Height: rng.Float64() * 1000}
		target := platform.Frame{X: rng.Float64()*3000 - 500, Y: rng.Float64() * 2000, Width: 1 + rng.Float64()*1000, Height: 1 + rng.Float64()*1000}
		if got := Interpolate(start, target, 1.0); got != target {
			t.Fatalf("Interpolate(%v, %v, 1) = %v, want exact target", start, target, got)
		}
	}
}

func TestInterpolate_Bounds(t *testing.T) {
	start := platform.Frame{X: 0, Y: 0, Width: 100, Height: 100}
	target := platform.Frame{X: 100, Y: 50, Width: 200, Height: 100}

	if got := Interpolate(start, target, 0); got != start {
		t.Fatalf("expected start at x=0, got %v", got)
	}
	if got := Interpolate(start, target, -1); got != start {
		t.Fatalf("expected start for x<0, got %v", got)
	}
	if got := Interpolate(start, target, 2); got != target {
		t.Fatalf("expected target for x>1, got %v", got)
	}

	// 1-(1-0.5)^4 = 0.9375
	mid := Interpolate(start, target, 0.5)
	if mid.X != 93.75 || mid.Y != 46.875 || mid.Width != 193.75 || mid.Height != 100 {
		t.Fatalf("unexpected midpoint %v", mid)
	}
}

func TestEaseOutQuart_Monotonic(t *testing.T) {
	prev := EaseOutQuart(0)
	for i := 1; i <= 100; i++ {
		v := EaseOutQuart(float64(i) / 100)
		if v < prev {
			t.Fatalf("ease not monotonic at %d: %g < %g", i, v, prev)
		}
		prev = v
	}
	if EaseOutQuart(0) != 0 || EaseOutQuart(1) != 1 {
		t.Fatalf("ease endpoints wrong")
	}
}

func newTestAnimator(b *fakeBackend, base time.Time) *Animator {
	a := NewAnimator(b, true, nil)
	a.now = func() time.Time { return base }
	return a
}

func TestAnimator_TicksToExactTarget(t *testing.T) {
	b := newFakeBackend()
	base := time.Unix(1000, 0)
	a := newTestAnimator(b, base)
	h := platform.NewHandle(1)

	start := b.frame(1)
	target := platform.Frame{X: 0, Y: 0, Width: 960, Height: 1080}
	done := 0
	a.Animate(h, start, target, 100*time.Millisecond, func() { done++ })
	defer a.Cancel()

	if a.C() == nil || !a.Active() {
		t.Fatalf("expected a live job")
	}

	a.Tick(base.Add(50 * time.Millisecond))
	want := Interpolate(start, target, 0.5)
	if got := b.frame(1); got != want {
		t.Fatalf("mid tick: expected %v, got %v", want, got)
	}
	if done != 0 {
		t.Fatalf("onDone fired early")
	}

	a.Tick(base.Add(250 * time.Millisecond))
	if got := b.frame(1); got != target {
		t.Fatalf("final tick: expected %v, got %v", target, got)
	}
	if done != 1 {
		t.Fatalf("expected onDone once, got %d", done)
	}
	if a.Active() || a.C() != nil {
		t.Fatalf("expected slot cleared after completion")
	}

	// Stray ticks after completion do nothing.
	writes := b.writeCount()
	a.Tick(base.Add(time.Second))
	if b.writeCount() != writes || done != 1 {
		t.Fatalf("expected no activity after completion")
	}
}

func TestAnimator_FailedWritesStillComplete(t *testing.T) {
	b := newFakeBackend()
	b.setErr = errors.New("BadWindow")
	base := time.Unix(1000, 0)
	a := newTestAnimator(b, base)
	h := platform.NewHandle(1)

	done := 0
	a.Animate(h, b.frame(1), platform.Frame{X: 0, Y: 0, Width: 960, Height: 1080}, 100*time.Millisecond, func() { done++ })
	defer a.Cancel()

	a.Tick(base.Add(40 * time.Millisecond))
	if done != 0 || !a.Active() {
		t.Fatalf("expected job still running after a failed write")
	}
	a.Tick(base.Add(100 * time.Millisecond))
	if done != 1 {
		t.Fatalf("expected onDone once after elapsed time, got %d", done)
	}
	if a.Active() || a.C() != nil {
		t.Fatalf("expected slot cleared after completion")
	}
	if b.writeCount() != 2 {
		t.Fatalf("expected both ticks to attempt a write, got %d", b.writeCount())
	}
}

func TestAnimator_NewJobCancelsPrevious(t *testing.T) {
	b := newFakeBackend()
	base := time.Unix(1000, 0)
	a := newTestAnimator(b, base)
	h := platform.NewHandle(1)

	aDone, bDone := 0, 0
	a.Animate(h, b.frame(1), platform.Frame{X: 0, Y: 0, Width: 960, Height: 1080}, 100*time.Millisecond, func() { aDone++ })
	a.Tick(base.Add(30 * time.Millisecond))

	targetB := platform.Frame{X: 960, Y: 0, Width: 960, Height: 1080}
	a.Animate(h, b.frame(1), targetB, 100*time.Millisecond, func() { bDone++ })
	a.Tick(base.Add(500 * time.Millisecond))
	a.Tick(base.Add(600 * time.Millisecond))

	if aDone != 0 {
		t.Fatalf("cancelled job's onDone fired %d times", aDone)
	}
	if bDone != 1 {
		t.Fatalf("expected second onDone once, got %d", bDone)
	}
	if got := b.frame(1); got != targetB {
		t.Fatalf("expected %v, got %v", targetB, got)
	}
}

func TestAnimator_SynchronousPaths(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		duration time.Duration
		screens  bool
	}{
		{"disabled", false, 100 * time.Millisecond, true},
		{"zero duration", true, 0, true},
		{"no screens", true, 100 * time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFakeBackend()
			if !tt.screens {
				b.screens = nil
			}
			a := NewAnimator(b, tt.enabled, nil)
			target := platform.Frame{X: 5, Y: 6, Width: 7, Height: 8}
			done := 0
			a.Animate(platform.NewHandle(1), b.frame(1), target, tt.duration, func() { done++ })

			if done != 1 {
				t.Fatalf("expected onDone to run synchronously, got %d", done)
			}
			if b.frame(1) != target {
				t.Fatalf("expected immediate write of %v, got %v", target, b.frame(1))
			}
			if a.Active() || a.C() != nil {
				t.Fatalf("expected no live job")
			}
		})
	}
}

func TestAnimator_SynchronousWriteCancelsLiveJob(t *testing.T) {
	b := newFakeBackend()
	base := time.Unix(1000, 0)
	a := newTestAnimator(b, base)
	h := platform.NewHandle(1)

	first := 0
	a.Animate(h, b.frame(1), platform.Frame{Width: 960, Height: 1080}, 100*time.Millisecond, func() { first++ })
	a.SetEnabled(false)
	a.Animate(h, b.frame(1), platform.Frame{X: 1, Y: 2, Width: 3, Height: 4}, 100*time.Millisecond, nil)

	a.Tick(base.Add(time.Second))
	if first != 0 {
		t.Fatalf("replaced job's onDone fired")
	}
	if got := b.frame(1); got != (platform.Frame{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Fatalf("last writer should win, got %v", got)
	}
}
