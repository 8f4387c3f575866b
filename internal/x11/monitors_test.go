package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
)

func TestUpdateStrutsForMonitor_TopPanelOnlyAffectsOverlappingMonitor(t *testing.T) {
	left := &Monitor{X: 0, Y: 0, Width: 1920, Height: 1080}
	right := &Monitor{X: 1920, Y: 0, Width: 1920, Height: 1080}

	// 32px panel across the left monitor only.
	sp := &ewmh.WmStrutPartial{Top: 32, TopStartX: 0, TopEndX: 1919}

	var accLeft, accRight dockStruts
	updateStrutsForMonitor(left, 3840, 1080, sp, &accLeft)
	updateStrutsForMonitor(right, 3840, 1080, sp, &accRight)

	if accLeft.top != 32 {
		t.Fatalf("expected left monitor top strut 32, got %d", accLeft.top)
	}
	if accRight.top != 0 {
		t.Fatalf("expected right monitor untouched, got top strut %d", accRight.top)
	}
}

func TestUpdateStrutsForMonitor_BottomDockKeepsLargest(t *testing.T) {
	mon := &Monitor{X: 0, Y: 0, Width: 1920, Height: 1080}
	var acc dockStruts

	updateStrutsForMonitor(mon, 1920, 1080, &ewmh.WmStrutPartial{Bottom: 40, BottomStartX: 0, BottomEndX: 1919}, &acc)
	updateStrutsForMonitor(mon, 1920, 1080, &ewmh.WmStrutPartial{Bottom: 24, BottomStartX: 0, BottomEndX: 1919}, &acc)

	if acc.bottom != 40 {
		t.Fatalf("expected bottom strut 40, got %d", acc.bottom)
	}
}

func TestIntersectionSize_Disjoint(t *testing.T) {
	isect := intersectionSize(0, 0, 10, 10, 20, 20, 30, 30)
	if isect.w != 0 || isect.h != 0 {
		t.Fatalf("expected empty intersection, got %+v", isect)
	}
	if intersects(0, 0, 10, 10, 10, 0, 20, 10) {
		t.Fatalf("touching edges must not intersect")
	}
}
