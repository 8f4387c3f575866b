package snap

import "github.com/1broseidon/snaptile/internal/platform"

// EaseOutQuart maps linear progress x in [0,1] to 1-(1-x)^4.
func EaseOutQuart(x float64) float64 {
	inv := 1 - x
	return 1 - inv*inv*inv*inv
}

// Interpolate samples the eased path from start to target at progress x.
// x is clamped to [0,1], and x >= 1 returns target exactly.
func Interpolate(start, target platform.Frame, x float64) platform.Frame {
	if x >= 1 {
		return target
	}
	if x <= 0 {
		return start
	}
	t := EaseOutQuart(x)
	return platform.Frame{
		X:      lerp(start.X, target.X, t),
		Y:      lerp(start.Y, target.Y, t),
		Width:  lerp(start.Width, target.Width, t),
		Height: lerp(start.Height, target.Height, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
