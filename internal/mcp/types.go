package mcp

// SnapWindowInput is the input for the snap_window tool.
type SnapWindowInput struct {
	Direction string `json:"direction" jsonschema:"required,Half of the screen to snap the frontmost window to: left or right. Snapping toward the opposite half of an already snapped window restores its original frame."`
}

// SnapWindowOutput is the output for the snap_window tool.
type SnapWindowOutput struct {
	Window uint32 `json:"window"`
	Title  string `json:"title,omitempty"`
	Action string `json:"action"`
	From   string `json:"from"`
	To     string `json:"to"`
	Target *Frame `json:"target,omitempty"`
}

// Frame is a window rectangle in screen pixels.
type Frame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SnapStatusInput is the input for the snap_status tool.
type SnapStatusInput struct{}

// HotkeyStatus describes one configured hotkey.
type HotkeyStatus struct {
	Sequence string `json:"sequence"`
	Display  string `json:"display"`
	Active   bool   `json:"active"`
}

// WindowStatus describes one window with a stored snap state.
type WindowStatus struct {
	Window   uint32 `json:"window"`
	Title    string `json:"title,omitempty"`
	State    string `json:"state"`
	Original Frame  `json:"original"`
}

// SnapStatusOutput is the output for the snap_status tool.
type SnapStatusOutput struct {
	UptimeSeconds       int64          `json:"uptime_seconds"`
	Trusted             bool           `json:"trusted"`
	LeftHotkey          HotkeyStatus   `json:"left_hotkey"`
	RightHotkey         HotkeyStatus   `json:"right_hotkey"`
	AnimationEnabled    bool           `json:"animation_enabled"`
	AnimationDurationMS int64          `json:"animation_duration_ms"`
	DragRestore         bool           `json:"drag_restore"`
	Animating           bool           `json:"animating"`
	Windows             []WindowStatus `json:"windows"`
}
