package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandReload    CommandType = "RELOAD"
	CommandGetStatus CommandType = "GET_STATUS"
	CommandSnap      CommandType = "SNAP"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// FrameInfo is a window rectangle in screen coordinates.
type FrameInfo struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WindowInfo describes one window the daemon holds snap state for.
type WindowInfo struct {
	ID       uint32    `json:"id"`
	Title    string    `json:"title,omitempty"`
	State    string    `json:"state"`
	Original FrameInfo `json:"original"`
}

// HotkeyInfo describes a configured hotkey and whether it is registered.
type HotkeyInfo struct {
	Sequence string `json:"sequence"`
	Display  string `json:"display"`
	Active   bool   `json:"active"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	UptimeSeconds       int64        `json:"uptime_seconds"`
	DaemonRunning       bool         `json:"daemon_running"`
	Trusted             bool         `json:"trusted"`
	LeftHotkey          HotkeyInfo   `json:"left_hotkey"`
	RightHotkey         HotkeyInfo   `json:"right_hotkey"`
	AnimationEnabled    bool         `json:"animation_enabled"`
	AnimationDurationMS int64        `json:"animation_duration_ms"`
	DragRestore         bool         `json:"drag_restore"`
	Animating           bool         `json:"animating"`
	Suppressed          bool         `json:"suppressed"`
	Windows             []WindowInfo `json:"windows"`
}

// SnapPayload represents the payload for the SNAP command
type SnapPayload struct {
	Direction string `json:"direction"` // "left" or "right"
}

// SnapData represents the data returned by SNAP
type SnapData struct {
	Window uint32    `json:"window,omitempty"`
	Title  string    `json:"title,omitempty"`
	Action string    `json:"action"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Target FrameInfo `json:"target"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
