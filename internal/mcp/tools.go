package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/snaptile/internal/ipc"
	"github.com/1broseidon/snaptile/internal/snap"
)

func (s *Server) handleSnapWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args SnapWindowInput) (*mcpsdk.CallToolResult, SnapWindowOutput, error) {
	dir, err := snap.ParseDirection(args.Direction)
	if err != nil {
		return nil, SnapWindowOutput{}, err
	}
	data, err := s.daemon.Snap(dir.String())
	if err != nil {
		return nil, SnapWindowOutput{}, fmt.Errorf("snap_window: %w", err)
	}

	out := SnapWindowOutput{
		Window: data.Window,
		Title:  data.Title,
		Action: data.Action,
		From:   data.From,
		To:     data.To,
	}
	// Target is only meaningful when geometry was written.
	if data.Action == string(snap.ActionSnapped) || data.Action == string(snap.ActionRestored) {
		f := frameFromIPC(data.Target)
		out.Target = &f
	}
	return nil, out, nil
}

func (s *Server) handleSnapStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ SnapStatusInput) (*mcpsdk.CallToolResult, SnapStatusOutput, error) {
	st, err := s.daemon.GetStatus()
	if err != nil {
		return nil, SnapStatusOutput{}, fmt.Errorf("snap_status: %w", err)
	}

	out := SnapStatusOutput{
		UptimeSeconds:       st.UptimeSeconds,
		Trusted:             st.Trusted,
		LeftHotkey:          hotkeyFromIPC(st.LeftHotkey),
		RightHotkey:         hotkeyFromIPC(st.RightHotkey),
		AnimationEnabled:    st.AnimationEnabled,
		AnimationDurationMS: st.AnimationDurationMS,
		DragRestore:         st.DragRestore,
		Animating:           st.Animating,
		Windows:             make([]WindowStatus, 0, len(st.Windows)),
	}
	for _, w := range st.Windows {
		out.Windows = append(out.Windows, WindowStatus{
			Window:   w.ID,
			Title:    w.Title,
			State:    w.State,
			Original: frameFromIPC(w.Original),
		})
	}
	return nil, out, nil
}

func frameFromIPC(f ipc.FrameInfo) Frame {
	return Frame{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}

func hotkeyFromIPC(h ipc.HotkeyInfo) HotkeyStatus {
	return HotkeyStatus{Sequence: h.Sequence, Display: h.Display, Active: h.Active}
}
