// Package mcp exposes the snaptile daemon as MCP tools over stdio.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/snaptile/internal/ipc"
)

const (
	ServerName    = "snaptile"
	ServerVersion = "0.1.0"
)

// Daemon is the IPC surface the tools call. *ipc.Client implements it.
type Daemon interface {
	Snap(direction string) (*ipc.SnapData, error)
	GetStatus() (*ipc.StatusData, error)
}

// Server is the MCP server for snaptile.
type Server struct {
	mcpServer *mcpsdk.Server
	daemon    Daemon
}

// NewServer creates an MCP server that forwards tool calls to the daemon.
func NewServer(daemon Daemon) *Server {
	s := &Server{daemon: daemon}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "snap_window",
		Description: "Snap the frontmost window to the left or right half of its screen. Repeating the same direction does nothing; the opposite direction restores the window's original frame. Requires a running snaptile daemon.",
	}, s.handleSnapWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "snap_status",
		Description: "Report snaptile daemon status: configured hotkeys and whether they are active, animation and drag-restore settings, and every window with a stored snap state.",
	}, s.handleSnapStatus)
}
