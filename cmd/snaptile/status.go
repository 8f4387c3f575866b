package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/1broseidon/snaptile/internal/ipc"
)

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "Print status as JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: snaptile status [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	status, err := ipc.NewClient().GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *jsonOut {
		return printJSON(status)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stdout, renderStatus(lipgloss.NewRenderer(os.Stdout), status, time.Now()))
		return 0
	}
	writePlainStatus(os.Stdout, status)
	return 0
}

func printJSON(v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

// writePlainStatus prints one key: value per line for scripts and pipes.
func writePlainStatus(w io.Writer, st *ipc.StatusData) {
	fmt.Fprintf(w, "daemon_running:     %v\n", st.DaemonRunning)
	fmt.Fprintf(w, "trusted:            %v\n", st.Trusted)
	fmt.Fprintf(w, "uptime_seconds:     %d\n", st.UptimeSeconds)
	fmt.Fprintf(w, "left_hotkey:        %s (active: %v)\n", st.LeftHotkey.Sequence, st.LeftHotkey.Active)
	fmt.Fprintf(w, "right_hotkey:       %s (active: %v)\n", st.RightHotkey.Sequence, st.RightHotkey.Active)
	fmt.Fprintf(w, "animation_enabled:  %v\n", st.AnimationEnabled)
	fmt.Fprintf(w, "animation_ms:       %d\n", st.AnimationDurationMS)
	fmt.Fprintf(w, "drag_restore:       %v\n", st.DragRestore)
	fmt.Fprintf(w, "snapped_windows:    %d\n", len(st.Windows))
	for _, win := range st.Windows {
		fmt.Fprintf(w, "  0x%x %s %s\n", win.ID, win.State, formatFrame(win.Original))
	}
}

func renderStatus(r *lipgloss.Renderer, st *ipc.StatusData, now time.Time) string {
	labelStyle := r.NewStyle().
		Foreground(lipgloss.Color("250")).
		Width(20).
		Align(lipgloss.Right).
		PaddingRight(2)

	valueStyle := r.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true)

	dimStyle := r.NewStyle().
		Foreground(lipgloss.Color("241"))

	okStyle := r.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle := r.NewStyle().Foreground(lipgloss.Color("226"))

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	mark := func(ok bool, yes, no string) string {
		if ok {
			return okStyle.Render("● " + yes)
		}
		return warnStyle.Render("○ " + no)
	}
	hotkey := func(h ipc.HotkeyInfo) string {
		return valueStyle.Render(h.Display) + " " + dimStyle.Render("("+h.Sequence+")") + "  " +
			mark(h.Active, "active", "not registered")
	}

	started := now.Add(-time.Duration(st.UptimeSeconds) * time.Second)
	uptime := strings.TrimSpace(humanize.RelTime(started, now, "", ""))

	animation := "off"
	if st.AnimationEnabled {
		animation = fmt.Sprintf("%dms ease-out", st.AnimationDurationMS)
	}
	drag := "off"
	if st.DragRestore {
		drag = "on"
	}

	lines := []string{
		labelStyle.Render("Daemon") + mark(st.DaemonRunning, "running", "stopped") + dimStyle.Render("  up "+uptime),
		labelStyle.Render("Window access") + mark(st.Trusted, "granted", "unavailable"),
		"",
		labelStyle.Render("Snap left") + hotkey(st.LeftHotkey),
		labelStyle.Render("Snap right") + hotkey(st.RightHotkey),
		"",
		row("Animation", animation),
		row("Drag restore", drag),
		"",
	}

	if len(st.Windows) == 0 {
		lines = append(lines, labelStyle.Render("Snapped windows")+dimStyle.Render("none"))
	} else {
		lines = append(lines, row("Snapped windows", humanize.Comma(int64(len(st.Windows)))))
		for _, win := range st.Windows {
			title := win.Title
			if title == "" {
				title = fmt.Sprintf("0x%x", win.ID)
			}
			lines = append(lines, labelStyle.Render(win.State)+valueStyle.Render(title)+"  "+
				dimStyle.Render("restores to "+formatFrame(win.Original)))
		}
	}

	return r.NewStyle().Padding(1, 0).Render(strings.Join(lines, "\n"))
}

func formatFrame(f ipc.FrameInfo) string {
	return fmt.Sprintf("%.0fx%.0f+%.0f+%.0f", f.Width, f.Height, f.X, f.Y)
}
