package main

import (
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/snaptile/internal/autostart"
)

func printAutostartUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snaptile autostart enable|disable|status")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Manage the XDG autostart entry that starts 'snaptile daemon' at login.")
	fmt.Fprintln(w, "Set open_on_login in the config to have the daemon manage it.")
}

func runAutostart(args []string) int {
	if len(args) != 1 {
		printAutostartUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printAutostartUsage(os.Stdout)
		return 0
	}

	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to find executable: %v\n", err)
		return 1
	}
	mgr, err := autostart.NewManager(exe)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch args[0] {
	case "enable":
		if err := mgr.Enable(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("autostart enabled: %s\n", mgr.Path())
	case "disable":
		if err := mgr.Disable(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("autostart disabled")
	case "status":
		enabled, err := mgr.Enabled()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("autostart: %v (%s)\n", enabled, mgr.Path())
	default:
		fmt.Fprintf(os.Stderr, "Unknown autostart command: %s\n\n", args[0])
		printAutostartUsage(os.Stderr)
		return 2
	}
	return 0
}
