package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/1broseidon/snaptile/internal/autostart"
	"github.com/1broseidon/snaptile/internal/config"
	"github.com/1broseidon/snaptile/internal/daemon"
	"github.com/1broseidon/snaptile/internal/hotkeys"
	"github.com/1broseidon/snaptile/internal/ipc"
	"github.com/1broseidon/snaptile/internal/platform"
	"github.com/1broseidon/snaptile/internal/pointer"
	"github.com/1broseidon/snaptile/internal/snap"
)

func runDaemon(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: snaptile daemon")
		return 0
	}
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "daemon takes no arguments")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: snaptile daemon")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}
	log.Printf("Configuration loaded (left: %s, right: %s, animation: %v)",
		cfg.LeftHotkey, cfg.RightHotkey, cfg.AnimationEnabled)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	backend, err := platform.NewLinuxBackendFromDisplay(cfg.Display)
	if err != nil {
		log.Printf("Failed to connect to display: %v", err)
		return 1
	}
	defer backend.Disconnect()

	if !backend.Trusted() {
		logger.Warn("window system access is not available; snapping will be a no-op")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := snap.NewEngine(backend, daemon.EngineOptions(cfg), logger)
	events := make(chan pointer.Event, 16)
	poller := pointer.NewPoller(backend, pointer.DefaultInterval, logger)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := engine.Run(ctx, events); err != nil {
			logger.Error("snap engine stopped", "err", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := poller.Run(ctx, events); err != nil {
			logger.Error("pointer poller stopped", "err", err)
		}
	}()

	keyBackend := hotkeys.NewX11Backend(backend.XUtil(), backend.RootWindow(), func(id hotkeys.ID) {
		dir := snap.Left
		if id == hotkeys.SnapRight {
			dir = snap.Right
		}
		engine.Trigger(dir)
	})
	gateway := hotkeys.NewGateway(keyBackend, logger)
	defer gateway.Close()

	sc := daemon.ServiceConfig{
		Engine:  engine,
		Hotkeys: gateway,
		Backend: backend,
		Titles:  backend.WindowTitle,
		Load:    config.Load,
		Logger:  logger,
	}
	if exe, err := os.Executable(); err == nil {
		if mgr, err := autostart.NewManager(exe); err == nil {
			sc.LoginItem = mgr
		} else {
			logger.Warn("autostart unavailable", "err", err)
		}
	}
	svc := daemon.NewService(sc, cfg)
	if err := svc.Start(ctx); err != nil {
		log.Printf("Failed to start snap service: %v", err)
		return 1
	}
	for id, b := range gateway.Active() {
		log.Printf("Hotkey registered: %s = %s", id, b.DisplayString())
	}

	ipcServer, err := ipc.NewServer("", svc)
	if err != nil {
		log.Printf("Failed to create IPC server: %v", err)
		return 1
	}
	if err := ipcServer.Start(); err != nil {
		log.Printf("Failed to start IPC server: %v", err)
		return 1
	}
	defer ipcServer.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigCh:
				switch sig {
				case syscall.SIGHUP:
					log.Println("Received SIGHUP, reloading config...")
					if err := svc.Reload(ctx); err != nil {
						log.Printf("Config reload failed: %v", err)
						continue
					}
					log.Println("Config reloaded successfully")
				default:
					log.Println("Shutting down snaptile daemon...")
					backend.Quit()
					return
				}
			}
		}
	}()

	log.Println("snaptile daemon started, entering event loop...")
	backend.EventLoop()

	cancel()
	wg.Wait()
	return 0
}
