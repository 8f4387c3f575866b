package daemon

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/1broseidon/snaptile/internal/config"
	"github.com/1broseidon/snaptile/internal/hotkeys"
	"github.com/1broseidon/snaptile/internal/ipc"
	"github.com/1broseidon/snaptile/internal/platform"
	"github.com/1broseidon/snaptile/internal/snap"
)

// Engine is the subset of snap.Engine the service drives.
type Engine interface {
	Snap(ctx context.Context, dir snap.State) (snap.Result, error)
	Status(ctx context.Context) (snap.Status, error)
	UpdateConfig(ctx context.Context, opts snap.Options) error
}

// Hotkeys is the subset of hotkeys.Gateway the service drives.
type Hotkeys interface {
	ReloadSequences(left, right string) error
	Active() map[hotkeys.ID]hotkeys.Binding
}

// LoginItem toggles starting snaptile at login.
type LoginItem interface {
	Enable() error
	Disable() error
}

// ServiceConfig wires the daemon's collaborators.
type ServiceConfig struct {
	Engine  Engine
	Hotkeys Hotkeys
	Backend platform.Accessibility
	// Titles resolves window titles for status output. Optional.
	Titles func(platform.WindowID) string
	// Load re-reads configuration on Reload.
	Load func() (*config.Config, error)
	// LoginItem is synced with open_on_login. Optional.
	LoginItem LoginItem
	Logger    *slog.Logger
}

// Service implements ipc.Service on top of the snap engine.
type Service struct {
	engine    Engine
	hotkeys   Hotkeys
	backend   platform.Accessibility
	titles    func(platform.WindowID) string
	load      func() (*config.Config, error)
	loginItem LoginItem
	logger    *slog.Logger
	startTime time.Time

	cfgMu sync.RWMutex
	cfg   *config.Config
}

var _ ipc.Service = (*Service)(nil)

func NewService(sc ServiceConfig, cfg *config.Config) *Service {
	logger := sc.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	titles := sc.Titles
	if titles == nil {
		titles = func(platform.WindowID) string { return "" }
	}
	return &Service{
		engine:    sc.Engine,
		hotkeys:   sc.Hotkeys,
		backend:   sc.Backend,
		titles:    titles,
		load:      sc.Load,
		loginItem: sc.LoginItem,
		logger:    logger,
		startTime: time.Now(),
		cfg:       cfg,
	}
}

// EngineOptions extracts the engine settings from a config.
func EngineOptions(cfg *config.Config) snap.Options {
	return snap.Options{
		AnimationEnabled:  cfg.AnimationEnabled,
		AnimationDuration: cfg.AnimationDurationValue(),
		DragRestore:       cfg.DragRestore,
	}
}

// Config returns the active configuration.
func (s *Service) Config() *config.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// Start registers hotkeys for the initial config and syncs the login item.
// Hotkey failures are logged and do not stop the daemon.
func (s *Service) Start(ctx context.Context) error {
	cfg := s.Config()
	if err := s.hotkeys.ReloadSequences(cfg.LeftHotkey, cfg.RightHotkey); err != nil {
		s.logger.Warn("some hotkeys are not active", "err", err)
	}
	if cfg.OpenOnLogin {
		s.syncLoginItem(true)
	}
	return s.engine.UpdateConfig(ctx, EngineOptions(cfg))
}

// Reload re-reads the config file and applies it.
func (s *Service) Reload(ctx context.Context) error {
	if s.load == nil {
		return fmt.Errorf("reload is not configured")
	}
	cfg, err := s.load()
	if err != nil {
		return err
	}
	return s.ApplyConfig(ctx, cfg)
}

// ApplyConfig swaps in cfg: hotkeys are re-registered, the engine gets the
// new animation and drag settings, and the login item follows open_on_login
// when it changed.
func (s *Service) ApplyConfig(ctx context.Context, cfg *config.Config) error {
	s.cfgMu.Lock()
	prev := s.cfg
	s.cfg = cfg
	s.cfgMu.Unlock()

	if err := s.hotkeys.ReloadSequences(cfg.LeftHotkey, cfg.RightHotkey); err != nil {
		s.logger.Warn("some hotkeys are not active", "err", err)
	}
	if prev == nil || prev.OpenOnLogin != cfg.OpenOnLogin {
		s.syncLoginItem(cfg.OpenOnLogin)
	}
	if err := s.engine.UpdateConfig(ctx, EngineOptions(cfg)); err != nil {
		return fmt.Errorf("apply engine settings: %w", err)
	}

	s.logger.Info("config applied",
		"left_hotkey", cfg.LeftHotkey,
		"right_hotkey", cfg.RightHotkey,
		"animation_enabled", cfg.AnimationEnabled,
		"animation_duration", cfg.AnimationDurationValue(),
		"drag_restore", cfg.DragRestore)
	return nil
}

func (s *Service) syncLoginItem(enabled bool) {
	if s.loginItem == nil {
		return
	}
	var err error
	if enabled {
		err = s.loginItem.Enable()
	} else {
		err = s.loginItem.Disable()
	}
	if err != nil {
		s.logger.Warn("failed to update login item", "enabled", enabled, "err", err)
	}
}

// Snap snaps the frontmost window in direction ("left" or "right").
func (s *Service) Snap(ctx context.Context, direction string) (*ipc.SnapData, error) {
	dir, err := snap.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.Snap(ctx, dir)
	if err != nil {
		return nil, err
	}

	data := &ipc.SnapData{
		Window: uint32(res.Window),
		Action: string(res.Action),
		From:   res.From.String(),
		To:     res.To.String(),
		Target: frameInfo(res.Target),
	}
	if res.Window != 0 {
		data.Title = s.titles(res.Window)
	}
	return data, nil
}

// Status reports hotkeys, settings and stored window states.
func (s *Service) Status(ctx context.Context) (*ipc.StatusData, error) {
	st, err := s.engine.Status(ctx)
	if err != nil {
		return nil, err
	}
	cfg := s.Config()
	active := s.hotkeys.Active()

	status := &ipc.StatusData{
		UptimeSeconds:       int64(time.Since(s.startTime).Seconds()),
		DaemonRunning:       true,
		Trusted:             s.backend != nil && s.backend.Trusted(),
		LeftHotkey:          hotkeyInfo(cfg.LeftHotkey, active, hotkeys.SnapLeft),
		RightHotkey:         hotkeyInfo(cfg.RightHotkey, active, hotkeys.SnapRight),
		AnimationEnabled:    st.Options.AnimationEnabled,
		AnimationDurationMS: st.Options.AnimationDuration.Milliseconds(),
		DragRestore:         st.Options.DragRestore,
		Animating:           st.Animating,
		Suppressed:          st.Suppressed,
		Windows:             make([]ipc.WindowInfo, 0, len(st.Windows)),
	}
	for _, w := range st.Windows {
		status.Windows = append(status.Windows, ipc.WindowInfo{
			ID:       uint32(w.Window),
			Title:    s.titles(w.Window),
			State:    w.State.String(),
			Original: frameInfo(w.Original),
		})
	}
	return status, nil
}

func hotkeyInfo(sequence string, active map[hotkeys.ID]hotkeys.Binding, id hotkeys.ID) ipc.HotkeyInfo {
	b, ok := active[id]
	return ipc.HotkeyInfo{
		Sequence: sequence,
		Display:  hotkeys.DisplaySequence(sequence),
		Active:   ok && b.Sequence == sequence,
	}
}

func frameInfo(f platform.Frame) ipc.FrameInfo {
	return ipc.FrameInfo{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}
