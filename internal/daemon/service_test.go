package daemon

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/snaptile/internal/config"
	"github.com/1broseidon/snaptile/internal/hotkeys"
	"github.com/1broseidon/snaptile/internal/platform"
	"github.com/1broseidon/snaptile/internal/snap"
)

type fakeEngine struct {
	opts  snap.Options
	snaps []snap.State
	recs  []snap.WindowStatus
}

func (f *fakeEngine) Snap(ctx context.Context, dir snap.State) (snap.Result, error) {
	f.snaps = append(f.snaps, dir)
	return snap.Result{
		Window: 7,
		From:   snap.None,
		To:     dir,
		Target: platform.Frame{Width: 960, Height: 1080},
		Action: snap.ActionSnapped,
	}, nil
}

func (f *fakeEngine) Status(ctx context.Context) (snap.Status, error) {
	return snap.Status{Windows: f.recs, Options: f.opts}, nil
}

func (f *fakeEngine) UpdateConfig(ctx context.Context, opts snap.Options) error {
	f.opts = opts
	return nil
}

type fakeHotkeys struct {
	reloads [][2]string
	fail    string
	active  map[hotkeys.ID]hotkeys.Binding
}

func (f *fakeHotkeys) ReloadSequences(left, right string) error {
	f.reloads = append(f.reloads, [2]string{left, right})
	f.active = map[hotkeys.ID]hotkeys.Binding{}
	var err error
	if left != f.fail {
		f.active[hotkeys.SnapLeft] = hotkeys.Binding{Sequence: left}
	} else {
		err = errors.New("BadAccess")
	}
	if right != f.fail {
		f.active[hotkeys.SnapRight] = hotkeys.Binding{Sequence: right}
	} else {
		err = errors.New("BadAccess")
	}
	return err
}

func (f *fakeHotkeys) Active() map[hotkeys.ID]hotkeys.Binding {
	return f.active
}

type fakeLoginItem struct {
	calls []string
}

func (f *fakeLoginItem) Enable() error  { f.calls = append(f.calls, "enable"); return nil }
func (f *fakeLoginItem) Disable() error { f.calls = append(f.calls, "disable"); return nil }

func newTestService(cfg *config.Config) (*Service, *fakeEngine, *fakeHotkeys, *fakeLoginItem) {
	eng := &fakeEngine{}
	hk := &fakeHotkeys{}
	li := &fakeLoginItem{}
	svc := NewService(ServiceConfig{
		Engine:    eng,
		Hotkeys:   hk,
		LoginItem: li,
		Titles:    func(id platform.WindowID) string { return "Terminal" },
	}, cfg)
	return svc, eng, hk, li
}

func TestService_StartRegistersHotkeysAndEngineOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AnimationDuration = 0.2
	svc, eng, hk, li := newTestService(cfg)

	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(hk.reloads) != 1 || hk.reloads[0] != [2]string{cfg.LeftHotkey, cfg.RightHotkey} {
		t.Fatalf("unexpected hotkey reloads %v", hk.reloads)
	}
	if eng.opts.AnimationDuration != 200*time.Millisecond || !eng.opts.DragRestore {
		t.Fatalf("unexpected engine options %+v", eng.opts)
	}
	if len(li.calls) != 0 {
		t.Fatalf("login item should be untouched when open_on_login is false, got %v", li.calls)
	}
}

func TestService_ApplyConfigSyncsLoginItemOnChange(t *testing.T) {
	svc, _, _, li := newTestService(config.DefaultConfig())
	ctx := context.Background()

	on := config.DefaultConfig()
	on.OpenOnLogin = true
	if err := svc.ApplyConfig(ctx, on); err != nil {
		t.Fatalf("apply: %v", err)
	}
	same := config.DefaultConfig()
	same.OpenOnLogin = true
	if err := svc.ApplyConfig(ctx, same); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := svc.ApplyConfig(ctx, config.DefaultConfig()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if strings.Join(li.calls, ",") != "enable,disable" {
		t.Fatalf("expected enable then disable, got %v", li.calls)
	}
}

func TestService_ReloadUsesLoader(t *testing.T) {
	svc, eng, hk, _ := newTestService(config.DefaultConfig())
	next := config.DefaultConfig()
	next.LeftHotkey = "Control-Mod1-h"
	next.AnimationEnabled = false
	svc.load = func() (*config.Config, error) { return next, nil }

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if svc.Config() != next {
		t.Fatalf("expected new config to be active")
	}
	if hk.reloads[len(hk.reloads)-1][0] != "Control-Mod1-h" {
		t.Fatalf("expected hotkeys reloaded with new sequence, got %v", hk.reloads)
	}
	if eng.opts.AnimationEnabled {
		t.Fatalf("expected animation disabled on engine")
	}

	svc.load = func() (*config.Config, error) { return nil, errors.New("bad yaml") }
	if err := svc.Reload(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if svc.Config() != next {
		t.Fatalf("failed reload must keep the previous config")
	}
}

func TestService_HotkeyFailureIsNotFatal(t *testing.T) {
	cfg := config.DefaultConfig()
	svc, _, hk, _ := newTestService(cfg)
	hk.fail = cfg.LeftHotkey

	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start should not fail on hotkey conflict: %v", err)
	}
	st, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.LeftHotkey.Active || !st.RightHotkey.Active {
		t.Fatalf("expected only right hotkey active, got %+v / %+v", st.LeftHotkey, st.RightHotkey)
	}
	if st.LeftHotkey.Display != "Alt+Super+Left" {
		t.Fatalf("unexpected display %q", st.LeftHotkey.Display)
	}
}

func TestService_SnapAndStatus(t *testing.T) {
	svc, eng, hk, _ := newTestService(config.DefaultConfig())
	hk.active = map[hotkeys.ID]hotkeys.Binding{}
	eng.recs = []snap.WindowStatus{{Window: 7, State: snap.Left, Original: platform.Frame{X: 1, Y: 2, Width: 3, Height: 4}}}

	data, err := svc.Snap(context.Background(), "Left")
	if err != nil {
		t.Fatalf("snap: %v", err)
	}
	if data.Window != 7 || data.Title != "Terminal" || data.Action != "snapped" || data.To != "left" {
		t.Fatalf("unexpected snap data %+v", data)
	}
	if _, err := svc.Snap(context.Background(), "diagonal"); err == nil {
		t.Fatalf("expected invalid direction error")
	}
	if len(eng.snaps) != 1 {
		t.Fatalf("invalid direction must not reach the engine")
	}

	st, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if len(st.Windows) != 1 || st.Windows[0].State != "left" || st.Windows[0].Original.Width != 3 {
		t.Fatalf("unexpected windows %+v", st.Windows)
	}
	if st.Windows[0].Title != "Terminal" {
		t.Fatalf("expected title, got %q", st.Windows[0].Title)
	}
}
