package hotkeys

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// keyModMask covers Shift, Lock, Control and Mod1..Mod5; pointer button bits
// in KeyPress state are dropped.
const keyModMask = uint16(0xff)

type route struct {
	mods uint16
	key  xproto.Keycode
}

// X11Backend grabs keys on the root window with xgbutil/keybind and routes
// KeyPress events to onMatch. onMatch runs on the X event loop goroutine.
type X11Backend struct {
	xu      *xgbutil.XUtil
	root    xproto.Window
	onMatch func(ID)

	mu         sync.Mutex
	routes     map[route]ID
	ignoreMask uint16
}

var _ Backend = (*X11Backend)(nil)

var ignoreModsOnce sync.Once

func NewX11Backend(xu *xgbutil.XUtil, root xproto.Window, onMatch func(ID)) *X11Backend {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	var ignore uint16
	for _, m := range xevent.IgnoreMods {
		ignore |= m
	}

	b := &X11Backend{
		xu:         xu,
		root:       root,
		onMatch:    onMatch,
		routes:     make(map[route]ID),
		ignoreMask: ignore,
	}
	xevent.KeyPressFun(b.handleKeyPress).Connect(xu, root)
	return b
}

// Parse resolves a key sequence like "Mod4-Mod1-Left" against the current
// keyboard mapping.
func (b *X11Backend) Parse(sequence string) (Binding, error) {
	mods, keycodes, err := keybind.ParseString(b.xu, sequence)
	if err != nil {
		return Binding{}, err
	}
	return Binding{
		Sequence:  sequence,
		KeyCode:   int(keycodes[0]),
		Modifiers: int(mods),
	}, nil
}

// Register grabs the key on the root window. A grab already held by another
// client fails with BadAccess.
func (b *X11Backend) Register(binding Binding, id ID) (Token, error) {
	r := route{mods: uint16(binding.Modifiers), key: xproto.Keycode(binding.KeyCode)}

	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.routes[r]; ok {
		return Token{}, fmt.Errorf("%s is already bound to %s", binding.Sequence, existing)
	}
	if err := keybind.GrabChecked(b.xu, b.root, r.mods, r.key); err != nil {
		// Release any partial grabs from the ignore-mod variants.
		keybind.Ungrab(b.xu, b.root, r.mods, r.key)
		return Token{}, err
	}
	b.routes[r] = id
	return Token{ID: id, Binding: binding}, nil
}

func (b *X11Backend) Unregister(t Token) {
	r := route{mods: uint16(t.Binding.Modifiers), key: xproto.Keycode(t.Binding.KeyCode)}

	b.mu.Lock()
	defer b.mu.Unlock()

	if id, ok := b.routes[r]; !ok || id != t.ID {
		return
	}
	keybind.Ungrab(b.xu, b.root, r.mods, r.key)
	delete(b.routes, r)
}

func (b *X11Backend) handleKeyPress(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
	id, ok := b.lookup(ev.State, ev.Detail)
	if !ok || b.onMatch == nil {
		return
	}
	b.onMatch(id)
}

func (b *X11Backend) lookup(state uint16, key xproto.Keycode) (ID, bool) {
	mods := state & keyModMask &^ b.ignoreMask

	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.routes[route{mods: mods, key: key}]
	return id, ok
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	xevent.IgnoreMods = lockCombinations(base)
}

// lockCombinations returns every OR-combination of base, including 0.
func lockCombinations(base []uint16) []uint16 {
	seen := make(map[uint16]bool)
	out := []uint16{0}
	seen[0] = true
	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		if !seen[mask] {
			seen[mask] = true
			out = append(out, mask)
		}
	}
	return out
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
