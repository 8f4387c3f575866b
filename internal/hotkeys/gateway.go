package hotkeys

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// ID identifies what a registered hotkey does.
type ID int

const (
	SnapLeft  ID = 1
	SnapRight ID = 2
)

func (id ID) String() string {
	switch id {
	case SnapLeft:
		return "snap_left"
	case SnapRight:
		return "snap_right"
	default:
		return fmt.Sprintf("hotkey(%d)", int(id))
	}
}

// Binding is a key plus modifier mask, along with the sequence it was parsed
// from (for example "Mod4-Mod1-Left").
type Binding struct {
	Sequence  string
	KeyCode   int
	Modifiers int
}

// Token is returned by a successful registration and releases it.
type Token struct {
	ID      ID
	Binding Binding
}

// Backend grabs keys with the window system and reports matches by ID.
type Backend interface {
	Parse(sequence string) (Binding, error)
	Register(b Binding, id ID) (Token, error)
	Unregister(t Token)
}

// Gateway keeps the two snap hotkeys registered with a Backend.
type Gateway struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.Mutex
	tokens []Token
}

func NewGateway(backend Backend, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gateway{backend: backend, logger: logger}
}

// ReloadSequences parses both key sequences and reloads them. A sequence
// that fails to parse leaves its direction unbound.
func (g *Gateway) ReloadSequences(left, right string) error {
	var errs []error
	lb, err := g.backend.Parse(left)
	if err != nil {
		errs = append(errs, fmt.Errorf("parse %s hotkey %q: %w", SnapLeft, left, err))
		lb = Binding{}
	}
	rb, err := g.backend.Parse(right)
	if err != nil {
		errs = append(errs, fmt.Errorf("parse %s hotkey %q: %w", SnapRight, right, err))
		rb = Binding{}
	}
	if err := g.Reload(lb, rb); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Reload drops every held registration, then registers left and right.
// Failures are logged and returned but never retried. A zero Binding is
// skipped.
func (g *Gateway) Reload(left, right Binding) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.unregisterAllLocked()

	var errs []error
	for _, want := range []struct {
		id ID
		b  Binding
	}{
		{SnapLeft, left},
		{SnapRight, right},
	} {
		if want.b == (Binding{}) {
			continue
		}
		tok, err := g.backend.Register(want.b, want.id)
		if err != nil {
			g.logger.Warn("hotkey registration failed",
				"hotkey", want.id.String(),
				"sequence", want.b.Sequence,
				"err", err)
			errs = append(errs, fmt.Errorf("register %s (%s): %w", want.id, want.b.Sequence, err))
			continue
		}
		g.logger.Debug("hotkey registered", "hotkey", want.id.String(), "sequence", want.b.Sequence)
		g.tokens = append(g.tokens, tok)
	}
	return errors.Join(errs...)
}

// Active returns the bindings currently registered, by ID.
func (g *Gateway) Active() map[ID]Binding {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[ID]Binding, len(g.tokens))
	for _, t := range g.tokens {
		out[t.ID] = t.Binding
	}
	return out
}

// Close releases every registration.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unregisterAllLocked()
}

func (g *Gateway) unregisterAllLocked() {
	for _, t := range g.tokens {
		g.backend.Unregister(t)
	}
	g.tokens = nil
}
