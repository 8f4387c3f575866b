package hotkeys

import "strings"

var modifierOrder = []string{"Ctrl", "Alt", "Shift", "Super", "Hyper", "Mod2", "Mod3", "Lock"}

var modifierNames = map[string]string{
	"control": "Ctrl",
	"ctrl":    "Ctrl",
	"mod1":    "Alt",
	"alt":     "Alt",
	"shift":   "Shift",
	"mod4":    "Super",
	"super":   "Super",
	"mod5":    "Hyper",
	"mod2":    "Mod2",
	"mod3":    "Mod3",
	"lock":    "Lock",
}

// DisplayString renders the binding for people, e.g. "Super+Alt+Left".
func (b Binding) DisplayString() string {
	return DisplaySequence(b.Sequence)
}

// DisplaySequence renders an xgbutil key sequence such as "Mod4-Mod1-Left"
// with modifiers in a fixed order: Ctrl, Alt, Shift, Super.
func DisplaySequence(sequence string) string {
	sequence = strings.TrimSpace(sequence)
	if sequence == "" {
		return ""
	}

	seen := make(map[string]bool)
	var key string
	for _, part := range strings.Split(sequence, "-") {
		if part == "" {
			continue
		}
		if name, ok := modifierNames[strings.ToLower(part)]; ok {
			seen[name] = true
			continue
		}
		if key == "" {
			key = part
		}
	}

	parts := make([]string, 0, len(seen)+1)
	for _, mod := range modifierOrder {
		if seen[mod] {
			parts = append(parts, mod)
		}
	}
	if key != "" {
		if len(key) == 1 {
			key = strings.ToUpper(key)
		}
		parts = append(parts, key)
	}
	return strings.Join(parts, "+")
}
