package hotkeys

import "testing"

func TestDisplaySequence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mod4-Mod1-Left", "Alt+Super+Left"},
		{"Mod1-Mod4-Right", "Alt+Super+Right"},
		{"Shift-Control-h", "Ctrl+Shift+H"},
		{"Mod4-Shift-Mod1-Control-Up", "Ctrl+Alt+Shift+Super+Up"},
		{"F12", "F12"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := DisplaySequence(tt.in); got != tt.want {
				t.Fatalf("DisplaySequence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBindingDisplayString(t *testing.T) {
	b := Binding{Sequence: "Mod4-Mod1-Left"}
	if got := b.DisplayString(); got != "Alt+Super+Left" {
		t.Fatalf("expected Alt+Super+Left, got %q", got)
	}
}
