package shortcut

import (
	"errors"
	"testing"
)

func TestParse_Canonical(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{"simple letter", "s", "S"},
		{"uppercase letter", "S", "S"},
		{"ctrl combo", "Ctrl+S", "Ctrl+S"},
		{"lowercase everything", "ctrl+s", "Ctrl+S"},
		{"control alias", "Control+S", "Ctrl+S"},
		{"modifier order fixed", "Shift+Ctrl+P", "Ctrl+Shift+P"},
		{"alt function key", "Alt+F4", "Alt+F4"},
		{"option alias", "Option+Left", "Alt+Left"},
		{"cmd alias", "Cmd+C", "Meta+C"},
		{"special key alias", "Ctrl+Return", "Ctrl+Enter"},
		{"escape alias", "esc", "Escape"},
		{"page up alias", "Ctrl+PgUp", "Ctrl+PageUp"},
		{"literal plus", "Ctrl++", "Ctrl++"},
		{"bare plus", "+", "+"},
		{"punctuation", "Ctrl+.", "Ctrl+."},
		{"whitespace trimmed", "  Ctrl+S  ", "Ctrl+S"},
		{"empty is unbound", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.spec, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"unknown modifier", "Hyper+S"},
		{"missing key", "Ctrl+"},
		{"unknown key name", "Ctrl+Banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.spec)
			}
			if !errors.Is(err, ErrInvalidChord) {
				t.Errorf("error = %v, want ErrInvalidChord", err)
			}
		})
	}
}

func TestNormalize_CollisionEquality(t *testing.T) {
	// Specs that must normalize to the same binding.
	groups := [][]string{
		{"Ctrl+S", "ctrl+s", "Control+s", "CTRL+S"},
		{"Ctrl+Shift+P", "shift+ctrl+p", "Control+Shift+P"},
		{"Meta+Enter", "cmd+return", "super+enter"},
	}

	for _, group := range groups {
		first, err := Normalize(group[0])
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", group[0], err)
		}
		for _, spec := range group[1:] {
			got, err := Normalize(spec)
			if err != nil {
				t.Fatalf("Normalize(%q) failed: %v", spec, err)
			}
			if got != first {
				t.Errorf("Normalize(%q) = %q, want %q", spec, got, first)
			}
		}
	}
}

func TestChord_IsZero(t *testing.T) {
	if !(Chord{}).IsZero() {
		t.Error("zero chord should be zero")
	}

	c, err := Parse("Ctrl+S")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.IsZero() {
		t.Error("bound chord should not be zero")
	}
}

func TestModifier_String(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModMeta | ModAlt | ModShift | ModCtrl, "Ctrl+Shift+Alt+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier(%b).String() = %q, want %q", tt.mods, got, tt.want)
		}
	}
}
