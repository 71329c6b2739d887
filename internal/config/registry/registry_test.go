package registry

import (
	"errors"
	"testing"
)

func TestRegistry_HandlerFor(t *testing.T) {
	r := New()

	h, err := r.HandlerFor("drawThickness")
	if err != nil {
		t.Fatalf("HandlerFor failed: %v", err)
	}
	if h.Key() != "drawThickness" {
		t.Errorf("Key() = %q, want drawThickness", h.Key())
	}

	_, err = r.HandlerFor("noSuchOption")
	if err == nil {
		t.Fatal("expected error for unregistered key")
	}
	if !errors.Is(err, ErrUnrecognizedKey) {
		t.Errorf("error = %v, want ErrUnrecognizedKey", err)
	}
}

func TestRegistry_MustHandler_Panics(t *testing.T) {
	r := New()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered key")
		}
	}()
	r.MustHandler("noSuchOption")
}

func TestRegistry_RecognizedSets(t *testing.T) {
	r := New()

	if !r.IsRecognizedGeneral("savePath") {
		t.Error("savePath should be a recognized general option")
	}
	if r.IsRecognizedGeneral("saveCapture") {
		t.Error("saveCapture is a shortcut name, not a general option")
	}
	if !r.IsRecognizedShortcut("saveCapture") {
		t.Error("saveCapture should be a recognized shortcut name")
	}
	if r.IsRecognizedShortcut("savePath") {
		t.Error("savePath is a general option, not a shortcut name")
	}

	// The two sets are disjoint and every member has a handler.
	for _, key := range r.GeneralOptions() {
		if r.IsRecognizedShortcut(key) {
			t.Errorf("key %q is in both recognized sets", key)
		}
		if _, err := r.HandlerFor(key); err != nil {
			t.Errorf("general option %q has no handler: %v", key, err)
		}
	}
	for _, name := range r.ShortcutNames() {
		if _, err := r.HandlerFor(name); err != nil {
			t.Errorf("shortcut %q has no handler: %v", name, err)
		}
	}
}

func TestRegistry_DefaultsAreValid(t *testing.T) {
	r := New()

	// Every handler's default must encode and survive a decode round trip.
	keys := append(r.GeneralOptions(), r.ShortcutNames()...)
	for _, key := range keys {
		h := r.MustHandler(key)
		raw, err := h.Encode(h.Default())
		if err != nil {
			t.Errorf("%s: default does not encode: %v", key, err)
			continue
		}
		if !h.Validate(raw) {
			t.Errorf("%s: encoded default %q fails Validate", key, raw)
		}
	}
}

func TestBoolHandler(t *testing.T) {
	h := boolHandler{key: "showHelp", def: true}

	tests := []struct {
		raw   string
		want  bool
		valid bool
	}{
		{"true", true, true},
		{"false", false, true},
		{"TRUE", true, true},
		{"1", true, true},
		{"0", false, true},
		{"yes", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := h.Validate(tt.raw); got != tt.valid {
			t.Errorf("Validate(%q) = %v, want %v", tt.raw, got, tt.valid)
		}
		if !tt.valid {
			continue
		}
		v, err := h.Decode(tt.raw)
		if err != nil {
			t.Errorf("Decode(%q) failed: %v", tt.raw, err)
			continue
		}
		if v.(bool) != tt.want {
			t.Errorf("Decode(%q) = %v, want %v", tt.raw, v, tt.want)
		}
	}
}

func TestIntHandler_Range(t *testing.T) {
	h := intHandler{key: "contrastOpacity", def: 190, min: 0, max: 255}

	if !h.Validate("0") || !h.Validate("255") || !h.Validate("128") {
		t.Error("in-range values should validate")
	}
	if h.Validate("-1") || h.Validate("256") || h.Validate("abc") || h.Validate("") {
		t.Error("out-of-range or non-numeric values should not validate")
	}

	if _, err := h.Encode(300); err == nil {
		t.Error("Encode should reject out-of-range values")
	}
	raw, err := h.Encode(42)
	if err != nil || raw != "42" {
		t.Errorf("Encode(42) = (%q, %v), want (42, nil)", raw, err)
	}
}

func TestColorHandler(t *testing.T) {
	h := colorHandler{key: "drawColor", def: "#ff0000"}

	if !h.Validate("#ff0000") || !h.Validate("#ABC") {
		t.Error("hex colors should validate")
	}
	if h.Validate("red") || h.Validate("#zzzzzz") || h.Validate("") {
		t.Error("non-hex values should not validate")
	}

	// Decode canonicalizes to lowercase #rrggbb.
	v, err := h.Decode("#ABCDEF")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.(string) != "#abcdef" {
		t.Errorf("Decode(#ABCDEF) = %q, want #abcdef", v)
	}
}

func TestColorListHandler(t *testing.T) {
	h := colorListHandler{key: "userColors", def: []string{"picker", "#ff0000"}}

	if !h.Validate("picker,#ff0000,#00ff00") {
		t.Error("valid color list should validate")
	}
	if h.Validate("picker,notacolor") {
		t.Error("list with invalid color should not validate")
	}
	if !h.Validate("") {
		t.Error("empty list should validate")
	}
}

func TestButtonListHandler(t *testing.T) {
	h := buttonListHandler{key: "buttons", def: AllButtons()}

	if !h.Validate("pencil,save,copy") {
		t.Error("known buttons should validate")
	}
	if h.Validate("pencil,lasergun") {
		t.Error("unknown button should not validate")
	}
	if h.Validate("pencil,pencil") {
		t.Error("duplicate button should not validate")
	}
}

func TestChordHandler(t *testing.T) {
	h := chordHandler{name: "saveCapture", def: "Ctrl+S"}

	if !h.Validate("Ctrl+S") || !h.Validate("ctrl+shift+p") {
		t.Error("valid chords should validate")
	}
	if !h.Validate("") {
		t.Error("empty chord (unbound) should validate")
	}
	if h.Validate("Hyper+Q") {
		t.Error("unknown modifier should not validate")
	}

	// Encode normalizes.
	raw, err := h.Encode("shift+ctrl+p")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if raw != "Ctrl+Shift+P" {
		t.Errorf("Encode = %q, want Ctrl+Shift+P", raw)
	}
}

func TestEnumHandler(t *testing.T) {
	h := enumHandler{key: "windowMode", def: WindowModeFullscreen,
		allowed: []string{WindowModeFullscreen, WindowModeMaximized, WindowModeWindowed}}

	if !h.Validate("fullscreen") || !h.Validate("Maximized") {
		t.Error("allowed values should validate case-insensitively")
	}
	if h.Validate("kiosk") || h.Validate("") {
		t.Error("values outside the enum should not validate")
	}
}
