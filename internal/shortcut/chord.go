// Package shortcut parses and normalizes keyboard chords like "Ctrl+Shift+S".
//
// Chord specs are written case-insensitively with "+"-separated modifiers
// followed by a key. Normalize produces the canonical spelling used to
// compare bindings, so "ctrl+s", "Control+S" and "Ctrl+s" all collide.
package shortcut

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrInvalidChord = errors.New("invalid key chord")
)

// Chord represents a single key press with optional modifiers.
// The zero Chord is the unbound chord and renders as "".
type Chord struct {
	// Mods contains the modifier keys.
	Mods Modifier

	// Key is the canonical key name ("S", "Enter", "F11") or a single
	// printable rune. Empty for the unbound chord.
	Key string
}

// IsZero returns true for the unbound chord.
func (c Chord) IsZero() bool {
	return c.Key == "" && c.Mods == ModNone
}

// String returns the canonical spelling, e.g. "Ctrl+Shift+S".
func (c Chord) String() string {
	if c.IsZero() {
		return ""
	}
	if c.Mods == ModNone {
		return c.Key
	}
	return c.Mods.String() + "+" + c.Key
}

// keyNameMap maps key-name aliases (lowercase) to canonical names.
var keyNameMap = map[string]string{
	"enter":     "Enter",
	"return":    "Enter",
	"escape":    "Escape",
	"esc":       "Escape",
	"tab":       "Tab",
	"space":     "Space",
	"backspace": "Backspace",
	"delete":    "Delete",
	"del":       "Delete",
	"insert":    "Insert",
	"ins":       "Insert",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pgup":      "PageUp",
	"pagedown":  "PageDown",
	"pgdown":    "PageDown",
	"pgdn":      "PageDown",
	"left":      "Left",
	"right":     "Right",
	"up":        "Up",
	"down":      "Down",
	"print":     "Print",
	"pause":     "Pause",
	"menu":      "Menu",
	"f1":        "F1",
	"f2":        "F2",
	"f3":        "F3",
	"f4":        "F4",
	"f5":        "F5",
	"f6":        "F6",
	"f7":        "F7",
	"f8":        "F8",
	"f9":        "F9",
	"f10":       "F10",
	"f11":       "F11",
	"f12":       "F12",
}

// Parse parses a chord specification into a Chord.
//
// Supported formats:
//   - Single key: "s", "F11", "Enter"
//   - With modifiers: "Ctrl+S", "Ctrl+Shift+P", "Alt+F4"
//   - Literal plus: "Ctrl++"
//
// An empty spec parses to the unbound zero Chord.
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, nil
	}

	keyPart := spec
	var modPart string
	switch {
	case strings.HasSuffix(spec, "++") && len(spec) > 2:
		// "Ctrl++" binds the plus key itself.
		modPart = spec[:len(spec)-2]
		keyPart = "+"
	default:
		if idx := strings.LastIndex(spec, "+"); idx > 0 {
			modPart = spec[:idx]
			keyPart = spec[idx+1:]
		}
	}

	var mods Modifier
	if modPart != "" {
		for _, p := range strings.Split(modPart, "+") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			mod := ModifierFromName(p)
			if mod == ModNone {
				return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidChord, p, spec)
			}
			mods = mods.With(mod)
		}
	}

	key, err := canonicalKey(keyPart)
	if err != nil {
		return Chord{}, err
	}

	return Chord{Mods: mods, Key: key}, nil
}

// Normalize parses spec and returns its canonical spelling.
// Two chord specs are the same binding iff their normalized forms are equal.
func Normalize(spec string) (string, error) {
	c, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// canonicalKey resolves a key part to its canonical name.
func canonicalKey(part string) (string, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return "", fmt.Errorf("%w: missing key", ErrInvalidChord)
	}

	if name, ok := keyNameMap[strings.ToLower(part)]; ok {
		return name, nil
	}

	r, size := utf8.DecodeRuneInString(part)
	if size != len(part) || r == utf8.RuneError {
		return "", fmt.Errorf("%w: unknown key %q", ErrInvalidChord, part)
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return "", fmt.Errorf("%w: unprintable key %q", ErrInvalidChord, part)
	}

	// Letters are stored uppercase so "s" and "S" name the same key.
	return string(unicode.ToUpper(r)), nil
}
