package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/quickgrab/quickgrab/internal/shortcut"
)

// Sentinel errors for key and value problems.
var (
	// ErrUnrecognizedKey marks a key outside the recognized sets.
	ErrUnrecognizedKey = errors.New("unrecognized settings key")

	// ErrMalformedValue marks a raw value the key's handler rejects.
	ErrMalformedValue = errors.New("malformed settings value")
)

// ValueHandler owns one settings key: its factory default and the
// conversions between the raw stored text and the typed value.
//
// Validate and Decode agree: Validate(raw) is true exactly when
// Decode(raw) succeeds. Encode rejects typed values that would not
// round-trip, so a successful write is always readable.
type ValueHandler interface {
	// Key returns the settings key this handler owns.
	Key() string

	// Default returns the typed factory default.
	Default() any

	// Validate reports whether raw is an acceptable stored value.
	Validate(raw string) bool

	// Decode converts a raw stored value to its typed form.
	Decode(raw string) (any, error)

	// Encode converts a typed value to its raw stored form.
	Encode(v any) (string, error)
}

func malformed(key, raw string) error {
	return fmt.Errorf("%w: %s = %q", ErrMalformedValue, key, raw)
}

// boolHandler accepts true/false (any case) and 1/0.
type boolHandler struct {
	key string
	def bool
}

func (h boolHandler) Key() string  { return h.key }
func (h boolHandler) Default() any { return h.def }

func (h boolHandler) Validate(raw string) bool {
	_, err := h.Decode(raw)
	return err == nil
}

func (h boolHandler) Decode(raw string) (any, error) {
	switch strings.ToLower(raw) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return nil, malformed(h.key, raw)
}

func (h boolHandler) Encode(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("%w: %s wants bool, got %T", ErrMalformedValue, h.key, v)
	}
	return strconv.FormatBool(b), nil
}

// intHandler accepts integers within an inclusive range.
type intHandler struct {
	key      string
	def      int
	min, max int
}

func (h intHandler) Key() string  { return h.key }
func (h intHandler) Default() any { return h.def }

func (h intHandler) Validate(raw string) bool {
	_, err := h.Decode(raw)
	return err == nil
}

func (h intHandler) Decode(raw string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < h.min || n > h.max {
		return nil, malformed(h.key, raw)
	}
	return n, nil
}

func (h intHandler) Encode(v any) (string, error) {
	n, ok := v.(int)
	if !ok {
		return "", fmt.Errorf("%w: %s wants int, got %T", ErrMalformedValue, h.key, v)
	}
	if n < h.min || n > h.max {
		return "", fmt.Errorf("%w: %s = %d outside [%d, %d]", ErrMalformedValue, h.key, n, h.min, h.max)
	}
	return strconv.Itoa(n), nil
}

// stringHandler accepts any string.
type stringHandler struct {
	key string
	def string
}

func (h stringHandler) Key() string               { return h.key }
func (h stringHandler) Default() any              { return h.def }
func (h stringHandler) Validate(string) bool      { return true }
func (h stringHandler) Decode(raw string) (any, error) { return raw, nil }

func (h stringHandler) Encode(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants string, got %T", ErrMalformedValue, h.key, v)
	}
	return s, nil
}

// enumHandler accepts one of a closed set of values, case-insensitively,
// and canonicalizes to lowercase.
type enumHandler struct {
	key     string
	def     string
	allowed []string
}

func (h enumHandler) Key() string  { return h.key }
func (h enumHandler) Default() any { return h.def }

func (h enumHandler) Validate(raw string) bool {
	_, err := h.Decode(raw)
	return err == nil
}

func (h enumHandler) Decode(raw string) (any, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range h.allowed {
		if v == a {
			return v, nil
		}
	}
	return nil, malformed(h.key, raw)
}

func (h enumHandler) Encode(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants string, got %T", ErrMalformedValue, h.key, v)
	}
	decoded, err := h.Decode(s)
	if err != nil {
		return "", err
	}
	return decoded.(string), nil
}

// colorHandler accepts hex colors (#rgb or #rrggbb) and canonicalizes
// to lowercase #rrggbb.
type colorHandler struct {
	key string
	def string
}

func (h colorHandler) Key() string  { return h.key }
func (h colorHandler) Default() any { return h.def }

func (h colorHandler) Validate(raw string) bool {
	_, err := h.Decode(raw)
	return err == nil
}

func (h colorHandler) Decode(raw string) (any, error) {
	c, err := parseHexColor(raw)
	if err != nil {
		return nil, malformed(h.key, raw)
	}
	return c.Hex(), nil
}

func (h colorHandler) Encode(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants string, got %T", ErrMalformedValue, h.key, v)
	}
	decoded, err := h.Decode(s)
	if err != nil {
		return "", err
	}
	return decoded.(string), nil
}

// parseHexColor accepts #rrggbb and the #rgb shorthand.
func parseHexColor(raw string) (colorful.Color, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) == 4 && raw[0] == '#' {
		raw = fmt.Sprintf("#%c%c%c%c%c%c", raw[1], raw[1], raw[2], raw[2], raw[3], raw[3])
	}
	return colorful.Hex(strings.ToLower(raw))
}

// colorListHandler accepts a comma-separated list of hex colors, plus
// the literal "picker" entry for the interactive color picker slot.
type colorListHandler struct {
	key string
	def []string
}

func (h colorListHandler) Key() string  { return h.key }
func (h colorListHandler) Default() any { return append([]string(nil), h.def...) }

func (h colorListHandler) Validate(raw string) bool {
	_, err := h.Decode(raw)
	return err == nil
}

func (h colorListHandler) Decode(raw string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "picker" {
			out = append(out, p)
			continue
		}
		c, err := parseHexColor(p)
		if err != nil {
			return nil, malformed(h.key, raw)
		}
		out = append(out, c.Hex())
	}
	return out, nil
}

func (h colorListHandler) Encode(v any) (string, error) {
	list, ok := v.([]string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants []string, got %T", ErrMalformedValue, h.key, v)
	}
	joined := strings.Join(list, ",")
	if _, err := h.Decode(joined); err != nil {
		return "", err
	}
	return joined, nil
}

// buttonListHandler accepts a comma-separated list of known capture
// buttons without duplicates.
type buttonListHandler struct {
	key string
	def []string
}

func (h buttonListHandler) Key() string  { return h.key }
func (h buttonListHandler) Default() any { return append([]string(nil), h.def...) }

func (h buttonListHandler) Validate(raw string) bool {
	_, err := h.Decode(raw)
	return err == nil
}

func (h buttonListHandler) Decode(raw string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if !IsKnownButton(p) || seen[p] {
			return nil, malformed(h.key, raw)
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

func (h buttonListHandler) Encode(v any) (string, error) {
	list, ok := v.([]string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants []string, got %T", ErrMalformedValue, h.key, v)
	}
	joined := strings.Join(list, ",")
	if _, err := h.Decode(joined); err != nil {
		return "", err
	}
	return joined, nil
}

// chordHandler accepts key chords in any alias spelling and
// canonicalizes them. The empty chord means unbound and is valid.
type chordHandler struct {
	name string
	def  string
}

func (h chordHandler) Key() string  { return h.name }
func (h chordHandler) Default() any { return h.def }

func (h chordHandler) Validate(raw string) bool {
	_, err := shortcut.Normalize(raw)
	return err == nil
}

func (h chordHandler) Decode(raw string) (any, error) {
	normalized, err := shortcut.Normalize(raw)
	if err != nil {
		return nil, malformed(h.name, raw)
	}
	return normalized, nil
}

func (h chordHandler) Encode(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants string, got %T", ErrMalformedValue, h.name, v)
	}
	normalized, err := shortcut.Normalize(s)
	if err != nil {
		return "", malformed(h.name, s)
	}
	return normalized, nil
}
