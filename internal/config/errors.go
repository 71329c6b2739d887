package config

import (
	"fmt"

	"github.com/quickgrab/quickgrab/internal/config/registry"
)

// Re-exported registry sentinels so callers match errors without
// importing the registry package.
var (
	// ErrUnrecognizedKey marks a key outside the recognized sets.
	ErrUnrecognizedKey = registry.ErrUnrecognizedKey

	// ErrMalformedValue marks a value its key's handler rejects.
	ErrMalformedValue = registry.ErrMalformedValue
)

func errUnrecognizedShortcut(name string) error {
	return fmt.Errorf("%w: %q is not a shortcut action", ErrUnrecognizedKey, name)
}
