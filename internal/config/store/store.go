// Package store provides group/key addressed persistence for settings.
//
// A Store holds flat string values addressed by (group, key) and is backed
// by a single file that external programs may edit by hand. Two backends
// exist: TOML (the default config format) and JSON. Both write atomically
// so a watcher never observes a half-written file.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is the persistence collaborator for the settings core.
//
// Values are raw strings; typing and validation live above the store.
// A missing file behaves as an empty store. Read reports absence via the
// bool, not an error; parse failures of a corrupted file are returned as
// errors and the caller decides how to degrade.
type Store interface {
	// Read returns the raw value for (group, key).
	// The bool is false when the key is absent.
	Read(group, key string) (string, bool, error)

	// Write stores a raw value under (group, key), creating the file
	// and group as needed.
	Write(group, key, raw string) error

	// Delete removes (group, key). Deleting an absent key is a no-op.
	Delete(group, key string) error

	// Groups returns the names of all groups present in the file.
	Groups() ([]string, error)

	// Keys returns all keys stored in the given group.
	Keys(group string) ([]string, error)

	// Clear removes every stored value.
	Clear() error

	// FilePath returns the backing file path, watchable by the caller.
	FilePath() string
}

// writeFileAtomic writes data to path via a temp file and rename so readers
// and watchers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// stringify renders a scalar read from a hand-edited file as a raw string.
// Hand editors write bare ints and bools where the core writes strings;
// both must read back identically.
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	case int64:
		return fmt.Sprintf("%d", val), true
	case int:
		return fmt.Sprintf("%d", val), true
	case float64:
		// TOML/JSON numbers without a fraction read back as integers.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val)), true
		}
		return fmt.Sprintf("%g", val), true
	default:
		return "", false
	}
}
