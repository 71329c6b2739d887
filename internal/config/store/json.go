package store

import (
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSONStore persists settings in a JSON document with one object per group:
//
//	{"General": {"savePath": "/home/me/Pictures"},
//	 "Shortcuts": {"saveCapture": "Ctrl+S"}}
//
// Reads and writes are path-addressed on the raw document, so untouched
// parts of a hand-edited file survive byte for byte.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the JSON file at path.
// The file is created lazily on first write.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// FilePath returns the backing file path.
func (s *JSONStore) FilePath() string {
	return s.path
}

// Read returns the raw value for (group, key).
func (s *JSONStore) Read(group, key string) (string, bool, error) {
	data, err := s.load()
	if err != nil {
		return "", false, err
	}
	if data == nil {
		return "", false, nil
	}

	res := gjson.GetBytes(data, escapePath(group)+"."+escapePath(key))
	if !res.Exists() {
		return "", false, nil
	}
	switch res.Type {
	case gjson.String:
		return res.String(), true, nil
	case gjson.Number, gjson.True, gjson.False:
		raw, ok := stringify(res.Value())
		return raw, ok, nil
	default:
		// Arrays and objects are not raw settings values.
		return "", false, nil
	}
}

// Write stores a raw value under (group, key).
func (s *JSONStore) Write(group, key, raw string) error {
	data, err := s.load()
	if err != nil {
		return err
	}
	if data == nil {
		data = []byte("{}")
	}

	out, err := sjson.SetBytes(data, escapePath(group)+"."+escapePath(key), raw)
	if err != nil {
		return fmt.Errorf("setting %s/%s: %w", group, key, err)
	}
	return writeFileAtomic(s.path, out)
}

// Delete removes (group, key).
func (s *JSONStore) Delete(group, key string) error {
	data, err := s.load()
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	path := escapePath(group) + "." + escapePath(key)
	if !gjson.GetBytes(data, path).Exists() {
		return nil
	}

	out, err := sjson.DeleteBytes(data, path)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", group, key, err)
	}

	// Drop the group object once its last key is gone.
	if g := gjson.GetBytes(out, escapePath(group)); g.Exists() && len(g.Map()) == 0 {
		out, err = sjson.DeleteBytes(out, escapePath(group))
		if err != nil {
			return fmt.Errorf("deleting group %s: %w", group, err)
		}
	}

	return writeFileAtomic(s.path, out)
}

// Groups returns the names of all groups in the file, sorted.
func (s *JSONStore) Groups() ([]string, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var groups []string
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() {
			groups = append(groups, key.String())
		}
		return true
	})
	sort.Strings(groups)
	return groups, nil
}

// Keys returns all keys in the given group, sorted.
func (s *JSONStore) Keys(group string) ([]string, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	g := gjson.GetBytes(data, escapePath(group))
	if !g.Exists() || !g.IsObject() {
		return nil, nil
	}

	var keys []string
	g.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	sort.Strings(keys)
	return keys, nil
}

// Clear removes every stored value.
func (s *JSONStore) Clear() error {
	return writeFileAtomic(s.path, []byte("{}\n"))
}

// load reads the backing file. Returns nil data when the file is missing.
func (s *JSONStore) load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", s.path, err)
	}
	if len(data) > 0 && !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", s.path)
	}
	return data, nil
}

// escapePath escapes gjson path metacharacters in a group or key name.
func escapePath(part string) string {
	out := make([]byte, 0, len(part))
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '.', '*', '?', '\\', '|', '#', '@':
			out = append(out, '\\')
		}
		out = append(out, part[i])
	}
	return string(out)
}
