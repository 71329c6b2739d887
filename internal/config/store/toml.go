package store

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// TOMLStore persists settings in a TOML file with one table per group:
//
//	[General]
//	savePath = "/home/me/Pictures"
//
//	[Shortcuts]
//	saveCapture = "Ctrl+S"
type TOMLStore struct {
	path string
}

// NewTOMLStore creates a store backed by the TOML file at path.
// The file is created lazily on first write.
func NewTOMLStore(path string) *TOMLStore {
	return &TOMLStore{path: path}
}

// FilePath returns the backing file path.
func (s *TOMLStore) FilePath() string {
	return s.path
}

// Read returns the raw value for (group, key).
func (s *TOMLStore) Read(group, key string) (string, bool, error) {
	doc, err := s.load()
	if err != nil {
		return "", false, err
	}

	table, ok := doc[group].(map[string]any)
	if !ok {
		return "", false, nil
	}
	v, ok := table[key]
	if !ok {
		return "", false, nil
	}
	raw, ok := stringify(v)
	if !ok {
		// Non-scalar value (array, nested table): not representable
		// as a raw setting, report absent so the caller falls back.
		return "", false, nil
	}
	return raw, true, nil
}

// Write stores a raw value under (group, key).
func (s *TOMLStore) Write(group, key, raw string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	table, ok := doc[group].(map[string]any)
	if !ok {
		table = make(map[string]any)
		doc[group] = table
	}
	table[key] = raw

	return s.save(doc)
}

// Delete removes (group, key).
func (s *TOMLStore) Delete(group, key string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	table, ok := doc[group].(map[string]any)
	if !ok {
		return nil
	}
	if _, ok := table[key]; !ok {
		return nil
	}
	delete(table, key)
	if len(table) == 0 {
		delete(doc, group)
	}

	return s.save(doc)
}

// Groups returns the names of all groups in the file, sorted.
func (s *TOMLStore) Groups() ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	var groups []string
	for name, v := range doc {
		if _, ok := v.(map[string]any); ok {
			groups = append(groups, name)
		}
	}
	sort.Strings(groups)
	return groups, nil
}

// Keys returns all keys in the given group, sorted.
func (s *TOMLStore) Keys(group string) ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	table, ok := doc[group].(map[string]any)
	if !ok {
		return nil, nil
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes every stored value.
func (s *TOMLStore) Clear() error {
	return s.save(map[string]any{})
}

// load parses the backing file. A missing file is an empty store.
func (s *TOMLStore) load() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", s.path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// save writes the document back atomically.
func (s *TOMLStore) save(doc map[string]any) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	return writeFileAtomic(s.path, data)
}
