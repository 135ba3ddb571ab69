package keymapstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/vimcore/internal/key"
)

// Entry is one persisted mapping.
type Entry struct {
	Rhs     string
	NoRemap bool
}

// Store persists key mappings as a JSON document shaped
// {"<mode>": {"<lhs>": {"rhs": "...", "noremap": bool}}}, read and patched
// in place with gjson/sjson rather than a full decode/encode cycle.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a Store backed by the JSON document at path. The file
// need not exist yet; it is created on the first Set.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath mirrors the teacher's per-user config directory convention
// for persisted input state.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("keymapstore: %w", err)
	}
	return filepath.Join(dir, "vimcore", "keymaps.json"), nil
}

// escape backslash-escapes the characters gjson/sjson treat specially
// within a path segment, so a lhs like "g." addresses correctly instead of
// being read as a nested path.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func path(mode key.RemapMode, lhs string) string {
	return escape(mode.String()) + "." + escape(lhs)
}

func (s *Store) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("keymapstore: reading %s: %w", s.path, err)
	}
	return data, nil
}

func (s *Store) write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("keymapstore: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("keymapstore: writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("keymapstore: renaming %s: %w", tmp, err)
	}
	return nil
}

// Get looks up one mapping, reporting false if it is not persisted.
func (s *Store) Get(mode key.RemapMode, lhs string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return Entry{}, false, err
	}
	result := gjson.GetBytes(data, path(mode, lhs))
	if !result.Exists() {
		return Entry{}, false, nil
	}
	return Entry{
		Rhs:     result.Get("rhs").String(),
		NoRemap: result.Get("noremap").Bool(),
	}, true, nil
}

// Set persists one mapping, creating the document if it does not exist.
func (s *Store) Set(mode key.RemapMode, lhs, rhs string, noremap bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	base := path(mode, lhs)
	data, err = sjson.SetBytes(data, base+".rhs", rhs)
	if err != nil {
		return fmt.Errorf("keymapstore: %w", err)
	}
	data, err = sjson.SetBytes(data, base+".noremap", noremap)
	if err != nil {
		return fmt.Errorf("keymapstore: %w", err)
	}
	return s.write(data)
}

// Delete removes one persisted mapping. It is a no-op if absent.
func (s *Store) Delete(mode key.RemapMode, lhs string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	data, err = sjson.DeleteBytes(data, path(mode, lhs))
	if err != nil {
		return fmt.Errorf("keymapstore: %w", err)
	}
	return s.write(data)
}

// Clear removes every persisted mapping for mode.
func (s *Store) Clear(mode key.RemapMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	data, err = sjson.DeleteBytes(data, escape(mode.String()))
	if err != nil {
		return fmt.Errorf("keymapstore: %w", err)
	}
	return s.write(data)
}

// All returns every persisted mapping for mode, keyed by lhs.
func (s *Store) All(mode key.RemapMode) (map[string]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	result := gjson.GetBytes(data, escape(mode.String()))
	entries := make(map[string]Entry)
	result.ForEach(func(key, value gjson.Result) bool {
		entries[key.String()] = Entry{
			Rhs:     value.Get("rhs").String(),
			NoRemap: value.Get("noremap").Bool(),
		}
		return true
	})
	return entries, nil
}
