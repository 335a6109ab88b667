// Package settings persists display preferences such as color and font theme.
// The workspace treats the store as opaque key/value pairs.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cristianoliveira/notedeck/internal/config"
	"github.com/pelletier/go-toml/v2"
)

// Store persists and retrieves preference key/value pairs.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FileStore keeps preferences in a TOML file.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

var _ Store = (*FileStore)(nil)

// Open loads the preferences file at path. A missing file yields an empty store.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}
	if err := toml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	return s, nil
}

// OpenDefault opens the preferences file under the configured config dir.
func OpenDefault() (*FileStore, error) {
	return Open(PreferencesPath())
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value for key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and rewrites the file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// save writes the file through a temp file and rename so readers never see a partial write.
func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), config.FileModeDir); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, config.FileModeFile); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}
	return nil
}

// MemoryStore is a Store that keeps values in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
