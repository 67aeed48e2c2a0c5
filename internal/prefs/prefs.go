// Package prefs is a small file-backed key/value store for per-device
// preferences such as the focal plant pointer. Values live next to the
// config file and survive restarts but are never shared between devices.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

const prefsFileName = "prefs.yaml"

// Store reads and writes preference keys under a single YAML file. It
// satisfies engine.PrefStore. A missing file is not an error; the store
// starts empty and creates the file on the first Set.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads the preference file under dir, creating dir if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating preferences directory: %w", err)
	}

	v := viper.New()
	path := filepath.Join(dir, prefsFileName)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading preferences: %w", err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// Get returns the stored value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// Set stores value under key and writes the file through immediately.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}
