package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Storage is the persistence port for settings. A durable adapter keeps
// one serialized Settings value; Load on an absent key returns ok=false.
type Storage interface {
	Load() (Settings, bool, error)
	Save(Settings) error
	Clear() error
}

// Store holds the current settings and writes every mutation through the
// storage port. When storage is unavailable the store silently degrades to
// in-memory defaults: the only observable difference is that values do not
// survive a restart.
type Store struct {
	mu      sync.Mutex
	current Settings
	storage Storage
	logger  *zap.Logger
}

// NewStore creates a store backed by the given storage. A nil storage
// means memory-only. Settings load once at construction; a load failure
// falls back to defaults.
func NewStore(storage Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{current: Defaults(), storage: storage, logger: logger}
	if storage != nil {
		loaded, ok, err := storage.Load()
		if err != nil {
			logger.Warn("settings storage unavailable, using defaults", zap.Error(err))
		} else if ok {
			s.current = loaded
		}
	}
	return s
}

// NewSessionStore creates a memory-only store seeded from the given
// settings. Interactive commands use it for their runtime toggles so a
// session never rewrites the persisted preferences.
func NewSessionStore(initial Settings, logger *zap.Logger) *Store {
	s := NewStore(nil, logger)
	s.current = initial
	return s
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges the partial into the current settings, persists the
// result, and returns the new value.
func (s *Store) Update(p Partial) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = merge(s.current, p)
	s.persist()
	return s.current
}

// Reset restores defaults and clears the persisted copy.
func (s *Store) Reset() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Defaults()
	if s.storage != nil {
		if err := s.storage.Clear(); err != nil {
			s.logger.Warn("failed to clear persisted settings", zap.Error(err))
		}
	}
	return s.current
}

func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.current); err != nil {
		s.logger.Warn("failed to persist settings", zap.Error(err))
	}
}

// FileStorage persists settings as JSON in a single file.
type FileStorage struct {
	Path string
}

// DefaultPath returns the settings file location under the user config
// directory, e.g. ~/.config/accessnav/settings.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config dir: %w", err)
	}
	return filepath.Join(dir, "accessnav", "settings.json"), nil
}

// Load reads the persisted settings. An absent file is not an error.
func (fs *FileStorage) Load() (Settings, bool, error) {
	data, err := os.ReadFile(fs.Path)
	if os.IsNotExist(err) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, false, fmt.Errorf("corrupt settings file %s: %w", fs.Path, err)
	}
	return s, true, nil
}

// Save writes the settings atomically (write temp file, then rename).
func (fs *FileStorage) Save(s Settings) error {
	if err := os.MkdirAll(filepath.Dir(fs.Path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := fs.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, fs.Path)
}

// Clear removes the persisted file.
func (fs *FileStorage) Clear() error {
	err := os.Remove(fs.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
