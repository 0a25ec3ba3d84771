package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNoStore is returned when saving preferences without a configured store.
var ErrNoStore = errors.New("no preference store configured")

// Store persists Preferences.
type Store interface {
	// Load returns the stored preferences. It never fails: missing or
	// malformed data yields the built-in defaults.
	Load() Preferences

	// Save replaces the stored preferences.
	Save(p Preferences) error
}

// codec converts preferences to and from a file format.
type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var (
	yamlCodec = codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
	tomlCodec = codec{marshal: toml.Marshal, unmarshal: toml.Unmarshal}
	jsonCodec = codec{
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
		unmarshal: json.Unmarshal,
	}
)

// codecFor picks the format from the file extension. JSON is the fallback.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec
	case ".toml":
		return tomlCodec
	default:
		return jsonCodec
	}
}

// FileStore keeps preferences in a single file. The format follows the file
// extension: .yaml/.yml, .toml, anything else is JSON.
// Values loaded from the file can be overridden with TERMLOAD_* variables.
type FileStore struct {
	path  string
	codec codec
	log   *slog.Logger
}

// NewFileStore creates a store backed by path. A nil logger discards output.
func NewFileStore(path string, log *slog.Logger) *FileStore {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &FileStore{
		path:  path,
		codec: codecFor(path),
		log:   log,
	}
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load() Preferences {
	p, err := s.read()
	if err != nil {
		s.log.Debug("Using default preferences", "path", s.path, "err", err)
		p = Preferences{}
	}
	p.applyDefaults()

	if err := ApplyEnv(&p); err != nil {
		s.log.Debug("Ignoring environment overrides", "err", err)
	}
	p.applyDefaults()

	return p
}

// read loads and parses the preference file.
func (s *FileStore) read() (Preferences, error) {
	var p Preferences

	data, err := os.ReadFile(s.path)
	if err != nil {
		return p, fmt.Errorf("failed to read preferences file: %w", err)
	}
	if err := s.codec.unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse preferences file: %w", err)
	}

	return p, nil
}

// Save implements Store. The parent directory is created when missing.
func (s *FileStore) Save(p Preferences) error {
	data, err := s.codec.marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	s.log.Debug("Preferences saved", "path", s.path)
	return nil
}

// MemoryStore keeps preferences in memory. The zero value holds the defaults.
type MemoryStore struct {
	mu    sync.Mutex
	prefs Preferences
}

// NewMemoryStore creates a store seeded with p.
func NewMemoryStore(p Preferences) *MemoryStore {
	return &MemoryStore{prefs: p}
}

// Load implements Store.
func (m *MemoryStore) Load() Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.prefs
	p.applyDefaults()
	return p
}

// Save implements Store.
func (m *MemoryStore) Save(p Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs = p
	return nil
}
