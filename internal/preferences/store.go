// Package preferences is a small key-value store persisted as a YAML file.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/watch"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the preference file inside the data directory
const FileName = "settings.yaml"

// Values is a snapshot of every stored preference
type Values map[string]string

// Store holds string preferences. A store created with Open persists to a
// file; one created with NewMemory keeps values in memory only.
type Store struct {
	mu     sync.Mutex
	path   string
	values Values
	feed   *events.Feed[Values]
	logger *slog.Logger
}

// Open loads the preference file at path. A missing file is an empty store;
// an unreadable or corrupt file is logged and treated as empty.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	s := newStore(path, logger)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemory returns a store that is never written to disk
func NewMemory() *Store {
	return newStore("", slog.Default())
}

func newStore(path string, logger *slog.Logger) *Store {
	s := &Store{
		path:   path,
		values: Values{},
		logger: logger,
	}
	s.feed = events.NewFeed[Values](events.OnActive(func() {
		s.mu.Lock()
		snapshot := maps.Clone(s.values)
		s.mu.Unlock()
		s.feed.Publish(snapshot)
	}))
	return s
}

// Path returns the backing file, or "" for memory stores
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and persists the file
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	next := maps.Clone(s.values)
	next[key] = value

	if err := s.write(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.values = next
	snapshot := maps.Clone(next)
	s.mu.Unlock()

	s.feed.Publish(snapshot)
	return nil
}

// Subscribe returns a live view of all preferences
func (s *Store) Subscribe() *events.Subscription[Values] {
	return s.feed.Subscribe()
}

// Reload re-reads the backing file and publishes the result if it changed
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	values, err := s.read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	unchanged := maps.Equal(values, s.values)
	s.values = values
	snapshot := maps.Clone(values)
	s.mu.Unlock()

	if !unchanged {
		s.feed.Publish(snapshot)
	}
	return nil
}

// Watch reloads the store whenever another process rewrites the file.
// It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}
	return watch.Files(ctx, watch.Config{Paths: []string{s.path}, Logger: s.logger}, func() {
		if err := s.Reload(); err != nil {
			s.logger.Error("failed to reload preferences", "path", s.path, "error", err)
		}
	})
}

func (s *Store) read() (Values, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Values{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	values := Values{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		s.logger.Warn("ignoring corrupt preferences file", "path", s.path, "error", err)
		return Values{}, nil
	}
	return values, nil
}

// write persists values with a temp file + rename so readers never see a partial file
func (s *Store) write(values Values) error {
	if s.path == "" {
		return nil
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
