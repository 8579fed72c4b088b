package durable

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

type fileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage persists the durable keys as one JSON object on disk, the
// terminal counterpart of browser local storage.
func NewFileStorage(path string) contracts.DurableStorage {
	return &fileStorage{path: path}
}

// DefaultFilePath resolves $XDG_CONFIG_HOME/docai/session.json, falling back
// to the platform user config directory.
func DefaultFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, constvars.DefaultCLISessionDir, constvars.DefaultCLISessionFile), nil
}

func (s *fileStorage) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

func (s *fileStorage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

func (s *fileStorage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

// load treats a missing or corrupt file as empty storage.
func (s *fileStorage) load() (map[string]string, error) {
	values := make(map[string]string)
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, exceptions.ErrFileStorageRead(err, s.path)
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return make(map[string]string), nil
	}
	return values, nil
}

func (s *fileStorage) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return exceptions.ErrFileStorageWrite(err, s.path)
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return exceptions.ErrFileStorageWrite(err, s.path)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return exceptions.ErrFileStorageWrite(err, s.path)
	}
	return nil
}
