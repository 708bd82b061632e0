package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileCache keeps every key in one JSON document on disk, the way a browser
// keeps its local storage. Entries never expire.
type fileCache struct {
	mu   sync.Mutex
	path string
}

func NewFileCache(path string) (Cache, error) {

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory for %s: %w", path, err)
	}

	return &fileCache{path: path}, nil
}

func (f *fileCache) load() (map[string]json.RawMessage, error) {

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file %s: %w", f.path, err)
	}

	entries := map[string]json.RawMessage{}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cache file %s: %w: %w", f.path, ErrMalformed, err)
	}

	return entries, nil
}

func (f *fileCache) store(entries map[string]json.RawMessage) error {

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache file %s: %w", f.path, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace cache file %s: %w", f.path, err)
	}

	return nil
}

func (f *fileCache) Get(_ context.Context, key string, value any) (bool, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return false, err
	}

	raw, ok := entries[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w: %w", key, ErrMalformed, err)
	}

	return true, nil
}

func (f *fileCache) Set(_ context.Context, key string, value any, _ time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	switch {
	case errors.Is(err, ErrMalformed):
		// A corrupt document is replaced rather than blocking every write.
		slog.Warn("Discarding corrupt cache file", slog.String("path", f.path), slog.String("error", err.Error()))
		entries = map[string]json.RawMessage{}
	case err != nil:
		return err
	}

	entries[key] = data

	return f.store(entries)
}

func (f *fileCache) Delete(_ context.Context, key string) error {

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}

	if _, ok := entries[key]; !ok {
		return nil
	}

	delete(entries, key)

	return f.store(entries)
}

func (f *fileCache) Close() error {
	return nil
}
