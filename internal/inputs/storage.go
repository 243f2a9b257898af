// Package inputs stores and retrieves puzzle input files. A Store may be
// the local inputs directory or a shared remote bucket; the fetch command
// copies from a remote store into the local one.
package inputs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store abstracts blob storage for puzzle inputs.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
}

// LocalStore implements Store using a directory on the local filesystem.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.BaseDir, name)
}

// Get retrieves an input file.
func (s *LocalStore) Get(ctx context.Context, name string) ([]byte, error) {
	return os.ReadFile(s.path(name))
}

// Put stores an input file, creating the directory if needed.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
