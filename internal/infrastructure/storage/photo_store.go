// Package storage keeps uploaded identity document photos on local disk.
// Filenames are generated, never caller-controlled; the employee row stores
// the generated name.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type PhotoStore struct {
	dir string
}

// NewPhotoStore ensures the storage directory exists and returns a store
// rooted there.
func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("photo store: create dir: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Save writes content to a uuid-named file, keeping only the extension of the
// uploaded filename, and returns the stored name.
func (s *PhotoStore) Save(originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("photo store: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("photo store: write: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. A missing file is treated as already removed.
func (s *PhotoStore) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("photo store: remove: %w", err)
	}
	return nil
}
