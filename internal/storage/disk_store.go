package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore saves uploaded files to disk under a base directory.
type DiskStore struct {
	basePath string
}

// NewDiskStore creates the base directory if missing.
func NewDiskStore(basePath string) (*DiskStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &DiskStore{basePath: basePath}, nil
}

// Save writes the blob under the key.
func (s *DiskStore) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	target, err := s.resolve(key)
	if err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Open returns a reader over the stored blob.
func (s *DiskStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	target, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(target)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

// Delete removes the blob. A missing blob is not an error.
func (s *DiskStore) Delete(_ context.Context, key string) error {
	target, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// resolve rejects keys that would escape the base directory.
func (s *DiskStore) resolve(key string) (string, error) {
	clean := filepath.Base(strings.TrimSpace(key))
	if clean == "" || clean == "." || clean == string(os.PathSeparator) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.basePath, clean), nil
}
