package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localStore keeps uploads in a flat directory on disk.
type localStore struct {
	dir string
}

// NewLocal creates the upload directory if needed and returns a disk-backed
// media store.
func NewLocal(dir string) (MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStore{dir: dir}, nil
}

// resolve maps a stored name onto the upload directory, rejecting anything
// that could escape it. Stored names are already sanitized at write time;
// this guards the read path against raw lookup keys.
func (s *localStore) resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, name), nil
}

func (s *localStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	p, err := s.resolve(name)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

func (s *localStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	p, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// URL returns no absolute URL; local files are served by the API's file
// endpoint.
func (s *localStore) URL(ctx context.Context, name string) (string, bool) {
	return "", false
}
