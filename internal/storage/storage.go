// Package storage provides the media store: a flat namespace of uploaded
// files addressed by their derived filenames.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/finstagram/backend/config"
)

// ErrNotFound is returned when the named file does not exist in the store.
var ErrNotFound = errors.New("file not found")

// MediaStore abstracts where uploaded bytes live. Saving an existing name
// silently overwrites it; that is relied on for avatar re-uploads.
type MediaStore interface {
	// Save writes the content under name, replacing any previous content.
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Open returns the content for name, or ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// URL returns an absolute retrieval URL when the backend serves files
	// itself. ok is false for backends that are fronted by the API's own
	// file endpoint.
	URL(ctx context.Context, name string) (url string, ok bool)
}

// New builds the media store selected by the configuration.
func New(ctx context.Context, cfg *config.Config) (MediaStore, error) {
	switch cfg.StorageBackend {
	case config.StorageLocal:
		return NewLocal(cfg.UploadDir)
	case config.StorageS3:
		s3cfg, err := config.NewS3Config(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to configure S3: %w", err)
		}
		return NewS3(s3cfg), nil
	case config.StorageMinIO:
		return NewMinIO(config.LoadMinIOConfig())
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
