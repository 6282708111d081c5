package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/finstagram/backend/config"
)

// s3Store keeps uploads in an S3 bucket with public-read objects.
type s3Store struct {
	cfg *config.S3Config
}

// NewS3 returns a media store backed by the configured S3 bucket.
func NewS3(cfg *config.S3Config) MediaStore {
	return &s3Store{cfg: cfg}
}

func (s *s3Store) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := s.cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.BucketName),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func (s *s3Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.cfg.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(name),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

func (s *s3Store) URL(ctx context.Context, name string) (string, bool) {
	return s.cfg.PublicURL(name), true
}
