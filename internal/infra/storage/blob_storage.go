// Package storage provides the object storage implementation backed by
// gocloud.dev blob buckets.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"elyukal/config"
	"elyukal/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the bucket drivers resolvable through blob.OpenBucket.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.FileStorage on top of gocloud.dev buckets.
// Buckets are opened lazily by URL and cached for the process lifetime.
type blobStorage struct {
	cfg    *config.StorageConfig
	logger *slog.Logger

	mu      sync.Mutex
	buckets map[string]*blob.Bucket
}

// NewBlobStorage creates a FileStorage that resolves bucket names against the
// configured URL prefix, e.g. "s3://" or "file:///var/data/".
func NewBlobStorage(cfg *config.StorageConfig, logger *slog.Logger) service.FileStorage {
	return &blobStorage{
		cfg:     cfg,
		logger:  logger,
		buckets: make(map[string]*blob.Bucket),
	}
}

// Upload writes the content under the given key and returns its public URL
func (s *blobStorage) Upload(ctx context.Context, bucket, key, contentType string, content io.Reader) (string, error) {
	b, err := s.open(ctx, bucket)
	if err != nil {
		return "", err
	}

	w, err := b.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s/%s", bucket, key)
	}
	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return "", errors.Wrapf(err, "failed to write %s/%s", bucket, key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize %s/%s", bucket, key)
	}

	return s.publicURL(bucket, key), nil
}

// Delete removes an object; a missing key is treated as already deleted
func (s *blobStorage) Delete(ctx context.Context, bucket, key string) error {
	b, err := s.open(ctx, bucket)
	if err != nil {
		return err
	}

	if err := b.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		return errors.Wrapf(err, "failed to delete %s/%s", bucket, key)
	}
	return nil
}

func (s *blobStorage) open(ctx context.Context, bucket string) (*blob.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.buckets[bucket]; ok {
		return b, nil
	}

	url := strings.TrimRight(s.cfg.URLPrefix, "/") + "/" + bucket
	b, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	s.buckets[bucket] = b
	s.logger.Debug("opened blob bucket", slog.String("url", url))
	return b, nil
}

func (s *blobStorage) publicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.PublicBaseURL, "/"), bucket, key)
}
