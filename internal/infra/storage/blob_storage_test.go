package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"elyukal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage() *blobStorage {
	cfg := &config.StorageConfig{
		URLPrefix:     "mem://",
		PublicBaseURL: "https://cdn.example.com/",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewBlobStorage(cfg, logger).(*blobStorage)
}

func TestBlobStorage_UploadReturnsPublicURL(t *testing.T) {
	storage := newTestStorage()
	ctx := context.Background()

	url, err := storage.Upload(ctx, "assets", "product-images/basi.jpg", "image/jpeg", strings.NewReader("image bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/product-images/basi.jpg", url)
}

func TestBlobStorage_DeleteRemovesUploadedObject(t *testing.T) {
	storage := newTestStorage()
	ctx := context.Background()

	_, err := storage.Upload(ctx, "permits", "abc.pdf", "application/pdf", strings.NewReader("permit bytes"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, "permits", "abc.pdf"))
}

func TestBlobStorage_DeleteMissingKeyIsNotAnError(t *testing.T) {
	storage := newTestStorage()

	assert.NoError(t, storage.Delete(context.Background(), "permits", "never-uploaded.pdf"))
}

func TestBlobStorage_BucketsAreCachedPerName(t *testing.T) {
	storage := newTestStorage()
	ctx := context.Background()

	first, err := storage.open(ctx, "assets")
	require.NoError(t, err)
	second, err := storage.open(ctx, "assets")
	require.NoError(t, err)

	assert.Same(t, first, second)
}
