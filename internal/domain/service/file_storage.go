package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for object storage of uploaded documents
// and product images.
type FileStorage interface {
	// Upload writes the content to the given bucket under the given key and
	// returns the public URL of the stored object.
	Upload(ctx context.Context, bucket, key, contentType string, content io.Reader) (string, error)

	// Delete removes an object from the given bucket. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, bucket, key string) error
}
