package service

import (
	"context"
	"io"
)

// ObjectStore defines the interface for binary object storage, used for
// product images. Implementations return a public URL per stored object.
type ObjectStore interface {
	// Upload writes the object under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the object under the given key.
	Delete(ctx context.Context, key string) error
}
