// Package storage abstracts where uploaded files land. The server ships two
// backends: local disk for single-node deployments and MinIO (or any
// S3-compatible endpoint) for everything else.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("storage: object not found")

// ObjectStore stores uploaded binary objects under opaque keys.
type ObjectStore interface {
	// Put writes the object and returns nothing; the caller chose the key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Get opens the object for reading. The caller must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error
}
