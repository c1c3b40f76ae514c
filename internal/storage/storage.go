package storage

import (
	"context"
	"io"
)

// BlobStore persists uploaded file contents under opaque keys. File
// metadata lives in the file_items table; only the bytes live here.
type BlobStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
