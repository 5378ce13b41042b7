package storage

import (
	"context"
	"io"
)

// Storage abstracts image file persistence. The local filesystem
// implementation can be swapped for S3 / Cloudflare R2 later.
type Storage interface {
	// Save stores a file and returns its public URL.
	// key is a unique path within the store, e.g. "projects/<uuid>.jpg".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key.
	Delete(ctx context.Context, key string) error
}
