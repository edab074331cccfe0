package services

import (
	"context"
	"io"
)

// FileStore abstracts object storage for uploaded assets such as company
// logos. Implementations return the public URL of the stored object.
type FileStore interface {
	// Put stores the content under the given key and returns its public URL.
	Put(ctx context.Context, key string, contentType string, size int64, content io.Reader) (string, error)
}
