package minio

import (
	"context"
	"io"
)

// MissingObjectError is returned when the requested blob does not exist.
type MissingObjectError struct {
	Key string
}

func (e MissingObjectError) Error() string {
	return "object not found: " + e.Key
}

type Downloader interface {
	// GetObject streams the blob stored under key. The caller closes the reader.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	// StatObject returns the stored size of the blob under key.
	StatObject(ctx context.Context, key string) (int64, error)
}
