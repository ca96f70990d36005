package database

import (
	"context"
	"time"
)

// SuccessUpdate carries the complete set of fields written by the single
// terminal update of a successfully processed image.
type SuccessUpdate struct {
	Width        int
	Height       int
	Format       string
	Caption      string
	Thumbnails   map[string]string
	ProcessedAt  time.Time
	ProcessingMs int64
}

// FailureUpdate carries the fields written by the single terminal update of
// a failed image.
type FailureUpdate struct {
	Error        string
	ProcessedAt  time.Time
	ProcessingMs int64
}

// Finalizer performs the one-and-only terminal transition of an image
// record. Implementations must apply the update atomically and only to
// records still in the processing status; a record already terminal is left
// untouched and reported via the returned bool.
type Finalizer interface {
	MarkSuccess(ctx context.Context, id string, update SuccessUpdate) (bool, error)
	MarkFailure(ctx context.Context, id string, update FailureUpdate) (bool, error)
}
