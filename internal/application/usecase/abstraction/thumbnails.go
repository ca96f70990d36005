package abstraction

import (
	"context"
	"io"
)

type ThumbnailGetter interface {
	// GetThumbnail streams the stored bytes of one thumbnail variant. The
	// caller closes the reader.
	GetThumbnail(ctx context.Context, id, variant string) (io.ReadCloser, int, error)
}
