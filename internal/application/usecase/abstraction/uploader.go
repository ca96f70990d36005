package abstraction

import (
	"context"

	"pixline/internal/domain/dto"
)

type Uploader interface {
	// Upload validates and accepts an image payload, returning the tracking
	// id and initial status together with the HTTP status to answer with.
	Upload(ctx context.Context, payload []byte, contentType, originalName string) (dto.UploadResponse, int, error)
}
