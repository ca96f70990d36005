package abstraction

import (
	"context"

	"pixline/internal/domain/dto"
)

// Getter defines the interface for retrieving one image's lifecycle view.
type Getter interface {
	GetImage(ctx context.Context, id string) (dto.ImageEnvelope, int, error)
}
