package abstraction

import (
	"context"

	"pixline/internal/domain/dto"
)

type Lister interface {
	ListImages(ctx context.Context) ([]dto.ImageEnvelope, int, error)
}
