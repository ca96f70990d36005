package database

import (
	"context"

	"pixline/internal/domain/model"
)

type Writer interface {
	Insert(ctx context.Context, image *model.Image) error
}
