package database

import (
	"context"

	"pixline/internal/domain/model"
)

// NotFoundError is returned by Retriever implementations when no image
// record exists for the requested id.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return "image not found: " + e.ID
}

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Image, error)
}
