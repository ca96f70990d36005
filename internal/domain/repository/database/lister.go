package database

import (
	"context"

	"pixline/internal/domain/model"
)

// Lister defines the interface for listing image records from the database.
type Lister interface {
	// ListByCreation returns all records ordered by creation time, newest first.
	ListByCreation(ctx context.Context) ([]model.Image, error)
}
