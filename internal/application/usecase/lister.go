package usecase

import (
	"context"
	"errors"
	"net/http"

	"pixline/internal/domain/dto"
	databaseRepository "pixline/internal/domain/repository/database"
)

// Lister implements the Lister abstraction for the image overview.
type Lister struct {
	lister        databaseRepository.Lister
	publicAddress string
}

func NewLister(lister databaseRepository.Lister, address string) *Lister {
	return &Lister{
		lister:        lister,
		publicAddress: address,
	}
}

// ListImages returns every image's envelope, newest first.
func (l *Lister) ListImages(ctx context.Context) ([]dto.ImageEnvelope, int, error) {
	images, err := l.lister.ListByCreation(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("failed to list images")
	}

	envelopes := make([]dto.ImageEnvelope, 0, len(images))
	for i := range images {
		envelopes = append(envelopes, projectEnvelope(&images[i], l.publicAddress))
	}

	return envelopes, http.StatusOK, nil
}
