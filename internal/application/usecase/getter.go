package usecase

import (
	"context"
	"errors"
	"net/http"

	"pixline/internal/domain/dto"
	databaseRepository "pixline/internal/domain/repository/database"
)

// Getter implements the Getter abstraction for retrieving one image view.
type Getter struct {
	retriever     databaseRepository.Retriever
	publicAddress string
}

func NewGetter(retriever databaseRepository.Retriever, address string) *Getter {
	return &Getter{
		retriever:     retriever,
		publicAddress: address,
	}
}

func (g *Getter) GetImage(ctx context.Context, id string) (dto.ImageEnvelope, int, error) {
	image, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		var notFound databaseRepository.NotFoundError
		if errors.As(err, &notFound) {
			return dto.ImageEnvelope{}, http.StatusNotFound, errors.New("image not found")
		}

		return dto.ImageEnvelope{}, http.StatusInternalServerError, errors.New("failed to retrieve image")
	}

	return projectEnvelope(image, g.publicAddress), http.StatusOK, nil
}
