package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"

	"pixline/internal/domain/model"
	databaseRepository "pixline/internal/domain/repository/database"
	minioRepository "pixline/internal/domain/repository/minio"
)

// ThumbnailGetter serves stored thumbnail bytes, gated on lifecycle state:
// 404 for unknown ids or missing blobs, 409 while the image is anything but
// successfully processed.
type ThumbnailGetter struct {
	retriever  databaseRepository.Retriever
	downloader minioRepository.Downloader
}

func NewThumbnailGetter(retriever databaseRepository.Retriever,
	downloader minioRepository.Downloader,
) *ThumbnailGetter {
	return &ThumbnailGetter{
		retriever:  retriever,
		downloader: downloader,
	}
}

func (t *ThumbnailGetter) GetThumbnail(ctx context.Context, id, variant string) (io.ReadCloser, int, error) {
	if variant != model.VariantSmall && variant != model.VariantMedium {
		return nil, http.StatusBadRequest, errors.New("size must be 'small' or 'medium'")
	}

	image, err := t.retriever.GetByID(ctx, id)
	if err != nil {
		var notFound databaseRepository.NotFoundError
		if errors.As(err, &notFound) {
			return nil, http.StatusNotFound, errors.New("image not found")
		}

		return nil, http.StatusInternalServerError, errors.New("failed to retrieve image")
	}

	if image.Status != model.StatusSuccess {
		return nil, http.StatusConflict, errors.New("thumbnails not ready (processing not successful)")
	}

	key, ok := image.Thumbnails[variant]
	if !ok || key == "" {
		return nil, http.StatusNotFound, errors.New("thumbnail not found")
	}

	reader, err := t.downloader.GetObject(ctx, key)
	if err != nil {
		var missing minioRepository.MissingObjectError
		if errors.As(err, &missing) {
			return nil, http.StatusNotFound, errors.New("thumbnail not found")
		}

		return nil, http.StatusInternalServerError, errors.New("failed to fetch thumbnail")
	}

	return reader, http.StatusOK, nil
}
