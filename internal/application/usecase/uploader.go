package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"pixline/internal/domain/dto"
	"pixline/internal/domain/model"
	brokerRepository "pixline/internal/domain/repository/broker"
	databaseRepository "pixline/internal/domain/repository/database"
	minioRepository "pixline/internal/domain/repository/minio"
	"pixline/pkg/logger"
	"pixline/pkg/utils"
)

// allowedTypes is the upload allow-list: exactly one JPEG and one PNG token.
var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

type Uploader struct {
	writer       databaseRepository.Writer
	dbRemover    databaseRepository.Remover
	blobUploader minioRepository.Uploader
	blobRemover  minioRepository.Remover
	publisher    brokerRepository.Publisher
}

func NewUploader(writer databaseRepository.Writer, dbRemover databaseRepository.Remover,
	blobUploader minioRepository.Uploader, blobRemover minioRepository.Remover,
	publisher brokerRepository.Publisher,
) *Uploader {
	return &Uploader{
		writer:       writer,
		dbRemover:    dbRemover,
		blobUploader: blobUploader,
		blobRemover:  blobRemover,
		publisher:    publisher,
	}
}

// Upload is the acceptance path. Validation happens before any blob or row
// exists; once the row is inserted and the id published, the caller gets the
// tracking id back and everything else happens out of band.
func (u *Uploader) Upload(ctx context.Context, payload []byte, contentType, originalName string,
) (dto.UploadResponse, int, error) {
	declaredType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if _, ok := allowedTypes[declaredType]; !ok {
		return dto.UploadResponse{}, http.StatusBadRequest, errors.New("only JPEG and PNG uploads are allowed")
	}

	if len(payload) == 0 {
		return dto.UploadResponse{}, http.StatusBadRequest, errors.New("empty upload")
	}

	// The sniff never blocks acceptance: undecodable content surfaces as a
	// failed pipeline run, not a rejected upload.
	if detected := mimetype.Detect(payload).String(); !strings.Contains(detected, declaredType) {
		logger.Warn("declared content type differs from detected",
			"declared", declaredType, "detected", detected)
	}

	id := uuid.New().String()
	storedName := id + utils.GetExtensionFromMimeType(declaredType)

	if _, err := u.blobUploader.UploadObject(ctx, storedName, declaredType, payload); err != nil {
		logger.Error("failed to store original blob", "err", err)

		return dto.UploadResponse{}, http.StatusInternalServerError, errors.New("couldn't store uploaded file")
	}

	image := &model.Image{
		ID:           id,
		OriginalName: originalName,
		MimeType:     declaredType,
		SizeBytes:    int64(len(payload)),
		StoredName:   storedName,
		Status:       model.StatusProcessing,
		CreatedAt:    nowUTC(),
	}

	if err := u.writer.Insert(ctx, image); err != nil {
		if blobErr := u.blobRemover.Remove(ctx, storedName); blobErr != nil {
			logger.Error("failed to remove blob after insert failed", "err", blobErr)
		}

		logger.Error("failed to insert image record", "err", err)

		return dto.UploadResponse{}, http.StatusInternalServerError, errors.New("couldn't add image to database")
	}

	if err := u.publisher.Publish(ctx, id); err != nil {
		if blobErr := u.blobRemover.Remove(ctx, storedName); blobErr != nil {
			logger.Error("failed to remove blob after publish failed", "err", blobErr)
		}

		if removeErr := u.dbRemover.RemoveByID(ctx, id); removeErr != nil {
			logger.Error("failed to remove image record after publish failed", "err", removeErr)
		}

		logger.Error("failed to publish image id for processing", "err", err)

		return dto.UploadResponse{}, http.StatusInternalServerError,
			errors.New("failed to queue image for processing")
	}

	return dto.UploadResponse{
		ImageID: id,
		Status:  model.StatusProcessing,
	}, http.StatusOK, nil
}
