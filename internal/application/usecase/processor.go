package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"pixline/internal/domain/model"
	captionRepository "pixline/internal/domain/repository/caption"
	databaseRepository "pixline/internal/domain/repository/database"
	minioRepository "pixline/internal/domain/repository/minio"
	"pixline/internal/processing"
	"pixline/pkg/logger"
)

// Processor drives one image through processing -> {success, failed}. It is
// the only writer of terminal state; readers keep seeing "processing" until
// the single finalizer update lands.
//
// Stages run in a fixed order: metadata first (cheapest, fails fastest on
// corrupt input), then thumbnails, then captioning (slowest). Any stage
// failure aborts the rest and becomes the persisted error; derived blobs are
// only uploaded once every stage has succeeded, so no partial thumbnail set
// is ever observable.
type Processor struct {
	retriever    databaseRepository.Retriever
	finalizer    databaseRepository.Finalizer
	downloader   minioRepository.Downloader
	blobUploader minioRepository.Uploader
	blobRemover  minioRepository.Remover
	describer    captionRepository.Describer
}

func NewProcessor(retriever databaseRepository.Retriever, finalizer databaseRepository.Finalizer,
	downloader minioRepository.Downloader, blobUploader minioRepository.Uploader,
	blobRemover minioRepository.Remover, describer captionRepository.Describer,
) *Processor {
	return &Processor{
		retriever:    retriever,
		finalizer:    finalizer,
		downloader:   downloader,
		blobUploader: blobUploader,
		blobRemover:  blobRemover,
		describer:    describer,
	}
}

// Run executes the pipeline for one accepted image. Unknown ids and already
// terminal records are logged no-ops. A non-nil return means the terminal
// write itself could not happen and the record stays "processing".
func (p *Processor) Run(ctx context.Context, id string) error {
	image, err := p.retriever.GetByID(ctx, id)
	if err != nil {
		var notFound databaseRepository.NotFoundError
		if errors.As(err, &notFound) {
			logger.Warn("pipeline run for unknown image id, skipping", "id", id)

			return nil
		}

		return fmt.Errorf("load image %s: %w", id, err)
	}

	if image.Terminal() {
		logger.Warn("pipeline run for already finalized image, skipping", "id", id, "status", image.Status)

		return nil
	}

	start := time.Now()

	data, err := p.readOriginal(ctx, image)
	if err != nil {
		return p.fail(ctx, id, start, err)
	}

	sizeBytes := image.SizeBytes
	if sizeBytes == 0 {
		if sizeBytes, err = p.downloader.StatObject(ctx, image.StoredName); err != nil {
			return p.fail(ctx, id, start, fmt.Errorf("stat original blob: %w", err))
		}
	}

	decoded, format, err := processing.DecodeImage(data)
	if err != nil {
		return p.fail(ctx, id, start, err)
	}

	metadata := processing.ExtractMetadata(decoded, format)

	thumbs, err := processing.MakeThumbnails(decoded)
	if err != nil {
		return p.fail(ctx, id, start, err)
	}

	caption, err := p.describer.Describe(ctx, decoded)
	if err != nil {
		return p.fail(ctx, id, start, fmt.Errorf("caption: %w", err))
	}

	refs, err := p.storeThumbnails(ctx, id, thumbs.Small, thumbs.Medium)
	if err != nil {
		return p.fail(ctx, id, start, err)
	}

	update := databaseRepository.SuccessUpdate{
		Width:        metadata.Width,
		Height:       metadata.Height,
		Format:       metadata.Format,
		Caption:      caption,
		Thumbnails:   refs,
		ProcessedAt:  nowUTC(),
		ProcessingMs: time.Since(start).Milliseconds(),
	}

	matched, err := p.finalizer.MarkSuccess(ctx, id, update)
	if err != nil {
		// The record stays "processing"; there is no retry, only the log.
		logger.Error("terminal write failed, image left in processing", "id", id, "err", err)

		return fmt.Errorf("finalize image %s: %w", id, err)
	}
	if !matched {
		logger.Warn("image was already finalized, success result discarded", "id", id)

		return nil
	}

	logger.Info("image processed", "id", id, "size_bytes", sizeBytes,
		"duration_ms", update.ProcessingMs)

	return nil
}

func (p *Processor) readOriginal(ctx context.Context, image *model.Image) ([]byte, error) {
	reader, err := p.downloader.GetObject(ctx, image.StoredName)
	if err != nil {
		return nil, fmt.Errorf("fetch original blob: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read original blob: %w", err)
	}

	return data, nil
}

// storeThumbnails uploads both variants and rolls back the first on a
// failure of the second, so the blob store never holds a partial set.
func (p *Processor) storeThumbnails(ctx context.Context, id string, small, medium []byte,
) (map[string]string, error) {
	smallKey := id + "_small.jpg"
	mediumKey := id + "_medium.jpg"

	if _, err := p.blobUploader.UploadObject(ctx, smallKey, "image/jpeg", small); err != nil {
		return nil, fmt.Errorf("store small thumbnail: %w", err)
	}

	if _, err := p.blobUploader.UploadObject(ctx, mediumKey, "image/jpeg", medium); err != nil {
		if removeErr := p.blobRemover.Remove(ctx, smallKey); removeErr != nil {
			logger.Error("failed to remove small thumbnail after medium failed", "id", id, "err", removeErr)
		}

		return nil, fmt.Errorf("store medium thumbnail: %w", err)
	}

	return map[string]string{
		model.VariantSmall:  smallKey,
		model.VariantMedium: mediumKey,
	}, nil
}

// fail converts a stage error into the terminal failed state. Nothing
// propagates to the dispatcher except the inability to write that state.
func (p *Processor) fail(ctx context.Context, id string, start time.Time, stageErr error) error {
	logger.Error("image processing failed", "id", id, "err", stageErr)

	update := databaseRepository.FailureUpdate{
		Error:        stageErr.Error(),
		ProcessedAt:  nowUTC(),
		ProcessingMs: time.Since(start).Milliseconds(),
	}

	matched, err := p.finalizer.MarkFailure(ctx, id, update)
	if err != nil {
		logger.Error("terminal write failed, image left in processing", "id", id, "err", err)

		return fmt.Errorf("finalize image %s: %w", id, err)
	}
	if !matched {
		logger.Warn("image was already finalized, failure result discarded", "id", id)
	}

	return nil
}
