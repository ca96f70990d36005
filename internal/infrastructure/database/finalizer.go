package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"pixline/internal/domain/model"
	databaseRepository "pixline/internal/domain/repository/database"
)

// ImageFinalizer writes the terminal state of an image record. Both updates
// are a single UpdateOne filtered on the processing status, so the
// transition happens atomically and at most once per record.
type ImageFinalizer struct {
	db *Database
}

func NewImageFinalizer(db *Database) *ImageFinalizer {
	return &ImageFinalizer{db: db}
}

func (f *ImageFinalizer) MarkSuccess(ctx context.Context, id string,
	update databaseRepository.SuccessUpdate,
) (bool, error) {
	return f.finalize(ctx, id, bson.M{
		"status":        model.StatusSuccess,
		"width":         update.Width,
		"height":        update.Height,
		"format":        update.Format,
		"caption":       update.Caption,
		"thumbnails":    update.Thumbnails,
		"error":         nil,
		"processed_at":  update.ProcessedAt,
		"processing_ms": update.ProcessingMs,
	})
}

func (f *ImageFinalizer) MarkFailure(ctx context.Context, id string,
	update databaseRepository.FailureUpdate,
) (bool, error) {
	return f.finalize(ctx, id, bson.M{
		"status":        model.StatusFailed,
		"error":         update.Error,
		"processed_at":  update.ProcessedAt,
		"processing_ms": update.ProcessingMs,
	})
}

func (f *ImageFinalizer) finalize(ctx context.Context, id string, fields bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, f.db.QueryTimeout)
	defer cancel()

	coll := f.db.Client.Database(f.db.DBName).Collection(ImageCollection)

	result, err := coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.StatusProcessing},
		bson.M{"$set": fields},
	)
	if err != nil {
		return false, err
	}

	return result.MatchedCount == 1, nil
}
