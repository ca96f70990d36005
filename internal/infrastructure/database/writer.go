package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"pixline/internal/domain/model"
)

type ImageWriter struct {
	db *Database
}

func NewImageWriter(db *Database) *ImageWriter {
	return &ImageWriter{db: db}
}

// Insert stores a freshly accepted image record. Id uniqueness is enforced
// by the _id index; a duplicate fails the insert rather than overwriting.
func (w *ImageWriter) Insert(ctx context.Context, image *model.Image) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(ImageCollection)

	_, err := coll.InsertOne(ctx, image)
	if mongo.IsDuplicateKeyError(err) {
		return errors.New("image id already exists")
	}

	return err
}
