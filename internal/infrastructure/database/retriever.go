package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pixline/internal/domain/model"
	databaseRepository "pixline/internal/domain/repository/database"
)

type ImageRetriever struct {
	db *Database
}

func NewImageRetriever(db *Database) *ImageRetriever {
	return &ImageRetriever{db: db}
}

func (r *ImageRetriever) GetByID(ctx context.Context, id string) (*model.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ImageCollection)

	var image model.Image
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, databaseRepository.NotFoundError{ID: id}
		}

		return nil, err
	}

	return &image, nil
}
