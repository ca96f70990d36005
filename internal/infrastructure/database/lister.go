package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pixline/internal/domain/model"
)

type ImageLister struct {
	db *Database
}

func NewImageLister(db *Database) *ImageLister {
	return &ImageLister{db: db}
}

func (l *ImageLister) ListByCreation(ctx context.Context) ([]model.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(ImageCollection)

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var images []model.Image
	if err = cursor.All(ctx, &images); err != nil {
		return nil, err
	}

	return images, nil
}
