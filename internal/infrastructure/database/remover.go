package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// ImageRemover deletes a record again when acceptance has to be rolled back.
// The pipeline itself never deletes records.
type ImageRemover struct {
	db *Database
}

func NewImageRemover(db *Database) *ImageRemover {
	return &ImageRemover{db: db}
}

func (r *ImageRemover) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ImageCollection)

	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})

	return err
}
