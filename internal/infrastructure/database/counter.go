package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"pixline/internal/domain/model"
	databaseRepository "pixline/internal/domain/repository/database"
)

type ImageCounter struct {
	db *Database
}

func NewImageCounter(db *Database) *ImageCounter {
	return &ImageCounter{db: db}
}

func (c *ImageCounter) Counts(ctx context.Context) (databaseRepository.Counts, error) {
	ctx, cancel := context.WithTimeout(ctx, c.db.QueryTimeout)
	defer cancel()

	coll := c.db.Client.Database(c.db.DBName).Collection(ImageCollection)

	var counts databaseRepository.Counts
	var err error

	counts.Total, err = coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return databaseRepository.Counts{}, err
	}

	counts.Failed, err = coll.CountDocuments(ctx, bson.M{"status": model.StatusFailed})
	if err != nil {
		return databaseRepository.Counts{}, err
	}

	counts.Success, err = coll.CountDocuments(ctx, bson.M{"status": model.StatusSuccess})
	if err != nil {
		return databaseRepository.Counts{}, err
	}

	cursor, err := coll.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"processing_ms": bson.M{"$ne": nil}}},
		{"$group": bson.M{"_id": nil, "avg_ms": bson.M{"$avg": "$processing_ms"}}},
	})
	if err != nil {
		return databaseRepository.Counts{}, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		AvgMs float64 `bson:"avg_ms"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return databaseRepository.Counts{}, err
	}
	if len(result) > 0 {
		counts.AverageProcessingMs = result[0].AvgMs
	}

	return counts, nil
}
