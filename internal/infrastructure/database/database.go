package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ImageCollection = "image"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initImageCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initImageCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": ImageCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "original_name", "mime_type", "stored_name", "status", "created_at"},
			"properties": bson.M{
				"_id":           bson.M{"bsonType": "string"},
				"original_name": bson.M{"bsonType": "string"},
				"mime_type":     bson.M{"bsonType": "string"},
				"size_bytes":    bson.M{"bsonType": "long"},
				"stored_name":   bson.M{"bsonType": "string"},
				"status": bson.M{
					"bsonType": "string",
					"enum":     []string{"processing", "success", "failed"},
				},
				"width":   bson.M{"bsonType": []string{"int", "null"}},
				"height":  bson.M{"bsonType": []string{"int", "null"}},
				"format":  bson.M{"bsonType": []string{"string", "null"}},
				"caption": bson.M{"bsonType": []string{"string", "null"}},
				"thumbnails": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"small":  bson.M{"bsonType": "string"},
						"medium": bson.M{"bsonType": "string"},
					},
				},
				"error":         bson.M{"bsonType": []string{"string", "null"}},
				"created_at":    bson.M{"bsonType": "date"},
				"processed_at":  bson.M{"bsonType": []string{"date", "null"}},
				"processing_ms": bson.M{"bsonType": []string{"long", "null"}},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, ImageCollection, collOpts)
	if err != nil {
		return err
	}

	// created_at backs the ordered list endpoint, status backs stats.
	coll := db.Client.Database(db.DBName).Collection(ImageCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
