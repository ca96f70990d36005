package model

import "time"

const (
	StatusProcessing = "processing"
	StatusSuccess    = "success"
	StatusFailed     = "failed"
)

const (
	VariantSmall  = "small"
	VariantMedium = "medium"
)

// Image is the persisted lifecycle record of one uploaded image.
//
// The pointer fields are populated according to status: width, height,
// format, caption and thumbnails only when status is "success"; error only
// when status is "failed"; processed_at and processing_ms exactly once, at
// the terminal write. While status is "processing" all of them are nil.
type Image struct {
	ID           string            `bson:"_id"`
	OriginalName string            `bson:"original_name"`
	MimeType     string            `bson:"mime_type"`
	SizeBytes    int64             `bson:"size_bytes"`
	StoredName   string            `bson:"stored_name"`
	Status       string            `bson:"status"`
	Width        *int              `bson:"width"`
	Height       *int              `bson:"height"`
	Format       *string           `bson:"format"` // encoder name, e.g. "JPEG"
	Caption      *string           `bson:"caption"`
	Thumbnails   map[string]string `bson:"thumbnails"` // variant -> blob key
	Error        *string           `bson:"error"`
	CreatedAt    time.Time         `bson:"created_at"`
	ProcessedAt  *time.Time        `bson:"processed_at"`
	ProcessingMs *int64            `bson:"processing_ms"`
}

// Terminal reports whether the image lifecycle has reached a final status.
func (i *Image) Terminal() bool {
	return i.Status == StatusSuccess || i.Status == StatusFailed
}
