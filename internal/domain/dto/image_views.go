package dto

// UploadResponse is returned to the caller right after acceptance.
type UploadResponse struct {
	ImageID string `json:"image_id"`
	Status  string `json:"status"`
}

// Metadata carries the derived properties of a successfully processed image.
// All fields are omitempty so the struct marshals to an empty object while
// the image has no derived state yet.
type Metadata struct {
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Format    string `json:"format,omitempty"` // client-facing token, "jpg" or "png"
	SizeBytes int64  `json:"size_bytes,omitempty"`
	Caption   string `json:"caption,omitempty"`
}

// ImageData is the inner payload of an envelope. Metadata and Thumbnails are
// populated only for successfully processed images and stay empty objects
// otherwise.
type ImageData struct {
	ImageID      string            `json:"image_id"`
	OriginalName string            `json:"original_name"`
	ProcessedAt  *string           `json:"processed_at"`
	Metadata     Metadata          `json:"metadata"`
	Thumbnails   map[string]string `json:"thumbnails"`
}

// ImageEnvelope is the client view of one image's lifecycle state.
type ImageEnvelope struct {
	Status string    `json:"status"`
	Data   ImageData `json:"data"`
	Error  *string   `json:"error"`
}

// StatsResponse aggregates processing outcomes across all images.
type StatsResponse struct {
	Total                        int64   `json:"total"`
	Failed                       int64   `json:"failed"`
	SuccessRate                  string  `json:"success_rate"`
	AverageProcessingTimeSeconds float64 `json:"average_processing_time_seconds"`
}
