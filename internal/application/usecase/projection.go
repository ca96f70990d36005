package usecase

import (
	"fmt"
	"strings"
	"time"

	"pixline/internal/domain/dto"
	"pixline/internal/domain/model"
)

// nowUTC is the single clock for persisted timestamps, truncated to seconds
// to match the wire format of processed_at.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// projectEnvelope shapes one record into its client view. Metadata and
// thumbnail URLs appear only for successfully processed images; everything
// else is derived from status alone.
func projectEnvelope(image *model.Image, publicAddress string) dto.ImageEnvelope {
	data := dto.ImageData{
		ImageID:      image.ID,
		OriginalName: image.OriginalName,
		Thumbnails:   map[string]string{},
	}

	if image.ProcessedAt != nil {
		processedAt := image.ProcessedAt.UTC().Format(time.RFC3339)
		data.ProcessedAt = &processedAt
	}

	if image.Status == model.StatusSuccess {
		data.Metadata = dto.Metadata{
			Width:     derefInt(image.Width),
			Height:    derefInt(image.Height),
			Format:    clientFormat(image.Format),
			SizeBytes: image.SizeBytes,
			Caption:   derefString(image.Caption),
		}

		for variant := range image.Thumbnails {
			data.Thumbnails[variant] = fmt.Sprintf("%s/api/images/%s/thumbnails/%s",
				publicAddress, image.ID, variant)
		}
	}

	return dto.ImageEnvelope{
		Status: image.Status,
		Data:   data,
		Error:  image.Error,
	}
}

// clientFormat lowercases the stored encoder name and normalizes "jpeg" to
// "jpg" for client-facing output only.
func clientFormat(format *string) string {
	if format == nil {
		return ""
	}

	lowered := strings.ToLower(*format)
	if lowered == "jpeg" {
		return "jpg"
	}

	return lowered
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}
