package processing

import (
	"image"

	"pixline/internal/domain/entity"
)

// ExtractMetadata reads the decoded image's dimensions. The format token is
// the encoder name reported at decode time.
func ExtractMetadata(img image.Image, format string) entity.Metadata {
	bounds := img.Bounds()

	return entity.Metadata{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}
}
