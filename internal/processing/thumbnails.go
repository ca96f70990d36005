package processing

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"pixline/internal/domain/entity"
)

const (
	SmallMaxSize  = 256
	MediumMaxSize = 512

	smallQuality  = 85
	mediumQuality = 90
)

// MakeThumbnails produces the two downscaled variants, aspect preserved and
// re-encoded as JPEG regardless of the input encoding. Either both variants
// are produced or none.
func MakeThumbnails(img image.Image) (entity.ThumbnailSet, error) {
	small, err := encodeVariant(img, SmallMaxSize, smallQuality)
	if err != nil {
		return entity.ThumbnailSet{}, fmt.Errorf("small variant: %w", err)
	}

	medium, err := encodeVariant(img, MediumMaxSize, mediumQuality)
	if err != nil {
		return entity.ThumbnailSet{}, fmt.Errorf("medium variant: %w", err)
	}

	return entity.ThumbnailSet{Small: small, Medium: medium}, nil
}

func encodeVariant(img image.Image, maxSize, quality int) ([]byte, error) {
	thumb := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
