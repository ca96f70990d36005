package processing

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Register the decoders for the formats the service accepts.
	_ "image/jpeg"
	_ "image/png"
)

// DecodeImage decodes the raw upload into a usable image and reports the
// encoder's canonical format name ("JPEG", "PNG").
func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	return img, strings.ToUpper(format), nil
}
