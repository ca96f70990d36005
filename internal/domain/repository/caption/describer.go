package caption

import (
	"context"
	"image"
)

// Describer produces a short caption of the literally visible content of an
// image. Implementations are constructed once per process and must be safe
// for concurrent use; identical input yields identical output.
type Describer interface {
	Describe(ctx context.Context, img image.Image) (string, error)
}
