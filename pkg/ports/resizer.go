package ports

import (
	"image"
)

// Resizer abstracts image scaling.
type Resizer interface {
	// Resize scales img to exactly width x height pixels.
	Resize(img image.Image, width, height int) image.Image
}
