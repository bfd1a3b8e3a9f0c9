package ports

import (
	"image"
)

// ImageWriter abstracts encoding a raster to an image file.
type ImageWriter interface {
	// WriteImage encodes img and writes it to path, creating parent directories.
	WriteImage(path string, img image.Image) error
}
