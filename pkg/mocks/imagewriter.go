package mocks

import (
	"image"

	"github.com/user/framecap/pkg/ports"
)

// ImageWriter is a mock implementation of ports.ImageWriter.
type ImageWriter struct {
	WriteImageFunc func(path string, img image.Image) error

	// Recorded calls for verification
	Writes []WriteImageCall
}

// WriteImageCall records a call to WriteImage.
type WriteImageCall struct {
	Path   string
	Width  int
	Height int
}

func (m *ImageWriter) WriteImage(path string, img image.Image) error {
	b := img.Bounds()
	m.Writes = append(m.Writes, WriteImageCall{Path: path, Width: b.Dx(), Height: b.Dy()})
	if m.WriteImageFunc != nil {
		return m.WriteImageFunc(path, img)
	}
	return nil
}

var _ ports.ImageWriter = (*ImageWriter)(nil)
