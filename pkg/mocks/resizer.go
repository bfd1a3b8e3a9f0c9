package mocks

import (
	"image"

	"github.com/user/framecap/pkg/ports"
)

// Resizer is a mock implementation of ports.Resizer.
// By default it returns a blank image of the requested size.
type Resizer struct {
	ResizeFunc func(img image.Image, width, height int) image.Image

	Calls int
}

func (m *Resizer) Resize(img image.Image, width, height int) image.Image {
	m.Calls++
	if m.ResizeFunc != nil {
		return m.ResizeFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Resizer = (*Resizer)(nil)
