package mocks

import (
	"context"
	"image"

	"github.com/user/framecap/pkg/ports"
)

// VideoOpener is a mock implementation of ports.VideoOpener.
type VideoOpener struct {
	OpenFunc func(ctx context.Context, path string) (ports.VideoSource, error)

	// Source is returned by Open when OpenFunc is nil.
	Source *VideoSource

	OpenedPaths []string
}

func (m *VideoOpener) Open(ctx context.Context, path string) (ports.VideoSource, error) {
	m.OpenedPaths = append(m.OpenedPaths, path)
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, path)
	}
	if m.Source == nil {
		return nil, nil
	}
	return m.Source, nil
}

// VideoSource is a mock implementation of ports.VideoSource.
// By default ReadFrame returns a blank RGBA frame of Width x Height.
type VideoSource struct {
	Rate   float64
	Frames int
	W, H   int

	SeekFunc      func(index int) error
	ReadFrameFunc func(ctx context.Context) (image.Image, error)

	// Recorded calls for verification
	SeekCalls  []int
	ReadCalls  int
	CloseCalls int
	position   int
}

// NewVideoSource creates a mock source with the given stream properties.
func NewVideoSource(fps float64, frames, width, height int) *VideoSource {
	return &VideoSource{Rate: fps, Frames: frames, W: width, H: height}
}

func (m *VideoSource) FPS() float64    { return m.Rate }
func (m *VideoSource) FrameCount() int { return m.Frames }
func (m *VideoSource) Width() int      { return m.W }
func (m *VideoSource) Height() int     { return m.H }

func (m *VideoSource) Seek(index int) error {
	m.SeekCalls = append(m.SeekCalls, index)
	if m.SeekFunc != nil {
		return m.SeekFunc(index)
	}
	m.position = index
	return nil
}

func (m *VideoSource) ReadFrame(ctx context.Context) (image.Image, error) {
	m.ReadCalls++
	if m.ReadFrameFunc != nil {
		return m.ReadFrameFunc(ctx)
	}
	return image.NewRGBA(image.Rect(0, 0, m.W, m.H)), nil
}

func (m *VideoSource) Close() error {
	m.CloseCalls++
	return nil
}

// Position returns the last index passed to Seek.
func (m *VideoSource) Position() int {
	return m.position
}

var (
	_ ports.VideoOpener = (*VideoOpener)(nil)
	_ ports.VideoSource = (*VideoSource)(nil)
)
