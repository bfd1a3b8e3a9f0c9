package ports

import (
	"context"
	"image"
)

// VideoOpener opens video containers for frame access.
type VideoOpener interface {
	// Open opens the container at path and probes its video stream.
	// The returned source must be released with Close. On a nil error the
	// source is non-nil; implementations must not return a typed nil pointer.
	Open(ctx context.Context, path string) (VideoSource, error)
}

// VideoSource is an open handle on a single video stream.
type VideoSource interface {
	// FPS returns the frame rate in frames per second.
	FPS() float64

	// FrameCount returns the total number of frames in the stream.
	FrameCount() int

	// Width returns the native frame width in pixels.
	Width() int

	// Height returns the native frame height in pixels.
	Height() int

	// Seek positions the source on the zero-based frame index.
	Seek(index int) error

	// ReadFrame decodes the frame at the current position.
	ReadFrame(ctx context.Context) (image.Image, error)

	// Close releases decoder resources.
	Close() error
}
