// Package extractor decodes a single frame of a video at a timestamp.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"reflect"

	"github.com/user/framecap/pkg/ports"
	"github.com/user/framecap/pkg/preset"
)

var (
	// ErrSourceUnreadable is returned when the container cannot be opened
	// or reports no decodable frames.
	ErrSourceUnreadable = errors.New("extractor: source unreadable")

	// ErrFrameDecodeFailed is returned when the selected frame cannot be read.
	ErrFrameDecodeFailed = errors.New("extractor: frame decode failed")

	// ErrInvalidTime is returned for negative, NaN or infinite timestamps.
	ErrInvalidTime = errors.New("extractor: invalid time")
)

// Frame is a decoded, optionally resized frame.
type Frame struct {
	Image       image.Image
	Index       int
	FPS         float64
	TotalFrames int
	Preset      preset.Preset
}

// Extractor reads single frames through a VideoOpener.
type Extractor struct {
	opener  ports.VideoOpener
	resizer ports.Resizer
	logger  ports.Logger
}

// New creates a new Extractor.
func New(opener ports.VideoOpener, resizer ports.Resizer, logger ports.Logger) *Extractor {
	return &Extractor{
		opener:  opener,
		resizer: resizer,
		logger:  logger.WithComponent("extractor"),
	}
}

// FrameIndex converts a timestamp to a zero-based frame index.
// The product is rounded half to even and clamped to the last frame,
// so timestamps past the end select the final frame instead of failing.
// The clamp happens before the conversion to int, so products too large
// for an int still land on the final frame.
func FrameIndex(timeSeconds, fps float64, totalFrames int) int {
	if requested := math.RoundToEven(timeSeconds * fps); requested < float64(totalFrames) {
		return int(requested)
	}
	return totalFrames - 1
}

// Extract decodes the frame at timeSeconds from the video at sourcePath and
// resizes it to the preset's dimensions when the preset has a fixed size.
func (e *Extractor) Extract(ctx context.Context, sourcePath string, timeSeconds float64, p preset.Preset) (Frame, error) {
	if timeSeconds < 0 || math.IsNaN(timeSeconds) || math.IsInf(timeSeconds, 0) {
		return Frame{}, fmt.Errorf("%w: %v", ErrInvalidTime, timeSeconds)
	}

	var frame Frame
	err := withSource(ctx, e.opener, sourcePath, func(src ports.VideoSource) error {
		fps := src.FPS()
		total := src.FrameCount()
		e.logger.Debug("Opened %s: %.3f fps, %d frames, %dx%d", sourcePath, fps, total, src.Width(), src.Height())

		if total <= 0 {
			return fmt.Errorf("%w: %s has no frames", ErrSourceUnreadable, sourcePath)
		}
		if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
			return fmt.Errorf("%w: %s reports frame rate %v", ErrSourceUnreadable, sourcePath, fps)
		}

		index := FrameIndex(timeSeconds, fps, total)
		if requested := math.RoundToEven(timeSeconds * fps); requested >= float64(total) {
			e.logger.Debug("Frame %g is past the end, using last frame %d", requested, index)
		}

		if err := src.Seek(index); err != nil {
			return fmt.Errorf("%w: seek to frame %d: %w", ErrFrameDecodeFailed, index, err)
		}
		img, err := src.ReadFrame(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("%w: frame %d: %w", ErrFrameDecodeFailed, index, err)
		}
		if img == nil {
			return fmt.Errorf("%w: frame %d: no image returned", ErrFrameDecodeFailed, index)
		}
		e.logger.Debug("Decoded frame %d", index)

		if size, ok := p.Size(); ok {
			img = e.resizer.Resize(img, size.Width, size.Height)
			e.logger.Debug("Resized to %dx%d (%s)", size.Width, size.Height, p)
		}

		frame = Frame{
			Image:       img,
			Index:       index,
			FPS:         fps,
			TotalFrames: total,
			Preset:      p,
		}
		return nil
	})
	if err != nil {
		return Frame{}, err
	}
	return frame, nil
}

// withSource opens path, passes the source to fn and releases it on every
// return path, including panics unwinding through fn.
func withSource(ctx context.Context, opener ports.VideoOpener, path string, fn func(ports.VideoSource) error) (err error) {
	src, err := opener.Open(ctx, path)
	if err != nil {
		if errors.Is(err, ErrSourceUnreadable) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}
	if isNilSource(src) {
		return fmt.Errorf("%w: %s", ErrSourceUnreadable, path)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close source: %w", cerr)
		}
	}()
	return fn(src)
}

// isNilSource reports whether src is nil, including a nil pointer stored in
// a non-nil interface.
func isNilSource(src ports.VideoSource) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
