// Package exporter drives a single frame export: it extracts the frame,
// sanitizes the destination and writes a PNG.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/framecap/pkg/extractor"
	"github.com/user/framecap/pkg/ports"
	"github.com/user/framecap/pkg/preset"
)

var (
	// ErrInvalidTimeInput is returned when a timestamp entry is not a non-negative number.
	ErrInvalidTimeInput = errors.New("exporter: invalid time input")

	// ErrEncodeFailed is returned when the image file cannot be written.
	ErrEncodeFailed = errors.New("exporter: encode failed")

	// ErrNoSource is returned when no source video was given.
	ErrNoSource = errors.New("exporter: no source selected")
)

// SupportedExtensions lists the container extensions offered by the source picker.
var SupportedExtensions = []string{".mp4", ".avi", ".mov", ".mkv"}

// IsSupportedSource reports whether path has one of SupportedExtensions.
func IsSupportedSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FrameExtractor extracts one frame from a video.
type FrameExtractor interface {
	Extract(ctx context.Context, sourcePath string, timeSeconds float64, p preset.Preset) (extractor.Frame, error)
}

// Request describes one export action.
type Request struct {
	Source      string
	TimeSeconds float64
	Preset      preset.Preset
	Destination string // empty selects DefaultFilename in the default directory
}

// Result describes a written frame.
type Result struct {
	Path       string
	FrameIndex int
	Width      int
	Height     int
}

// Exporter writes single frames to PNG files.
type Exporter struct {
	extractor  FrameExtractor
	writer     ports.ImageWriter
	logger     ports.Logger
	defaultDir string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithDefaultDir sets the directory used when a request has no destination.
func WithDefaultDir(dir string) Option {
	return func(e *Exporter) {
		e.defaultDir = dir
	}
}

// New creates a new Exporter.
func New(ext FrameExtractor, writer ports.ImageWriter, logger ports.Logger, opts ...Option) *Exporter {
	e := &Exporter{
		extractor:  ext,
		writer:     writer,
		logger:     logger,
		defaultDir: ".",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export extracts the requested frame and writes it under the sanitized destination.
func (e *Exporter) Export(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Source) == "" {
		return Result{}, ErrNoSource
	}
	if !IsSupportedSource(req.Source) {
		e.logger.Warn("%s does not have a common video extension, trying anyway", req.Source)
	}

	frame, err := e.extractor.Extract(ctx, req.Source, req.TimeSeconds, req.Preset)
	if err != nil {
		return Result{}, err
	}

	dest := req.Destination
	if dest == "" {
		dest = filepath.Join(e.defaultDir, DefaultFilename)
	}
	path := Sanitize(dest)
	if path != dest {
		e.logger.Debug("Destination %s rewritten to %s", dest, path)
	}

	if err := e.writer.WriteImage(path, frame.Image); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrEncodeFailed, path, err)
	}

	b := frame.Image.Bounds()
	e.logger.Info("Frame %d saved to %s (%dx%d)", frame.Index, path, b.Dx(), b.Dy())

	return Result{
		Path:       path,
		FrameIndex: frame.Index,
		Width:      b.Dx(),
		Height:     b.Dy(),
	}, nil
}
