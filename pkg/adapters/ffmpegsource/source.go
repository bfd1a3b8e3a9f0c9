// Package ffmpegsource opens video files through the ffmpeg and ffprobe executables.
//
// MP4 and MOV files are probed in-process with mp4probe. Other containers,
// and ISO-BMFF files mp4probe cannot read, are probed with ffprobe. Frames
// are decoded by ffmpeg, selected by index and streamed back as PNG.
package ffmpegsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strings"
	"time"

	"github.com/user/framecap/pkg/adapters/mp4probe"
	"github.com/user/framecap/pkg/ports"
)

var (
	// ErrFFmpegNotFound is returned when the ffmpeg executable cannot be located.
	ErrFFmpegNotFound = errors.New("ffmpegsource: ffmpeg not found")

	// ErrFFprobeNotFound is returned when the ffprobe executable cannot be located.
	ErrFFprobeNotFound = errors.New("ffmpegsource: ffprobe not found")

	// ErrNotAFile is returned when the path is missing or is not a regular file.
	ErrNotAFile = errors.New("ffmpegsource: not a regular file")

	// ErrNoFrame is returned when ffmpeg produced no image for the selected index.
	ErrNoFrame = errors.New("ffmpegsource: no frame decoded")

	// ErrClosed is returned when a closed source is used.
	ErrClosed = errors.New("ffmpegsource: source closed")
)

// Options configures executable lookup and process limits.
type Options struct {
	FFmpegPath  string        // Custom ffmpeg path; PATH is searched when empty
	FFprobePath string        // Custom ffprobe path; PATH is searched when empty
	Timeout     time.Duration // Limit for each ffmpeg/ffprobe run; 0 means none
}

// Opener implements ports.VideoOpener.
type Opener struct {
	fs     ports.FileSystem
	logger ports.Logger
	opts   Options
}

// New creates a new Opener.
func New(fs ports.FileSystem, logger ports.Logger, opts Options) *Opener {
	return &Opener{
		fs:     fs,
		logger: logger.WithComponent("ffmpeg"),
		opts:   opts,
	}
}

// Open probes path and returns a source positioned on frame 0.
func (o *Opener) Open(ctx context.Context, path string) (ports.VideoSource, error) {
	ok, err := o.fs.IsRegular(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	ffmpeg, err := findExecutable("ffmpeg", o.opts.FFmpegPath, ErrFFmpegNotFound)
	if err != nil {
		return nil, err
	}

	info, err := o.probe(ctx, path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Probed %s: codec %s, %.3f fps, %d frames, %dx%d",
		path, info.Codec, info.FPS, info.FrameCount, info.Width, info.Height)

	return &Source{
		ffmpeg:  ffmpeg,
		path:    path,
		info:    info,
		timeout: o.opts.Timeout,
		logger:  o.logger,
	}, nil
}

func (o *Opener) probe(ctx context.Context, path string) (StreamInfo, error) {
	if mp4probe.Handles(path) {
		mi, err := mp4probe.ProbeFile(path)
		if err == nil && mi.FrameCount > 0 && mi.FPS > 0 {
			return StreamInfo{
				Codec:      mi.Codec,
				FPS:        mi.FPS,
				FrameCount: mi.FrameCount,
				Width:      mi.Width,
				Height:     mi.Height,
			}, nil
		}
		o.logger.Debug("In-process probe of %s unavailable (%v), falling back to ffprobe", path, err)
	}

	ffprobe, err := findExecutable("ffprobe", o.opts.FFprobePath, ErrFFprobeNotFound)
	if err != nil {
		return StreamInfo{}, err
	}

	ctx, cancel := withTimeout(ctx, o.opts.Timeout)
	defer cancel()
	return runProbe(ctx, ffprobe, path)
}

var _ ports.VideoOpener = (*Opener)(nil)

// Source implements ports.VideoSource. It holds no process between calls:
// each ReadFrame runs one ffmpeg invocation.
type Source struct {
	ffmpeg   string
	path     string
	info     StreamInfo
	position int
	closed   bool
	timeout  time.Duration
	logger   ports.Logger
}

func (s *Source) FPS() float64 { return s.info.FPS }

func (s *Source) FrameCount() int { return s.info.FrameCount }

func (s *Source) Width() int { return s.info.Width }

func (s *Source) Height() int { return s.info.Height }

// Info returns the probed stream description.
func (s *Source) Info() StreamInfo { return s.info }

// Seek sets the index decoded by the next ReadFrame.
func (s *Source) Seek(index int) error {
	if s.closed {
		return ErrClosed
	}
	if index < 0 {
		return fmt.Errorf("negative frame index %d", index)
	}
	s.position = index
	return nil
}

// ReadFrame decodes the frame at the current position.
func (s *Source) ReadFrame(ctx context.Context) (image.Image, error) {
	if s.closed {
		return nil, ErrClosed
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.ffmpeg, frameArgs(s.path, s.position)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Debug("Decoding frame %d of %s", s.position, s.path)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("ffmpeg decode failed: %w\nstderr: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%w: index %d", ErrNoFrame, s.position)
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// Close marks the source closed. Further calls fail with ErrClosed.
func (s *Source) Close() error {
	s.closed = true
	return nil
}

// frameArgs builds an ffmpeg command line that writes frame index of path
// to stdout as a single PNG.
func frameArgs(path string, index int) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-i", path,
		"-map", "0:v:0",
		"-vf", fmt.Sprintf(`select=eq(n\,%d)`, index),
		"-vsync", "0",
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

var _ ports.VideoSource = (*Source)(nil)
