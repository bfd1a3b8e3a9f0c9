// Package mp4probe reads video stream properties from ISO-BMFF (MP4/MOV)
// containers without decoding any sample.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eyevinn/mp4ff/mp4"
)

var (
	// ErrNoVideoTrack is returned when the container has no usable video track.
	ErrNoVideoTrack = errors.New("mp4probe: no video track found")

	// ErrFragmented is returned for fragmented files, whose sample tables live in moof boxes.
	ErrFragmented = errors.New("mp4probe: fragmented file not supported")
)

// Info describes the first video track of a container.
type Info struct {
	Codec           string
	FPS             float64
	FrameCount      int
	Width           int
	Height          int
	DurationSeconds float64
}

// Extensions lists the file extensions handled by this package.
var Extensions = []string{".mp4", ".m4v", ".mov"}

// Handles reports whether path has an ISO-BMFF extension.
func Handles(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ProbeFile probes the container at path.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Probe(f)
}

// Probe probes a container from an io.ReadSeeker. The mdat payload is not read.
func Probe(r io.ReadSeeker) (Info, error) {
	file, err := mp4.DecodeFile(r, mp4.WithDecodeMode(mp4.DecModeLazyMdat))
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}
	if file.IsFragmented() {
		return Info{}, ErrFragmented
	}
	if file.Moov == nil {
		return Info{}, fmt.Errorf("%w: no moov box", ErrNoVideoTrack)
	}

	for _, trak := range file.Moov.Traks {
		info, err := probeTrack(trak)
		if errors.Is(err, ErrNoVideoTrack) {
			continue
		}
		return info, err
	}
	return Info{}, ErrNoVideoTrack
}

// probeTrack derives frame count and average frame rate from the stts table.
func probeTrack(trak *mp4.TrakBox) (Info, error) {
	if trak == nil || trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return Info{}, ErrNoVideoTrack
	}
	if trak.Mdia.Mdhd == nil || trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return Info{}, ErrNoVideoTrack
	}
	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stts == nil {
		return Info{}, fmt.Errorf("%w: missing stts", ErrNoVideoTrack)
	}

	timescale := trak.Mdia.Mdhd.Timescale
	if timescale == 0 {
		return Info{}, fmt.Errorf("zero timescale in mdhd")
	}

	var frames, duration uint64
	deltas := stbl.Stts.SampleTimeDelta
	for i, count := range stbl.Stts.SampleCount {
		frames += uint64(count)
		if i < len(deltas) {
			duration += uint64(count) * uint64(deltas[i])
		}
	}

	info := Info{
		Codec:      codecOf(stbl),
		FrameCount: int(frames),
	}
	if duration > 0 {
		info.DurationSeconds = float64(duration) / float64(timescale)
		info.FPS = float64(frames) / info.DurationSeconds
	}
	if stbl.Stsd != nil {
		for _, child := range stbl.Stsd.Children {
			if vse, ok := child.(*mp4.VisualSampleEntryBox); ok {
				info.Width = int(vse.Width)
				info.Height = int(vse.Height)
				break
			}
		}
	}
	return info, nil
}

func codecOf(stbl *mp4.StblBox) string {
	if stbl.Stsd == nil {
		return "unknown"
	}
	for _, child := range stbl.Stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			return "h264"
		case "hvc1", "hev1":
			return "hevc"
		case "av01":
			return "av1"
		case "vp09":
			return "vp9"
		case "mp4v":
			return "mpeg4"
		}
	}
	return "unknown"
}
