package ffmpegsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// StreamInfo describes the first video stream of a container.
type StreamInfo struct {
	Codec      string
	FPS        float64
	FrameCount int
	Width      int
	Height     int
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

type probeStream struct {
	CodecName    string `json:"codec_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
	NbFrames     string `json:"nb_frames"`
	Duration     string `json:"duration"`
}

// runProbe runs ffprobe on the first video stream of path.
func runProbe(ctx context.Context, ffprobe, path string) (StreamInfo, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_name,width,height,r_frame_rate,avg_frame_rate,nb_frames,duration:format=duration",
		"-of", "json",
		"--", path,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return StreamInfo{}, fmt.Errorf("ffprobe failed: %w\nstderr: %s", err, strings.TrimSpace(stderr.String()))
	}
	return parseProbeOutput(stdout.Bytes())
}

// parseProbeOutput reads ffprobe JSON. The frame rate is r_frame_rate, or
// avg_frame_rate when that is unset. The frame count is nb_frames when the
// container records it, otherwise duration * fps rounded.
func parseProbeOutput(data []byte) (StreamInfo, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return StreamInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if len(out.Streams) == 0 {
		return StreamInfo{}, fmt.Errorf("no video stream")
	}
	s := out.Streams[0]

	info := StreamInfo{
		Codec:  s.CodecName,
		Width:  s.Width,
		Height: s.Height,
		FPS:    parseRate(s.RFrameRate),
	}
	if info.FPS == 0 {
		info.FPS = parseRate(s.AvgFrameRate)
	}

	if n, err := strconv.Atoi(s.NbFrames); err == nil && n > 0 {
		info.FrameCount = n
		return info, nil
	}

	duration := parseSeconds(s.Duration)
	if duration == 0 {
		duration = parseSeconds(out.Format.Duration)
	}
	if duration > 0 && info.FPS > 0 {
		info.FrameCount = int(math.Round(duration * info.FPS))
	}
	return info, nil
}

// parseRate parses "num/den" or a plain number. Invalid input yields 0.
func parseRate(s string) float64 {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

func parseSeconds(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
