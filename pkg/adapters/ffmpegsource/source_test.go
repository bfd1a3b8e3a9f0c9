package ffmpegsource

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/framecap/pkg/adapters/imaging"
	"github.com/user/framecap/pkg/adapters/osfilesystem"
	"github.com/user/framecap/pkg/extractor"
	"github.com/user/framecap/pkg/mocks"
	"github.com/user/framecap/pkg/preset"
)

// makeClip renders a lavfi test pattern into name, skipping the test when
// ffmpeg is missing or cannot produce the container.
func makeClip(t *testing.T, name string, args ...string) string {
	t.Helper()
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		t.Skip("ffmpeg not available")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}

	path := filepath.Join(t.TempDir(), name)
	cmdArgs := append([]string{"-v", "error", "-y",
		"-f", "lavfi", "-i", "testsrc=size=320x240:rate=25", "-t", "2"}, args...)
	cmdArgs = append(cmdArgs, path)
	if out, err := exec.Command(ffmpeg, cmdArgs...).CombinedOutput(); err != nil {
		t.Skipf("ffmpeg could not create %s: %v\n%s", name, err, out)
	}
	return path
}

func TestFrameArgs(t *testing.T) {
	args := strings.Join(frameArgs("in.mkv", 42), " ")
	for _, want := range []string{
		"-i in.mkv",
		`select=eq(n\,42)`,
		"-frames:v 1",
		"-f image2pipe",
		"-vcodec png",
	} {
		if !strings.Contains(args, want) {
			t.Errorf("expected %q in args: %s", want, args)
		}
	}
	if !strings.HasSuffix(args, " -") {
		t.Errorf("expected output to stdout, got: %s", args)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	opener := New(osfilesystem.New(), mocks.NewLogger(), Options{})

	_, err := opener.Open(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"))
	if !errors.Is(err, ErrNotAFile) {
		t.Errorf("expected ErrNotAFile, got %v", err)
	}
}

func TestOpen_Directory(t *testing.T) {
	opener := New(osfilesystem.New(), mocks.NewLogger(), Options{})

	if _, err := opener.Open(context.Background(), t.TempDir()); !errors.Is(err, ErrNotAFile) {
		t.Errorf("expected ErrNotAFile, got %v", err)
	}
}

func TestOpen_CustomFFmpegMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	opener := New(osfilesystem.New(), mocks.NewLogger(), Options{
		FFmpegPath: filepath.Join(dir, "no-ffmpeg"),
	})
	if _, err := opener.Open(context.Background(), path); !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}
}

func TestOpen_NotAVideo(t *testing.T) {
	if !Available(Options{}) {
		t.Skip("ffmpeg not available")
	}
	path := filepath.Join(t.TempDir(), "notes.mkv")
	if err := os.WriteFile(path, []byte("This is not a video file"), 0o644); err != nil {
		t.Fatal(err)
	}

	opener := New(osfilesystem.New(), mocks.NewLogger(), Options{})
	if _, err := opener.Open(context.Background(), path); err == nil {
		t.Error("expected error for non-video file")
	}
}

func TestSource_ClosedAndNegativeSeek(t *testing.T) {
	src := &Source{logger: mocks.NewLogger()}

	if err := src.Seek(-1); err == nil {
		t.Error("expected error for negative index")
	}
	if err := src.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := src.Seek(0); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from Seek, got %v", err)
	}
	if _, err := src.ReadFrame(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from ReadFrame, got %v", err)
	}
}

func TestSource_ReadFrame(t *testing.T) {
	clips := map[string][]string{
		"clip.mp4": {"-pix_fmt", "yuv420p"},
		"clip.mkv": {"-c:v", "ffv1"},
	}

	for name, args := range clips {
		t.Run(name, func(t *testing.T) {
			path := makeClip(t, name, args...)
			opener := New(osfilesystem.New(), mocks.NewLogger(), Options{Timeout: 30 * time.Second})

			src, err := opener.Open(context.Background(), path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer src.Close()

			if src.FrameCount() != 50 {
				t.Errorf("expected 50 frames, got %d", src.FrameCount())
			}
			if src.Width() != 320 || src.Height() != 240 {
				t.Errorf("expected 320x240, got %dx%d", src.Width(), src.Height())
			}

			if err := src.Seek(30); err != nil {
				t.Fatalf("Seek failed: %v", err)
			}
			img, err := src.ReadFrame(context.Background())
			if err != nil {
				t.Fatalf("ReadFrame failed: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
				t.Errorf("expected 320x240 frame, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestSource_ReadFramePastEnd(t *testing.T) {
	path := makeClip(t, "short.mkv", "-c:v", "ffv1")
	opener := New(osfilesystem.New(), mocks.NewLogger(), Options{})

	src, err := opener.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if err := src.Seek(10000); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	// ffmpeg either exits cleanly with empty output or reports the empty stream.
	if _, err := src.ReadFrame(context.Background()); err == nil {
		t.Error("expected error reading past the last frame")
	}
}

func TestExtract_EndToEnd(t *testing.T) {
	path := makeClip(t, "clip.mkv", "-c:v", "ffv1")

	opener := New(osfilesystem.New(), mocks.NewLogger(), Options{})
	ext := extractor.New(opener, imaging.NewResizer(), mocks.NewLogger())

	frame, err := ext.Extract(context.Background(), path, 1.0, preset.SD)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if frame.Index != 25 {
		t.Errorf("expected frame 25, got %d", frame.Index)
	}
	if b := frame.Image.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("expected 640x480, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestExtract_NonVideoIsUnreadable(t *testing.T) {
	if !Available(Options{}) {
		t.Skip("ffmpeg not available")
	}
	path := filepath.Join(t.TempDir(), "notes.mp4")
	if err := os.WriteFile(path, []byte("This is not a video file"), 0o644); err != nil {
		t.Fatal(err)
	}

	opener := New(osfilesystem.New(), mocks.NewLogger(), Options{})
	ext := extractor.New(opener, imaging.NewResizer(), mocks.NewLogger())

	_, err := ext.Extract(context.Background(), path, 1.0, preset.HD)
	if !errors.Is(err, extractor.ErrSourceUnreadable) {
		t.Errorf("expected ErrSourceUnreadable, got %v", err)
	}
}
