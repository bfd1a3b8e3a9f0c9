package ffmpegsource

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// commonDirs are searched when an executable is not on PATH.
func commonDirs() []string {
	if runtime.GOOS == "windows" {
		return []string{
			`C:\ffmpeg\bin`,
			`C:\Program Files\ffmpeg\bin`,
			`C:\Program Files (x86)\ffmpeg\bin`,
		}
	}
	return []string{
		"/usr/bin",
		"/usr/local/bin",
		"/opt/homebrew/bin",
		"/snap/bin",
	}
}

// findExecutable resolves name ("ffmpeg" or "ffprobe"). A non-empty custom
// path wins and must exist; otherwise PATH and then common install
// directories are searched. notFound is returned when nothing matches.
func findExecutable(name, custom string, notFound error) (string, error) {
	if custom != "" {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", notFound, custom)
	}

	execName := name
	if runtime.GOOS == "windows" {
		execName += ".exe"
	}

	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	for _, dir := range commonDirs() {
		p := filepath.Join(dir, execName)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w. %s", notFound, installHint())
}

func installHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or dnf install ffmpeg (Fedora)"
	default:
		return "Download from https://ffmpeg.org/download.html and add it to PATH"
	}
}

// Available reports whether both ffmpeg and ffprobe can be found.
func Available(opts Options) bool {
	if _, err := findExecutable("ffmpeg", opts.FFmpegPath, ErrFFmpegNotFound); err != nil {
		return false
	}
	_, err := findExecutable("ffprobe", opts.FFprobePath, ErrFFprobeNotFound)
	return err == nil
}
