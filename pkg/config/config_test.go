package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/framecap/pkg/ports"
	"github.com/user/framecap/pkg/preset"
	"github.com/user/framecap/pkg/updater"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "framecap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.PresetValue() != preset.FHD {
		t.Errorf("expected FHD preset, got %s", cfg.PresetValue())
	}
	if cfg.OutputDir != "." {
		t.Errorf("expected output dir '.', got %q", cfg.OutputDir)
	}
	if cfg.Level() != ports.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.Level())
	}
	if !cfg.Update.Enabled || cfg.Update.FeedURL != DefaultFeedURL {
		t.Errorf("unexpected update defaults: %+v", cfg.Update)
	}
	if cfg.Update.TimeoutSec != 5 {
		t.Errorf("expected 5s update timeout, got %d", cfg.Update.TimeoutSec)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
preset: hd
output_dir: captures
log_level: debug
update:
  enabled: false
  timeout_sec: 2
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("unexpected ffmpeg path %q", cfg.FFmpegPath)
	}
	if cfg.PresetValue() != preset.HD {
		t.Errorf("expected HD, got %s", cfg.PresetValue())
	}
	if cfg.OutputDir != "captures" {
		t.Errorf("unexpected output dir %q", cfg.OutputDir)
	}
	if cfg.Level() != ports.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.Level())
	}
	if cfg.Update.Enabled {
		t.Error("expected update checks disabled")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Update.FeedURL != DefaultFeedURL {
		t.Errorf("expected default feed URL, got %q", cfg.Update.FeedURL)
	}
	if cfg.DecodeTimeout != 60 {
		t.Errorf("expected default decode timeout, got %d", cfg.DecodeTimeout)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := writeConfig(t, "preset: [unterminated")

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad_MissingUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	if cfg, err := Load(""); err != nil || cfg != Defaults() {
		t.Errorf("expected defaults for empty path, got %+v, %v", cfg, err)
	}
}

func TestResizer(t *testing.T) {
	cfg := Defaults()
	if _, err := cfg.Resizer(); err != nil {
		t.Errorf("default resizer failed: %v", err)
	}

	cfg.Resample = "lanczos"
	if _, err := cfg.Resizer(); err != nil {
		t.Errorf("lanczos resizer failed: %v", err)
	}

	cfg.Resample = "sinc"
	if _, err := cfg.Resizer(); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestToSourceOptions(t *testing.T) {
	cfg := Defaults()
	cfg.FFprobePath = "/usr/local/bin/ffprobe"

	opts := cfg.ToSourceOptions()
	if opts.FFprobePath != "/usr/local/bin/ffprobe" {
		t.Errorf("unexpected ffprobe path %q", opts.FFprobePath)
	}
	if opts.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %v", opts.Timeout)
	}

	cfg.DecodeTimeout = 0
	if opts := cfg.ToSourceOptions(); opts.Timeout != 0 {
		t.Errorf("expected no timeout, got %v", opts.Timeout)
	}
}

func TestToUpdaterConfig(t *testing.T) {
	uc := Defaults().ToUpdaterConfig("1.0.1")

	if uc.CurrentVersion != "1.0.1" {
		t.Errorf("unexpected version %q", uc.CurrentVersion)
	}
	if uc.ReleasePageURL != updater.DefaultReleasePageURL {
		t.Errorf("unexpected release page %q", uc.ReleasePageURL)
	}
	if uc.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", uc.Timeout)
	}
}

func TestReleaseFeed(t *testing.T) {
	cfg := Defaults()
	if cfg.ReleaseFeed() == nil {
		t.Error("expected a feed when enabled")
	}

	cfg.Update.Enabled = false
	if cfg.ReleaseFeed() != nil {
		t.Error("expected no feed when disabled")
	}

	cfg.Update.Enabled = true
	cfg.Update.FeedURL = ""
	if cfg.ReleaseFeed() != nil {
		t.Error("expected no feed without a URL")
	}
}
