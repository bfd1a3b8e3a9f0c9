// Package config provides configuration loading and management.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/framecap/pkg/adapters/ffmpegsource"
	"github.com/user/framecap/pkg/adapters/githubrelease"
	"github.com/user/framecap/pkg/adapters/imaging"
	"github.com/user/framecap/pkg/ports"
	"github.com/user/framecap/pkg/preset"
	"github.com/user/framecap/pkg/updater"
)

// DefaultFeedURL is the release feed of the published application.
const DefaultFeedURL = "https://api.github.com/repos/seunghoon4176/frame-capture/releases/latest"

// Config represents the full configuration for framecap.
type Config struct {
	// Decoding
	FFmpegPath    string `yaml:"ffmpeg_path"`
	FFprobePath   string `yaml:"ffprobe_path"`
	DecodeTimeout int    `yaml:"decode_timeout_sec"`

	// Export
	Preset    string `yaml:"preset"`
	OutputDir string `yaml:"output_dir"`
	Resample  string `yaml:"resample"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	Update UpdateConfig `yaml:"update"`
}

// UpdateConfig represents release feed settings.
type UpdateConfig struct {
	Enabled    bool   `yaml:"enabled"`
	FeedURL    string `yaml:"feed_url"`
	ReleaseURL string `yaml:"release_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Decoding
		DecodeTimeout: 60,

		// Export
		Preset:    string(preset.Default),
		OutputDir: ".",
		Resample:  imaging.FilterCatmullRom,

		// Logging
		LogLevel:  "info",
		LogFormat: "text",

		Update: UpdateConfig{
			Enabled:    true,
			FeedURL:    DefaultFeedURL,
			ReleaseURL: updater.DefaultReleasePageURL,
			TimeoutSec: 5,
		},
	}
}

// LoadFromFile loads configuration from a YAML file over Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load is LoadFromFile, except that a missing file yields Defaults.
// An empty path also yields Defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	cfg, err := LoadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// PresetValue returns the configured preset. Unknown names mean Original.
func (c Config) PresetValue() preset.Preset {
	return preset.Parse(c.Preset)
}

// Level returns the configured log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// Resizer returns the Resizer for the configured resampling filter.
func (c Config) Resizer() (ports.Resizer, error) {
	return imaging.ResizerFor(c.Resample)
}

// ToSourceOptions converts Config to ffmpegsource.Options.
func (c Config) ToSourceOptions() ffmpegsource.Options {
	return ffmpegsource.Options{
		FFmpegPath:  c.FFmpegPath,
		FFprobePath: c.FFprobePath,
		Timeout:     seconds(c.DecodeTimeout),
	}
}

// ToUpdaterConfig converts Config to updater.Config for the running version.
func (c Config) ToUpdaterConfig(currentVersion string) updater.Config {
	return updater.Config{
		CurrentVersion: currentVersion,
		ReleasePageURL: c.Update.ReleaseURL,
		Timeout:        seconds(c.Update.TimeoutSec),
	}
}

// ReleaseFeed returns the configured feed, or nil when update checking is
// disabled or no feed URL is set.
func (c Config) ReleaseFeed() ports.ReleaseFeed {
	if !c.Update.Enabled || c.Update.FeedURL == "" {
		return nil
	}
	return githubrelease.New(c.Update.FeedURL, seconds(c.Update.TimeoutSec))
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
