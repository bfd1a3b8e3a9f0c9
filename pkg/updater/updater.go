// Package updater compares the running version against a release feed and
// offers to open the release page when a newer version is published.
//
// One Check implementation serves both reporting modes. ModeSilent runs at
// startup and only speaks up when an update exists. ModeInteractive runs on
// user request and reports every outcome.
package updater

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/framecap/pkg/ports"
)

// Mode selects how much of the outcome is reported to the user.
type Mode int

const (
	// ModeSilent reports only an available update.
	ModeSilent Mode = iota
	// ModeInteractive reports up-to-date, update available and failures.
	ModeInteractive
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "silent"
}

// DefaultReleasePageURL is opened when the feed does not name a release page.
const DefaultReleasePageURL = "https://github.com/seunghoon4176/frame-capture/releases"

var (
	// ErrFeedUnavailable is returned when no release feed is configured.
	ErrFeedUnavailable = errors.New("updater: release feed unavailable")

	// ErrNoVersion is returned when the feed answers without a version.
	ErrNoVersion = errors.New("updater: latest version not found")
)

// Config holds the injected version and fallbacks.
type Config struct {
	CurrentVersion string        // Running version, with or without a leading "v"
	ReleasePageURL string        // Fallback page when the feed has no URL
	Timeout        time.Duration // Bound for the feed request; 0 leaves the context as is
}

// Result describes what a check found.
type Result struct {
	Current         string
	Latest          string
	URL             string
	UpdateAvailable bool
	Opened          bool // The user accepted and the release page was handed over
}

// Checker performs update checks.
type Checker struct {
	feed     ports.ReleaseFeed
	prompter ports.Prompter
	logger   ports.Logger
	config   Config
}

// New creates a Checker. feed may be nil when update checking is disabled.
func New(feed ports.ReleaseFeed, prompter ports.Prompter, logger ports.Logger, cfg Config) *Checker {
	if cfg.ReleasePageURL == "" {
		cfg.ReleasePageURL = DefaultReleasePageURL
	}
	return &Checker{
		feed:     feed,
		prompter: prompter,
		logger:   logger.WithComponent("updater"),
		config:   cfg,
	}
}

// Check queries the feed and reports the outcome according to mode.
// In silent mode a failed check is logged at debug level and nil is returned.
func (c *Checker) Check(ctx context.Context, mode Mode) (Result, error) {
	title := l10n.T("Update check")
	current := trimVersion(c.config.CurrentVersion)
	result := Result{Current: current}

	if c.feed == nil {
		if mode == ModeInteractive {
			c.prompter.Warn(title, l10n.T("Update checking is not available."))
			return result, ErrFeedUnavailable
		}
		return result, nil
	}

	release, err := c.fetch(ctx)
	if err != nil {
		if mode == ModeInteractive {
			c.prompter.Error(title, l10n.F("Failed to check for updates: %s", err))
			return result, err
		}
		c.logger.Debug("Silent update check failed: %v", err)
		return result, nil
	}

	result.Latest = release.Version
	result.URL = release.URL
	if result.URL == "" {
		result.URL = c.config.ReleasePageURL
	}

	if result.Latest == current {
		c.logger.Debug("Running the latest version v%s", current)
		if mode == ModeInteractive {
			c.prompter.Info(title, l10n.F("You are running the latest version. (v%s)", current))
		}
		return result, nil
	}

	result.UpdateAvailable = true
	msg := l10n.F("A new version is available! (current: v%s, latest: v%s)\nOpen the release page?", current, result.Latest)
	if !c.prompter.Confirm(title, msg) {
		return result, nil
	}

	if err := c.prompter.OpenURL(result.URL); err != nil {
		c.logger.Warn("Failed to open %s: %v", result.URL, err)
		return result, nil
	}
	result.Opened = true
	return result, nil
}

func (c *Checker) fetch(ctx context.Context) (ports.Release, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	release, err := c.feed.Latest(ctx)
	if err != nil {
		return ports.Release{}, err
	}
	release.Version = trimVersion(release.Version)
	if release.Version == "" {
		return ports.Release{}, ErrNoVersion
	}
	return release, nil
}

func trimVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}
