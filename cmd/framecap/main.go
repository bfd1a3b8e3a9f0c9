// Package main provides the CLI entry point for framecap.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/ideamans/go-l10n"

	"github.com/user/framecap/pkg/adapters/consoleprompt"
	"github.com/user/framecap/pkg/adapters/ffmpegsource"
	"github.com/user/framecap/pkg/adapters/imaging"
	"github.com/user/framecap/pkg/adapters/logger"
	"github.com/user/framecap/pkg/adapters/osfilesystem"
	"github.com/user/framecap/pkg/config"
	"github.com/user/framecap/pkg/exporter"
	"github.com/user/framecap/pkg/extractor"
	"github.com/user/framecap/pkg/ports"
	"github.com/user/framecap/pkg/preset"
	"github.com/user/framecap/pkg/updater"
)

// Globals holds flags shared by every subcommand.
type Globals struct {
	Config    string `short:"c" type:"path" help:"Path to the YAML configuration file."`
	LogLevel  string `short:"l" help:"Log level (debug, info, warn, error). Overrides the configuration file."`
	LogFormat string `help:"Log format (text or json). Overrides the configuration file."`
	Quiet     bool   `short:"Q" help:"Suppress all log output."`
}

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Globals

	Export      ExportCmd      `cmd:"" help:"Export one video frame as a PNG image."`
	CheckUpdate CheckUpdateCmd `cmd:"" name:"check-update" help:"Check whether a newer version is available."`
	Presets     PresetsCmd     `cmd:"" help:"List the resolution presets."`
	Version     VersionCmd     `cmd:"" help:"Show version information."`
	Contact     ContactCmd     `cmd:"" help:"Open the developer contact page."`
}

// ExportCmd defines the export subcommand.
type ExportCmd struct {
	Source string `arg:"" type:"path" help:"Video file (mp4, avi, mov, mkv)."`
	Time   string `short:"t" required:"" help:"Time of the frame in seconds, e.g. 4.15."`

	Output string `short:"o" help:"Output file. The name is sanitized and always ends in .png (default: frame.png in the output directory)."`
	Preset string `short:"p" help:"Resolution preset (SD, HD, FHD, QHD, 4K, 8K, Original). Overrides the configuration file."`

	NoUpdateCheck bool `help:"Skip the update check after exporting."`
}

// CheckUpdateCmd checks the release feed interactively.
type CheckUpdateCmd struct{}

// PresetsCmd lists resolution presets.
type PresetsCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

// ContactCmd opens the developer contact page.
type ContactCmd struct{}

var version = "1.0.1"

const contactURL = "https://open.kakao.com/o/sObJJxJh"

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("86")).
	Bold(true)

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framecap"),
		kong.Description(l10n.T("Export a single video frame as a PNG image.")),
		kong.UsageOnError(),
		kong.PostBuild(translateHelp),
	)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// translateHelp replaces every help text in the command model with its translation.
func translateHelp(k *kong.Kong) error {
	var walk func(n *kong.Node)
	walk = func(n *kong.Node) {
		n.Help = l10n.T(n.Help)
		for _, f := range n.Flags {
			f.Help = l10n.T(f.Help)
		}
		for _, p := range n.Positional {
			p.Help = l10n.T(p.Help)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(k.Model.Node)
	return nil
}

// load reads the configuration and applies flag overrides.
func (g *Globals) load() (config.Config, ports.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return cfg, nil, fmt.Errorf("%s: %w", l10n.F("Failed to load configuration %s", g.Config), err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.LogFormat = g.LogFormat
	}

	var log ports.Logger
	switch {
	case g.Quiet:
		log = logger.NewNoop()
	case cfg.LogFormat == "json":
		log = logger.NewJSON(cfg.Level(), os.Stderr)
	case cfg.LogFormat == "" || cfg.LogFormat == "text":
		log = logger.NewConsole(cfg.Level())
	default:
		return cfg, nil, fmt.Errorf("%s: %q", l10n.T("Unknown log format"), cfg.LogFormat)
	}
	return cfg, log, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func newChecker(cfg config.Config, log ports.Logger) *updater.Checker {
	return updater.New(cfg.ReleaseFeed(), consoleprompt.NewTerminal(), log, cfg.ToUpdaterConfig(version))
}

// Run executes the export command.
func (cmd *ExportCmd) Run(g *Globals) error {
	cfg, log, err := g.load()
	if err != nil {
		return err
	}

	req, err := cmd.request(cfg)
	if err != nil {
		return err
	}

	resizer, err := cfg.Resizer()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	opener := ffmpegsource.New(fs, log, cfg.ToSourceOptions())
	ext := extractor.New(opener, resizer, log)
	exp := exporter.New(ext, imaging.NewPNGWriter(fs), log, exporter.WithDefaultDir(cfg.OutputDir))

	result, err := exp.Export(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", l10n.T("Capture failed"), err)
	}
	fmt.Println(result.Path)

	if !cmd.NoUpdateCheck {
		newChecker(cfg, log).Check(ctx, updater.ModeSilent)
	}
	return nil
}

// request builds the export request from flags and configuration.
func (cmd *ExportCmd) request(cfg config.Config) (exporter.Request, error) {
	sec, err := exporter.ParseTime(cmd.Time)
	if err != nil {
		return exporter.Request{}, err
	}

	p := cfg.PresetValue()
	if cmd.Preset != "" {
		p = preset.Parse(cmd.Preset)
	}

	return exporter.Request{
		Source:      cmd.Source,
		TimeSeconds: sec,
		Preset:      p,
		Destination: cmd.Output,
	}, nil
}

// Run executes the check-update command.
func (cmd *CheckUpdateCmd) Run(g *Globals) error {
	cfg, log, err := g.load()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	_, err = newChecker(cfg, log).Check(ctx, updater.ModeInteractive)
	return err
}

// Run executes the presets command.
func (cmd *PresetsCmd) Run(g *Globals) error {
	printPresets(os.Stdout)
	return nil
}

func printPresets(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render(l10n.T("Resolution presets")))
	for _, p := range preset.All {
		size, ok := p.Size()
		if !ok {
			fmt.Fprintf(w, "  %-8s %s\n", p, l10n.T("source resolution"))
			continue
		}
		fmt.Fprintf(w, "  %-8s %dx%d\n", p, size.Width, size.Height)
	}
}

// Run executes the version command.
func (cmd *VersionCmd) Run(g *Globals) error {
	fmt.Println(l10n.F("framecap version %s", version))
	return nil
}

// Run executes the contact command.
func (cmd *ContactCmd) Run(g *Globals) error {
	return openContact(consoleprompt.NewTerminal())
}

func openContact(p ports.Prompter) error {
	p.Info(l10n.T("Contact"), l10n.T("Contact the developer"))
	return p.OpenURL(contactURL)
}
