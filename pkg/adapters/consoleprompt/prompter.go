// Package consoleprompt implements ports.Prompter on a terminal.
package consoleprompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/framecap/pkg/ports"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// Prompter writes notices to out and reads confirmations from in.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	color       bool
	browse      func(url string) error
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithBrowser makes OpenURL hand URLs to fn after printing them.
func WithBrowser(fn func(url string) error) Option {
	return func(p *Prompter) {
		p.browse = fn
	}
}

// New creates a Prompter. When interactive is false, Confirm never reads
// from in and always answers no.
func New(in io.Reader, out io.Writer, interactive bool, opts ...Option) *Prompter {
	p := &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTerminal creates a Prompter on stdin and stderr. When stdin is a
// terminal, confirmations are read and OpenURL also launches the system
// browser. Colour is enabled when stderr is a terminal.
func NewTerminal() *Prompter {
	var opts []Option
	interactive := isTerminal(os.Stdin)
	if interactive {
		opts = append(opts, WithBrowser(openBrowser))
	}
	p := New(os.Stdin, os.Stderr, interactive, opts...)
	p.color = isTerminal(os.Stderr)
	return p
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Prompter) Info(title, msg string) {
	p.notice(infoStyle, title, msg)
}

func (p *Prompter) Warn(title, msg string) {
	p.notice(warnStyle, title, msg)
}

func (p *Prompter) Error(title, msg string) {
	p.notice(errorStyle, title, msg)
}

// Confirm prints the question and reads one line. Only yes answers
// ("y", "yes", "예", "네") return true; EOF and read errors count as no.
func (p *Prompter) Confirm(title, msg string) bool {
	p.notice(infoStyle, title, msg)
	if !p.interactive {
		fmt.Fprintln(p.out, l10n.T("Not running in a terminal, answering no."))
		return false
	}

	fmt.Fprint(p.out, "[y/N]: ")
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	return isYes(line)
}

// OpenURL prints url and, when a browser is configured, opens it there.
// The URL is already on screen when the browser fails to start, so that
// failure is reported as a notice rather than returned.
func (p *Prompter) OpenURL(url string) error {
	if _, err := fmt.Fprintln(p.out, l10n.F("Open this link: %s", url)); err != nil {
		return err
	}
	if p.browse == nil {
		return nil
	}
	if err := p.browse(url); err != nil {
		fmt.Fprintln(p.out, l10n.F("Could not open a browser: %v", err))
	}
	return nil
}

func (p *Prompter) notice(style lipgloss.Style, title, msg string) {
	heading := "[" + title + "]"
	if p.color {
		heading = style.Render(heading)
	}
	fmt.Fprintln(p.out, heading, msg)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "예", "네", "ㅇ":
		return true
	}
	return false
}

var _ ports.Prompter = (*Prompter)(nil)
