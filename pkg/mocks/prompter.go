package mocks

import (
	"github.com/user/framecap/pkg/ports"
)

// Notice records one notification shown through the Prompter.
type Notice struct {
	Kind  string // "info", "warn", "error" or "confirm"
	Title string
	Msg   string
}

// Prompter is a mock implementation of ports.Prompter.
type Prompter struct {
	// Answer is returned by Confirm.
	Answer     bool
	OpenURLErr error

	Notices []Notice
	Opened  []string
}

func (m *Prompter) Info(title, msg string) {
	m.Notices = append(m.Notices, Notice{Kind: "info", Title: title, Msg: msg})
}

func (m *Prompter) Warn(title, msg string) {
	m.Notices = append(m.Notices, Notice{Kind: "warn", Title: title, Msg: msg})
}

func (m *Prompter) Error(title, msg string) {
	m.Notices = append(m.Notices, Notice{Kind: "error", Title: title, Msg: msg})
}

func (m *Prompter) Confirm(title, msg string) bool {
	m.Notices = append(m.Notices, Notice{Kind: "confirm", Title: title, Msg: msg})
	return m.Answer
}

func (m *Prompter) OpenURL(url string) error {
	m.Opened = append(m.Opened, url)
	return m.OpenURLErr
}

// Count returns the number of notices of the given kind.
func (m *Prompter) Count(kind string) int {
	n := 0
	for _, notice := range m.Notices {
		if notice.Kind == kind {
			n++
		}
	}
	return n
}

var _ ports.Prompter = (*Prompter)(nil)
