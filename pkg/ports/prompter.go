package ports

// Prompter abstracts user-facing notifications and confirmations.
// A desktop front end would back it with dialogs; the CLI uses the terminal.
type Prompter interface {
	// Info shows an informational notice.
	Info(title, msg string)

	// Warn shows a warning notice.
	Warn(title, msg string)

	// Error shows an error notice.
	Error(title, msg string)

	// Confirm asks a yes/no question and reports the answer.
	Confirm(title, msg string) bool

	// OpenURL hands a URL to the user.
	OpenURL(url string) error
}
