package ports

import "context"

// Release describes the newest published version of the application.
type Release struct {
	Version string // Version without a leading "v"
	URL     string // Release page URL
}

// ReleaseFeed abstracts the remote release metadata endpoint.
type ReleaseFeed interface {
	// Latest fetches the most recent release.
	Latest(ctx context.Context) (Release, error)
}
