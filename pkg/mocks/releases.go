package mocks

import (
	"context"

	"github.com/user/framecap/pkg/ports"
)

// ReleaseFeed is a mock implementation of ports.ReleaseFeed.
type ReleaseFeed struct {
	Release ports.Release
	Err     error

	LatestFunc func(ctx context.Context) (ports.Release, error)
	Calls      int
}

func (m *ReleaseFeed) Latest(ctx context.Context) (ports.Release, error) {
	m.Calls++
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}
	return m.Release, m.Err
}

var _ ports.ReleaseFeed = (*ReleaseFeed)(nil)
