// Package githubrelease reads the latest published release from a
// GitHub-style "releases/latest" JSON endpoint.
package githubrelease

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/valyala/fasthttp"

	"github.com/user/framecap/pkg/ports"
)

// DefaultTimeout bounds a feed request when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// ErrUnexpectedStatus is returned for any non-200 response.
var ErrUnexpectedStatus = errors.New("githubrelease: unexpected status")

// Feed implements ports.ReleaseFeed over HTTP.
type Feed struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
}

// New creates a Feed for url. A non-positive timeout means DefaultTimeout.
func New(url string, timeout time.Duration) *Feed {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Feed{
		url:     url,
		timeout: timeout,
		client: &fasthttp.Client{
			Name:                "framecap-update-check",
			MaxResponseBodySize: 1 << 20,
		},
	}
}

// Latest fetches the newest release. The leading "v" of tag_name is trimmed.
// The request is bounded by the feed timeout or the context deadline,
// whichever comes first.
func (f *Feed) Latest(ctx context.Context) (ports.Release, error) {
	if err := ctx.Err(); err != nil {
		return ports.Release{}, err
	}

	deadline := time.Now().Add(f.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(f.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/vnd.github+json")

	if err := f.client.DoDeadline(req, resp, deadline); err != nil {
		return ports.Release{}, fmt.Errorf("fetch %s: %w", f.url, err)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return ports.Release{}, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, code, f.url)
	}

	return parseRelease(resp.Body())
}

// parseRelease extracts tag_name and html_url. Missing fields are left empty.
func parseRelease(body []byte) (ports.Release, error) {
	js, err := simplejson.NewJson(body)
	if err != nil {
		return ports.Release{}, fmt.Errorf("parse release: %w", err)
	}
	tag := strings.TrimSpace(js.Get("tag_name").MustString())
	return ports.Release{
		Version: strings.TrimPrefix(tag, "v"),
		URL:     js.Get("html_url").MustString(),
	}, nil
}

var _ ports.ReleaseFeed = (*Feed)(nil)
