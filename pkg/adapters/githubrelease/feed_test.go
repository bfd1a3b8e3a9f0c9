package githubrelease

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLatest(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{
		"tag_name": "v1.2.0",
		"html_url": "https://github.com/seunghoon4176/frame-capture/releases/tag/v1.2.0",
		"assets": []
	}`)

	rel, err := New(srv.URL, time.Second).Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if rel.Version != "1.2.0" {
		t.Errorf("expected version 1.2.0, got %q", rel.Version)
	}
	if rel.URL != "https://github.com/seunghoon4176/frame-capture/releases/tag/v1.2.0" {
		t.Errorf("unexpected URL %q", rel.URL)
	}
}

func TestLatest_TagWithoutPrefix(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"tag_name": "2.0.0"}`)

	rel, err := New(srv.URL, time.Second).Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if rel.Version != "2.0.0" {
		t.Errorf("expected version 2.0.0, got %q", rel.Version)
	}
	if rel.URL != "" {
		t.Errorf("expected empty URL, got %q", rel.URL)
	}
}

func TestLatest_MissingTag(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"message": "ok"}`)

	rel, err := New(srv.URL, time.Second).Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if rel.Version != "" {
		t.Errorf("expected empty version, got %q", rel.Version)
	}
}

func TestLatest_NotFound(t *testing.T) {
	srv := newServer(t, http.StatusNotFound, `{"message": "Not Found"}`)

	_, err := New(srv.URL, time.Second).Latest(context.Background())
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestLatest_InvalidJSON(t *testing.T) {
	srv := newServer(t, http.StatusOK, `<html>rate limited</html>`)

	if _, err := New(srv.URL, time.Second).Latest(context.Background()); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLatest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"tag_name": "v9.9.9"}`))
	}))
	defer srv.Close()

	start := time.Now()
	_, err := New(srv.URL, 50*time.Millisecond).Latest(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Errorf("request was not bounded by the timeout: %v", elapsed)
	}
}

func TestLatest_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("http://127.0.0.1:1/", time.Second).Latest(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	if f := New("http://example.invalid", 0); f.timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", f.timeout)
	}
}
