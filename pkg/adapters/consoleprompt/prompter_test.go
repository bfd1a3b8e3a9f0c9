package consoleprompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input  string
		expect bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"  YES  \n", true},
		{"네\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"y", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out, true)

			if got := p.Confirm("Update check", "Open the release page?"); got != tt.expect {
				t.Errorf("Confirm with input %q = %v, want %v", tt.input, got, tt.expect)
			}
			if !strings.Contains(out.String(), "Open the release page?") {
				t.Errorf("expected question in output, got %q", out.String())
			}
		})
	}
}

func TestConfirm_NonInteractive(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("y\n")
	p := New(in, &out, false)

	if p.Confirm("Update check", "Open the release page?") {
		t.Error("expected no when not interactive")
	}
	if in.Len() != len("y\n") {
		t.Error("expected input to be left unread")
	}
}

func TestNotices(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out, false)

	p.Info("Version", "1.0.1")
	p.Warn("Error", "Select a video file.")
	p.Error("Error", "Capture failed")

	got := out.String()
	for _, want := range []string{"[Version] 1.0.1", "[Error] Select a video file.", "[Error] Capture failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Error("expected no colour codes when colour is disabled")
	}
}

func TestOpenURL(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out, false)

	if err := p.OpenURL("https://example.com/releases"); err != nil {
		t.Fatalf("OpenURL failed: %v", err)
	}
	if !strings.Contains(out.String(), "https://example.com/releases") {
		t.Errorf("expected URL in output, got %q", out.String())
	}
}

func TestOpenURL_LaunchesBrowser(t *testing.T) {
	var out bytes.Buffer
	var launched []string
	p := New(strings.NewReader(""), &out, true, WithBrowser(func(url string) error {
		launched = append(launched, url)
		return nil
	}))

	if err := p.OpenURL("https://open.kakao.com/o/sObJJxJh"); err != nil {
		t.Fatalf("OpenURL failed: %v", err)
	}
	if len(launched) != 1 || launched[0] != "https://open.kakao.com/o/sObJJxJh" {
		t.Errorf("expected browser launched once with the URL, got %v", launched)
	}
	if !strings.Contains(out.String(), "https://open.kakao.com/o/sObJJxJh") {
		t.Errorf("expected URL in output, got %q", out.String())
	}
}

func TestOpenURL_BrowserFailureStillPrints(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out, true, WithBrowser(func(url string) error {
		return errors.New("xdg-open not found")
	}))

	if err := p.OpenURL("https://example.com/releases"); err != nil {
		t.Fatalf("expected browser failure to be reported, not returned: %v", err)
	}
	if !strings.Contains(out.String(), "https://example.com/releases") {
		t.Errorf("expected URL in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "xdg-open not found") {
		t.Errorf("expected browser failure in output, got %q", out.String())
	}
}
