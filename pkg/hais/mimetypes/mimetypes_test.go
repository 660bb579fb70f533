package mimetypes

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/srv/docs/report.pdf", "application/pdf"},
		{"/srv/index.html", "text/html"},
		{"/srv/a.tar.txt", "text/plain"},
		{"/srv/favicon.ico", "image/x-icon"},
		{"/srv/photo.jpg", "image/jpeg"},
		{"/srv/photo.png", "image/png"},
		{"/srv/clip.IVF", "video/x-ivf"},
		{"/srv/clip.ivf", Default},
		{"/srv/README", Default},
		{"/srv/dir.d/README", Default},
		{"/srv/trailing.", Default},
	}

	for _, tt := range tests {
		if got := Lookup(tt.path); got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFirstEntryWins(t *testing.T) {
	for ext, want := range map[string]string{
		"eps": "application/x-ps",
		"ps":  "application/x-ps",
		"xls": "application/vnd.ms-excel",
		"rtf": "application/msword",
	} {
		if got, _ := ByExtension(ext); got != want {
			t.Errorf("ByExtension(%q) = %q, want %q", ext, got, want)
		}
	}
}

func TestExtension(t *testing.T) {
	if got := Extension("a/b.c/d.tar.gz"); got != "gz" {
		t.Errorf("Extension = %q, want %q", got, "gz")
	}
	if got := Extension("noext"); got != "noext" {
		t.Errorf("Extension = %q, want %q", got, "noext")
	}
}

func TestResolveSniffsUnknownExtensions(t *testing.T) {
	png := "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
	open := func() (io.Reader, error) { return strings.NewReader(png), nil }

	if got := Resolve("/srv/blob", true, open); got != "image/png" {
		t.Errorf("Resolve(sniff) = %q, want %q", got, "image/png")
	}
	if got := Resolve("/srv/blob", false, open); got != Default {
		t.Errorf("Resolve(no sniff) = %q, want %q", got, Default)
	}

	called := false
	known := func() (io.Reader, error) { called = true; return nil, nil }
	if got := Resolve("/srv/a.css", true, known); got != "text/css" {
		t.Errorf("Resolve(css) = %q, want %q", got, "text/css")
	}
	if called {
		t.Error("open called for a known extension")
	}

	failing := func() (io.Reader, error) { return nil, errors.New("boom") }
	if got := Resolve("/srv/blob", true, failing); got != Default {
		t.Errorf("Resolve(open error) = %q, want %q", got, Default)
	}
}
