package http11

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseSimpleGET(t *testing.T) {
	req, err := ParseRequest([]byte("GET /docs/report.pdf HTTP/1.1\r\nHost: x\r\n\r\n"))
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}

	if req.Method != MethodGET {
		t.Errorf("Method = %q, want %q", req.Method, MethodGET)
	}
	if req.Target != "/docs/report.pdf" {
		t.Errorf("Target = %q, want %q", req.Target, "/docs/report.pdf")
	}
	if req.Proto != "HTTP/1.1" {
		t.Errorf("Proto = %q, want %q", req.Proto, "HTTP/1.1")
	}
	if req.HasRange() || req.IfModifiedSince != "" {
		t.Errorf("unexpected headers: %+v", req)
	}
}

func TestParsePOSTBehavesLikeGET(t *testing.T) {
	req, err := ParseRequest([]byte("POST /a HTTP/1.0\r\n\r\nbody"))
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Method != MethodPOST || req.Target != "/a" || req.Proto != "HTTP/1.0" {
		t.Errorf("got %+v", req)
	}
}

func TestParseStripsQueryAndFragment(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"GET /search?q=1 HTTP/1.1", "/search"},
		{"GET /page#top HTTP/1.1", "/page"},
		{"GET /a%20b?x HTTP/1.1", "/a%20b"},
	}
	for _, tt := range tests {
		req, err := ParseRequest([]byte(tt.line + "\r\n\r\n"))
		if err != nil {
			t.Errorf("ParseRequest(%q) failed: %v", tt.line, err)
			continue
		}
		if req.Target != tt.want {
			t.Errorf("Target = %q, want %q", req.Target, tt.want)
		}
	}
}

func TestParseHeadersCaseInsensitive(t *testing.T) {
	head := "GET /f HTTP/1.1\r\n" +
		"range:   bytes=0-9  \r\n" +
		"IF-MODIFIED-SINCE: Fri, 01 Jan 2021 00:00:00 GMT\r\n" +
		"Range: bytes=5-6\r\n" +
		"X-Broken-Line\r\n" +
		"\r\n" +
		"Range: ignored-after-blank-line\r\n"

	req, err := ParseRequest([]byte(head))
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Range != "bytes=0-9" {
		t.Errorf("Range = %q, want %q", req.Range, "bytes=0-9")
	}
	if req.IfModifiedSince != "Fri, 01 Jan 2021 00:00:00 GMT" {
		t.Errorf("IfModifiedSince = %q", req.IfModifiedSince)
	}
}

func TestParseBareLF(t *testing.T) {
	req, err := ParseRequest([]byte("GET /x HTTP/1.1\nRange: bytes=1-\n\n"))
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Target != "/x" || req.Range != "bytes=1-" {
		t.Errorf("got %+v", req)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		head string
		want error
	}{
		{"", ErrNoRequest},
		{"GARBAGE\r\n\r\n", ErrInvalidRequestLine},
		{" / HTTP/1.1\r\n\r\n", ErrInvalidRequestLine},
		{"GET  HTTP/1.1\r\n\r\n", ErrInvalidRequestLine},
		{"GET ?q=1 HTTP/1.1\r\n\r\n", ErrEmptyTarget},
		{"GET \r\n\r\n", ErrEmptyTarget},
		{"GET /x\r\n\r\n", ErrInvalidRequestLine},
		{"GET /x FTP/1.0\r\n\r\n", ErrInvalidRequestLine},
	}
	for _, tt := range tests {
		if _, err := ParseRequest([]byte(tt.head)); !errors.Is(err, tt.want) {
			t.Errorf("ParseRequest(%q) error = %v, want %v", tt.head, err, tt.want)
		}
	}
}

func TestReadHeadStopsAtTerminator(t *testing.T) {
	r := &chunkReader{chunks: []string{"GET / HTTP/1.1\r\nHo", "st: a\r\n\r\n", "never read"}}
	buf := make([]byte, 18)

	head, err := ReadHead(r, buf, 0)
	if err != nil {
		t.Fatalf("ReadHead failed: %v", err)
	}
	if string(head) != "GET / HTTP/1.1\r\nHost: a\r\n\r\n" {
		t.Errorf("head = %q", head)
	}
	if r.reads != 2 {
		t.Errorf("reads = %d, want 2", r.reads)
	}
}

func TestReadHeadContinuesWhileBufferFills(t *testing.T) {
	long := "GET /" + strings.Repeat("a", 30) + " HTTP/1.1\r\nX: y\r\n\r\n"
	buf := make([]byte, 8)

	head, err := ReadHead(strings.NewReader(long), buf, 0)
	if err != nil {
		t.Fatalf("ReadHead failed: %v", err)
	}
	if string(head) != long {
		t.Errorf("head = %q, want %q", head, long)
	}
}

func TestReadHeadShortReadAfterRequestLine(t *testing.T) {
	// A short read that already holds a complete line ends the loop, as a
	// peer that stopped sending would.
	r := &chunkReader{chunks: []string{"GET /x HTTP/1.1\r\nRange: by", "tes=0-1\r\n\r\n"}}
	head, err := ReadHead(r, make([]byte, 4096), 0)
	if err != nil {
		t.Fatalf("ReadHead failed: %v", err)
	}
	if r.reads != 1 {
		t.Errorf("reads = %d, want 1", r.reads)
	}
	req, err := ParseRequest(head)
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Target != "/x" {
		t.Errorf("Target = %q", req.Target)
	}
}

func TestReadHeadEOF(t *testing.T) {
	if _, err := ReadHead(bytes.NewReader(nil), make([]byte, 16), 0); !errors.Is(err, ErrNoRequest) {
		t.Errorf("error = %v, want ErrNoRequest", err)
	}

	head, err := ReadHead(strings.NewReader("GET /x HTTP/1.1"), make([]byte, 4), 0)
	if err != nil {
		t.Fatalf("ReadHead failed: %v", err)
	}
	if string(head) != "GET /x HTTP/1.1" {
		t.Errorf("head = %q", head)
	}
}

func TestReadHeadLimit(t *testing.T) {
	r := io.MultiReader(strings.NewReader("GET /"), strings.NewReader(strings.Repeat("a", 100)))
	_, err := ReadHead(r, make([]byte, 5), 32)
	if !errors.Is(err, ErrRequestTooLarge) {
		t.Errorf("error = %v, want ErrRequestTooLarge", err)
	}
}
