package server

import (
	"bufio"
	"context"
	"io"
	"log"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/valyala/fasthttp/fasthttputil"
)

// startServer runs a server for cfg on an in-memory listener until the test
// ends.
func startServer(t *testing.T, cfg Config) (*Server, *fasthttputil.InmemoryListener) {
	t.Helper()
	if cfg.ErrorLog == nil {
		cfg.ErrorLog = log.New(io.Discard, "", 0)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 2
	}

	srv := New(cfg)
	ln := fasthttputil.NewInmemoryListener()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Serve returned %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Serve did not return after cancel")
		}
	})
	return srv, ln
}

type dialer interface {
	Dial() (net.Conn, error)
}

// roundTrip sends raw on a fresh connection and returns everything the
// server wrote before closing.
func roundTrip(t *testing.T, ln dialer, raw string) string {
	t.Helper()
	c, err := ln.Dial()
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()
	c.SetDeadline(time.Now().Add(5 * time.Second))

	if _, err := io.WriteString(c, raw); err != nil {
		t.Fatalf("write request: %v", err)
	}
	b, err := io.ReadAll(c)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return string(b)
}

func get(target string, headers ...string) string {
	var sb strings.Builder
	sb.WriteString("GET " + target + " HTTP/1.1\r\nHost: localhost\r\n")
	for _, h := range headers {
		sb.WriteString(h + "\r\n")
	}
	sb.WriteString("\r\n")
	return sb.String()
}

// response is one parsed response from a raw stream.
type response struct {
	status int
	fields [][2]string
	header textproto.MIMEHeader
	body   string
}

// parseResponses splits raw into consecutive responses, using
// Content-Length to find each body.
func parseResponses(t *testing.T, raw string) []response {
	t.Helper()
	br := bufio.NewReader(strings.NewReader(raw))
	var out []response
	for {
		if _, err := br.Peek(1); err == io.EOF {
			return out
		}

		line, err := br.ReadString('\n')
		if err != nil {
			t.Fatalf("status line: %v in %q", err, raw)
		}
		parts := strings.SplitN(strings.TrimRight(line, "\r\n"), " ", 3)
		if len(parts) < 2 || parts[0] != "HTTP/1.1" {
			t.Fatalf("bad status line %q", line)
		}
		code, _ := strconv.Atoi(parts[1])

		r := response{status: code, header: textproto.MIMEHeader{}}
		for {
			l, err := br.ReadString('\n')
			if err != nil {
				t.Fatalf("header line: %v", err)
			}
			l = strings.TrimRight(l, "\r\n")
			if l == "" {
				break
			}
			name, value, _ := strings.Cut(l, ": ")
			r.fields = append(r.fields, [2]string{name, value})
			r.header.Add(name, value)
		}

		if cl := r.header.Get("Content-Length"); cl != "" {
			n, _ := strconv.Atoi(cl)
			body := make([]byte, n)
			if _, err := io.ReadFull(br, body); err != nil {
				t.Fatalf("body: %v", err)
			}
			r.body = string(body)
		}
		out = append(out, r)
	}
}

func parseOne(t *testing.T, raw string) response {
	t.Helper()
	rs := parseResponses(t, raw)
	if len(rs) != 1 {
		t.Fatalf("got %d responses, want 1:\n%s", len(rs), raw)
	}
	return rs[0]
}

func (r response) names() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f[0]
	}
	return out
}
