package http11

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// DefaultMaxHeadSize bounds how much of a request ReadHead accumulates.
const DefaultMaxHeadSize = 64 * 1024

// Request is the part of an HTTP request the file server acts on.
// It is built once per connection and not modified afterwards.
type Request struct {
	Method string

	// Target is the raw, still percent-encoded path. Anything from the
	// first '?' or '#' on is dropped.
	Target string

	Proto string

	// Range and IfModifiedSince hold the raw header values, or "" when
	// the header is absent.
	Range           string
	IfModifiedSince string
}

// HasRange reports whether a Range header was sent.
func (r *Request) HasRange() bool {
	return r.Range != ""
}

// ReadHead reads the request head from r using buf as the read buffer.
//
// Reading continues while a read fills buf completely, the way a peer that
// has more to send behaves, and stops once the blank line ending the head
// has arrived, the peer closes, or max bytes have been collected. A request
// line that has not been completed also keeps the loop reading.
func ReadHead(r io.Reader, buf []byte, max int) ([]byte, error) {
	if max <= 0 {
		max = DefaultMaxHeadSize
	}

	var data []byte
	for {
		n, err := r.Read(buf)
		data = append(data, buf[:n]...)

		switch {
		case bytes.Contains(data, headTerminator):
			return data, nil
		case len(data) >= max:
			return data, ErrRequestTooLarge
		case err != nil:
			if errors.Is(err, io.EOF) {
				if len(data) == 0 {
					return nil, ErrNoRequest
				}
				return data, nil
			}
			return data, err
		case n == len(buf):
			continue
		case n > 0 && bytes.IndexByte(data, '\n') >= 0:
			return data, nil
		}
	}
}

// ParseRequest tokenizes a request head: the request line, then header
// lines split on CRLF (a bare LF is accepted), each split on its first
// colon. Header names match case-insensitively; the first occurrence wins.
// Lines without a colon are ignored.
func ParseRequest(head []byte) (*Request, error) {
	if len(head) == 0 {
		return nil, ErrNoRequest
	}

	lines := strings.Split(string(head), "\n")
	req := &Request{}
	if err := parseRequestLine(req, strings.TrimSuffix(lines[0], "\r")); err != nil {
		return req, err
	}

	var seenRange, seenIMS bool
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			break
		}
		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			continue
		}
		name := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])

		switch {
		case !seenRange && strings.EqualFold(name, HeaderRange):
			req.Range, seenRange = value, true
		case !seenIMS && strings.EqualFold(name, HeaderIfModifiedSince):
			req.IfModifiedSince, seenIMS = value, true
		}
	}
	return req, nil
}

// parseRequestLine fills Method, Target and Proto.
// Format: METHOD SP target SP HTTP-version
func parseRequestLine(req *Request, line string) error {
	sp := strings.IndexByte(line, ' ')
	if sp <= 0 {
		return ErrInvalidRequestLine
	}
	req.Method = line[:sp]

	rest := strings.TrimLeft(line[sp+1:], " ")
	target := rest
	if sp2 := strings.IndexByte(rest, ' '); sp2 >= 0 {
		target = rest[:sp2]
		req.Proto = strings.TrimSpace(rest[sp2+1:])
	}
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	req.Target = target

	if req.Target == "" {
		return ErrEmptyTarget
	}
	if !strings.HasPrefix(req.Proto, protoPrefix) {
		return ErrInvalidRequestLine
	}
	return nil
}
