// Package ranges turns a Range header value into byte ranges of a file.
//
// Supported forms, comma separated after "bytes=":
//
//	start-end   closed range, end clamped to the last byte
//	start-      from start to EOF
//	-n          the last n bytes (the whole file when n exceeds its size)
//
// Ranges are returned in header order. They are never merged, sorted or
// checked for overlap.
package ranges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedUnit indicates a unit other than bytes. Callers ignore
	// the header and serve the whole file.
	ErrUnsupportedUnit = errors.New("ranges: unsupported range unit")

	// ErrMalformed indicates a syntactically invalid range set.
	ErrMalformed = errors.New("ranges: malformed range")

	// ErrUnsatisfiable indicates a range that selects no byte of the file.
	ErrUnsatisfiable = errors.New("ranges: range not satisfiable")
)

const unitPrefix = "bytes="

// ByteRange is Length bytes starting at Offset.
// Offset+Length never exceeds the file size it was computed against.
type ByteRange struct {
	Offset int64
	Length int64
}

// End returns the offset of the last byte in the range.
func (r ByteRange) End() int64 {
	return r.Offset + r.Length - 1
}

// ContentRange renders the Content-Range value for r within a file of size.
func (r ByteRange) ContentRange(size int64) string {
	return "bytes " + strconv.FormatInt(r.Offset, 10) + "-" +
		strconv.FormatInt(r.End(), 10) + "/" + strconv.FormatInt(size, 10)
}

// UnsatisfiedContentRange is the Content-Range value sent with a 416.
func UnsatisfiedContentRange(size int64) string {
	return "bytes */" + strconv.FormatInt(size, 10)
}

// Parse computes the ranges selected by header against a file of size bytes.
// Any invalid segment fails the whole header; empty segments are skipped.
func Parse(header string, size int64) ([]ByteRange, error) {
	header = strings.TrimSpace(header)
	if len(header) < len(unitPrefix) || !strings.EqualFold(header[:len(unitPrefix)], unitPrefix) {
		return nil, ErrUnsupportedUnit
	}

	set := header[len(unitPrefix):]
	out := make([]ByteRange, 0, strings.Count(set, ",")+1)
	for _, seg := range strings.Split(set, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		r, err := parseSegment(seg, size)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", seg, err)
		}
		out = append(out, r)
	}

	if len(out) == 0 {
		return nil, ErrMalformed
	}
	return out, nil
}

func parseSegment(seg string, size int64) (ByteRange, error) {
	dash := strings.IndexByte(seg, '-')
	if dash < 0 {
		return ByteRange{}, ErrMalformed
	}
	first, last := strings.TrimSpace(seg[:dash]), strings.TrimSpace(seg[dash+1:])

	switch {
	case first == "" && last == "":
		return ByteRange{}, ErrMalformed

	case first == "":
		n, err := parseBound(last)
		if err != nil {
			return ByteRange{}, err
		}
		if n == 0 || size == 0 {
			return ByteRange{}, ErrUnsatisfiable
		}
		if n > size {
			n = size
		}
		return ByteRange{Offset: size - n, Length: n}, nil

	case last == "":
		start, err := parseBound(first)
		if err != nil {
			return ByteRange{}, err
		}
		if start >= size {
			return ByteRange{}, ErrUnsatisfiable
		}
		return ByteRange{Offset: start, Length: size - start}, nil

	default:
		start, err := parseBound(first)
		if err != nil {
			return ByteRange{}, err
		}
		end, err := parseBound(last)
		if err != nil {
			return ByteRange{}, err
		}
		if end < start {
			return ByteRange{}, ErrMalformed
		}
		if start >= size {
			return ByteRange{}, ErrUnsatisfiable
		}
		if end >= size {
			end = size - 1
		}
		return ByteRange{Offset: start, Length: end - start + 1}, nil
	}
}

func parseBound(s string) (int64, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrMalformed
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}
	return n, nil
}
