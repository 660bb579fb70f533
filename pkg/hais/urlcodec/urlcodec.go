// Package urlcodec implements the percent-encoding used for autoindex hrefs
// and the decoding applied to request targets.
//
// Encoding keeps alphanumerics and the bytes * - . _ unchanged and escapes
// everything else as %XX with uppercase hex digits. Callers that need extra
// pass-through bytes (the server keeps '/' so hrefs retain the separator)
// build their own Table once, before any concurrent use, and only read it
// afterwards.
package urlcodec

import "errors"

var (
	// ErrTruncatedEscape indicates a '%' followed by fewer than two bytes.
	ErrTruncatedEscape = errors.New("urlcodec: truncated percent escape")

	// ErrInvalidEscape indicates a '%' followed by non-hex characters.
	ErrInvalidEscape = errors.New("urlcodec: invalid percent escape")
)

const upperHex = "0123456789ABCDEF"

// Table records which bytes pass through Encode unescaped.
// The zero value escapes every byte.
type Table struct {
	safe [256]bool
}

// NewTable returns the default safety table: alphanumerics and * - . _
func NewTable() *Table {
	t := &Table{}
	for c := 0; c < 256; c++ {
		b := byte(c)
		switch {
		case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
			t.safe[c] = true
		case b == '*', b == '-', b == '.', b == '_':
			t.safe[c] = true
		}
	}
	return t
}

// Allow adds b to the pass-through set.
// Not safe for use concurrently with Encode.
func (t *Table) Allow(b byte) *Table {
	t.safe[b] = true
	return t
}

// Safe reports whether b passes through unescaped.
func (t *Table) Safe(b byte) bool {
	return t.safe[b]
}

// Encode percent-encodes s according to the table.
func (t *Table) Encode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !t.safe[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if t.safe[c] {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperHex[c>>4], upperHex[c&0x0F])
	}
	return string(buf)
}

var defaultTable = NewTable()

// Encode percent-encodes s with the default table.
func Encode(s string) string {
	return defaultTable.Encode(s)
}

// Decode reverses percent-encoding: '+' becomes a space and %XX becomes the
// byte XX. A '%' that is not followed by two hex digits is kept literally,
// together with whatever follows it.
func Decode(s string) string {
	out, _ := decode(s, false)
	return out
}

// DecodeStrict is Decode but rejects truncated or non-hex escapes.
func DecodeStrict(s string) (string, error) {
	return decode(s, true)
}

func decode(s string, strict bool) (string, error) {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '+':
			buf = append(buf, ' ')
		case '%':
			if i+2 >= len(s) {
				if strict {
					return "", ErrTruncatedEscape
				}
				buf = append(buf, c)
				continue
			}
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				if strict {
					return "", ErrInvalidEscape
				}
				buf = append(buf, c)
				continue
			}
			buf = append(buf, hi<<4|lo)
			i += 2
		default:
			buf = append(buf, c)
		}
	}
	return string(buf), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
