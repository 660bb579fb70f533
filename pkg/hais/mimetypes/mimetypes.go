// Package mimetypes resolves the Content-Type of served files.
//
// Lookup is keyed by the text after the last '.' in the path and is
// case-sensitive. Unknown extensions map to Default unless the caller opts
// into content sniffing.
package mimetypes

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Default is the media type for unknown extensions.
const Default = "application/octet-stream"

var table = func() map[string]string {
	m := make(map[string]string, len(builtin))
	for _, kv := range builtin {
		if _, ok := m[kv[0]]; !ok {
			m[kv[0]] = kv[1]
		}
	}
	return m
}()

// Extension returns the lookup key for p: everything after the last '.',
// or p itself when it has no dot.
func Extension(p string) string {
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// ByExtension returns the media type registered for ext.
func ByExtension(ext string) (string, bool) {
	ct, ok := table[ext]
	return ct, ok
}

// Lookup returns the media type for the path p, or Default.
func Lookup(p string) string {
	if ct, ok := table[Extension(p)]; ok {
		return ct
	}
	return Default
}

// Sniff detects the media type from the leading bytes of r.
func Sniff(r io.Reader) string {
	m, err := mimetype.DetectReader(r)
	if err != nil || m == nil {
		return Default
	}
	return m.String()
}

// Resolve is Lookup, falling back to Sniff on open() when sniff is set and
// the extension is unknown. open is not called otherwise.
func Resolve(p string, sniff bool, open func() (io.Reader, error)) string {
	if ct, ok := table[Extension(p)]; ok {
		return ct
	}
	if !sniff || open == nil {
		return Default
	}
	r, err := open()
	if err != nil {
		return Default
	}
	return Sniff(r)
}
