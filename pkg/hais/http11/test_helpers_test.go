package http11

import (
	"errors"
	"io"
	"strings"
)

// chunkReader returns its chunks one Read at a time, then io.EOF.
type chunkReader struct {
	chunks []string
	reads  int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	c.reads++
	n := copy(p, c.chunks[0])
	if n < len(c.chunks[0]) {
		c.chunks[0] = c.chunks[0][n:]
	} else {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

// failWriter fails every write after the first limit bytes.
type failWriter struct {
	sb    strings.Builder
	limit int
}

var errWriteFailed = errors.New("write failed")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.sb.Len()+len(p) > f.limit {
		return 0, errWriteFailed
	}
	return f.sb.Write(p)
}
