package http11

import (
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// ResponseWriter writes one HTTP/1.1 response: a status line, the header
// fields in insertion order, a blank line, then the body.
//
// The head is assembled in a pooled buffer and written with a single call
// the first time Write or Flush runs. Headers cannot change after that.
type ResponseWriter struct {
	w io.Writer

	status int
	header Header

	statusWritten bool
	headerWritten bool
	headBytes     int64
	bytesWritten  int64
}

// NewResponseWriter creates a ResponseWriter for w with status 200.
func NewResponseWriter(w io.Writer) *ResponseWriter {
	return &ResponseWriter{
		w:      w,
		status: StatusOK,
	}
}

// Header returns the response header. Changes after the head has been
// written have no effect.
func (rw *ResponseWriter) Header() *Header {
	return &rw.header
}

// WriteHeader records the status code. Only the first call takes effect.
func (rw *ResponseWriter) WriteHeader(statusCode int) {
	if rw.statusWritten {
		return
	}
	rw.status = statusCode
	rw.statusWritten = true
}

// Write writes body bytes, sending the head first if needed.
func (rw *ResponseWriter) Write(data []byte) (int, error) {
	if !rw.headerWritten {
		if err := rw.writeHead(); err != nil {
			return 0, err
		}
	}

	n, err := rw.w.Write(data)
	rw.bytesWritten += int64(n)
	return n, err
}

// WriteString is Write for strings.
func (rw *ResponseWriter) WriteString(s string) (int, error) {
	return rw.Write([]byte(s))
}

// Flush sends the head if it has not been sent, and flushes the
// underlying writer when it supports it.
func (rw *ResponseWriter) Flush() error {
	if !rw.headerWritten {
		if err := rw.writeHead(); err != nil {
			return err
		}
	}
	if flusher, ok := rw.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// AddBodyBytes accounts for body bytes sent around the writer, for example
// by sendfile on the underlying connection.
func (rw *ResponseWriter) AddBodyBytes(n int64) {
	rw.bytesWritten += n
}

func (rw *ResponseWriter) writeHead() error {
	rw.headerWritten = true

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.Write(statusLine(rw.status))
	rw.header.VisitAll(func(name, value string) bool {
		buf.WriteString(name)
		buf.Write(colonSpace)
		buf.WriteString(value)
		buf.Write(crlfBytes)
		return true
	})
	buf.Write(crlfBytes)

	n, err := rw.w.Write(buf.B)
	rw.headBytes = int64(n)
	return err
}

// Status returns the status code that is or will be sent.
func (rw *ResponseWriter) Status() int {
	return rw.status
}

// BytesWritten returns the number of body bytes written.
func (rw *ResponseWriter) BytesWritten() int64 {
	return rw.bytesWritten
}

// HeadBytes returns the size of the head on the wire, 0 before it is sent.
func (rw *ResponseWriter) HeadBytes() int64 {
	return rw.headBytes
}

// HeaderWritten reports whether the head has been sent.
func (rw *ResponseWriter) HeaderWritten() bool {
	return rw.headerWritten
}

// Reset prepares the writer for another response on w.
func (rw *ResponseWriter) Reset(w io.Writer) {
	rw.w = w
	rw.status = StatusOK
	rw.header.Reset()
	rw.statusWritten = false
	rw.headerWritten = false
	rw.headBytes = 0
	rw.bytesWritten = 0
}

// statusLine returns the pre-compiled status line for code, building one
// for codes the server does not normally send.
func statusLine(code int) []byte {
	switch code {
	case StatusOK:
		return status200Bytes
	case StatusPartialContent:
		return status206Bytes
	case StatusNotModified:
		return status304Bytes
	case StatusBadRequest:
		return status400Bytes
	case StatusNotFound:
		return status404Bytes
	case StatusRangeNotSatisfiable:
		return status416Bytes
	case StatusInternalServerError:
		return status500Bytes
	}
	return []byte("HTTP/1.1 " + strconv.Itoa(code) + " " + StatusText(code) + "\r\n")
}

// StatusText returns the reason phrase for code, or "" if unknown.
func StatusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusPartialContent:
		return "Partial Content"
	case StatusNotModified:
		return "Not Modified"
	case StatusBadRequest:
		return "Bad Request"
	case 403:
		return "Forbidden"
	case StatusNotFound:
		return "Not Found"
	case 405:
		return "Method Not Allowed"
	case StatusRangeNotSatisfiable:
		return "Range Not Satisfiable"
	case StatusInternalServerError:
		return "Internal Server Error"
	case 503:
		return "Service Unavailable"
	}
	return ""
}
