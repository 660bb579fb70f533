package server

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/watt-toolkit/hais/pkg/hais/fsys"
	"github.com/watt-toolkit/hais/pkg/hais/http11"
	"github.com/watt-toolkit/hais/pkg/hais/mimetypes"
	"github.com/watt-toolkit/hais/pkg/hais/ranges"
	"github.com/watt-toolkit/hais/pkg/hais/socket"
)

const contentTypeHTML = "text/html"

// serveFile answers a request for a regular file: 206 per range when a
// bytes Range header is present, 304 when If-Modified-Since matches the
// current Last-Modified exactly, 200 otherwise.
func (s *Server) serveFile(ex *exchange, p string) {
	meta, err := fsys.Meta(s.fs, p)
	if err != nil {
		s.errorPage(ex, http11.StatusNotFound)
		return
	}

	if ex.req.HasRange() {
		rs, err := ranges.Parse(ex.req.Range, meta.Size)
		switch {
		case err == nil:
			s.servePartial(ex, p, meta, rs)
			return
		case errors.Is(err, ranges.ErrUnsupportedUnit):
			// Not a bytes range; serve the whole file.
		default:
			ex.err = err
			s.rangeNotSatisfiable(ex, meta.Size)
			return
		}
	} else if ex.req.IfModifiedSince == meta.LastModified {
		s.notModified(ex, meta)
		return
	}

	s.sendFull(ex, p, meta)
}

// serveFull sends p with 200 without looking at conditional or range
// headers.
func (s *Server) serveFull(ex *exchange, p string) {
	meta, err := fsys.Meta(s.fs, p)
	if err != nil {
		s.errorPage(ex, http11.StatusNotFound)
		return
	}
	s.sendFull(ex, p, meta)
}

func (s *Server) sendFull(ex *exchange, p string, meta fsys.FileMeta) {
	f, err := s.fs.Open(p)
	if err != nil {
		s.errorPage(ex, http11.StatusNotFound)
		return
	}
	defer f.Close()

	s.send(ex, http11.StatusOK, []string{
		http11.HeaderContentLength, strconv.FormatInt(meta.Size, 10),
		http11.HeaderConnection, "close",
		http11.HeaderLastModified, meta.LastModified,
		http11.HeaderContentType, s.contentType(p, f),
		http11.HeaderServer, Signature,
	}, func(rw *http11.ResponseWriter) error {
		return s.copyBody(ex, rw, f, 0, meta.Size)
	})
}

// servePartial sends one complete 206 response per range, in order, on the
// same connection. A failed write ends the sequence.
func (s *Server) servePartial(ex *exchange, p string, meta fsys.FileMeta, rs []ranges.ByteRange) {
	f, err := s.fs.Open(p)
	if err != nil {
		s.errorPage(ex, http11.StatusNotFound)
		return
	}
	defer f.Close()

	ct := s.contentType(p, f)
	for _, r := range rs {
		err := s.send(ex, http11.StatusPartialContent, []string{
			http11.HeaderAcceptRanges, "bytes",
			http11.HeaderServer, Signature,
			http11.HeaderContentType, ct,
			http11.HeaderContentLength, strconv.FormatInt(r.Length, 10),
			http11.HeaderContentRange, r.ContentRange(meta.Size),
			http11.HeaderConnection, "close",
		}, func(rw *http11.ResponseWriter) error {
			return s.copyBody(ex, rw, f, r.Offset, r.Length)
		})
		if err != nil {
			return
		}
	}
}

func (s *Server) notModified(ex *exchange, meta fsys.FileMeta) {
	s.send(ex, http11.StatusNotModified, []string{
		http11.HeaderServer, Signature,
		http11.HeaderLastModified, meta.LastModified,
		http11.HeaderConnection, "close",
	}, nil)
}

func (s *Server) rangeNotSatisfiable(ex *exchange, size int64) {
	body := errorBody(http11.StatusRangeNotSatisfiable)
	s.send(ex, http11.StatusRangeNotSatisfiable, []string{
		http11.HeaderContentLength, strconv.Itoa(len(body)),
		http11.HeaderContentType, contentTypeHTML,
		http11.HeaderContentRange, ranges.UnsatisfiedContentRange(size),
		http11.HeaderServer, Signature,
		http11.HeaderConnection, "close",
	}, writeBytes(body))
}

// errorPage sends the fixed HTML page for code.
func (s *Server) errorPage(ex *exchange, code int) {
	body := errorBody(code)
	s.send(ex, code, []string{
		http11.HeaderContentLength, strconv.Itoa(len(body)),
		http11.HeaderContentType, contentTypeHTML,
		http11.HeaderServer, Signature,
		http11.HeaderConnection, "close",
	}, writeBytes(body))
}

// serveIndex sends the listing of dir titled with urlPath. A directory that
// can no longer be read is a 404.
func (s *Server) serveIndex(ex *exchange, dir, urlPath string) {
	page, err := s.index.Page(dir, urlPath)
	if err != nil {
		ex.err = err
		s.errorPage(ex, http11.StatusNotFound)
		return
	}
	s.send(ex, http11.StatusOK, []string{
		http11.HeaderContentLength, strconv.Itoa(len(page)),
		http11.HeaderServer, Signature,
		http11.HeaderContentType, contentTypeHTML,
		http11.HeaderConnection, "close",
	}, writeBytes(page))
}

// errorBody renders the fixed error page, for example
//
//	<html><head><title>404 Not Found</title></head><body><center><h1>404 Not Found</h1></center><hr><center>hais/1.2</center></body></html>
func errorBody(code int) []byte {
	status := strconv.Itoa(code) + " " + http11.StatusText(code)
	return []byte("<html><head><title>" + status + "</title></head><body><center><h1>" +
		status + "</h1></center><hr><center>" + Signature + "</center></body></html>")
}

func writeBytes(b []byte) func(rw *http11.ResponseWriter) error {
	return func(rw *http11.ResponseWriter) error {
		_, err := rw.Write(b)
		return err
	}
}

// send writes one complete response: status line, the header fields given
// as name/value pairs in order, then the body produced by body (if any).
// Failures are recorded on ex and returned.
func (s *Server) send(ex *exchange, status int, fields []string, body func(rw *http11.ResponseWriter) error) error {
	rw := ex.rw
	rw.Reset(ex.conn)
	rw.WriteHeader(status)

	h := rw.Header()
	for i := 0; i+1 < len(fields); i += 2 {
		if err := h.Add(fields[i], fields[i+1]); err != nil {
			s.config.ErrorLog.Printf("server: dropping header %s: %v", fields[i], err)
		}
	}

	err := rw.Flush()
	if err == nil && body != nil {
		err = body(rw)
	}

	ex.status = status
	ex.bodyBytes += rw.BytesWritten()
	written := uint64(rw.HeadBytes() + rw.BytesWritten())
	s.stats.BytesWritten.Add(written)
	s.metrics.response(status, written)

	if s.config.Verbose {
		s.config.ErrorLog.Printf("<========================\n%s", dumpHead(rw))
	}
	if err != nil {
		ex.err = err
		s.stats.WriteErrors.Add(1)
		s.metrics.writeError()
		s.config.ErrorLog.Printf("server: write to %s: %v", ex.conn.RemoteAddr(), err)
	}
	return err
}

// copyBody streams count bytes of f from offset to the connection. Host
// files go through sendfile where available; anything else is copied in
// pooled chunks.
func (s *Server) copyBody(ex *exchange, rw *http11.ResponseWriter, f fsys.File, offset, count int64) error {
	var (
		n   int64
		err error
	)
	if osf, ok := f.(*os.File); ok {
		n, err = socket.SendFileRange(ex.conn, osf, offset, count)
	} else {
		buf := s.chunks.Get()
		n, err = io.CopyBuffer(ex.conn, io.NewSectionReader(f, offset, count), buf)
		s.chunks.Put(buf)
	}
	rw.AddBodyBytes(n)

	if err == nil && n < count {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// contentType looks the extension up, sniffing the opened file when
// configured and the extension is unknown.
func (s *Server) contentType(p string, f fsys.File) string {
	return mimetypes.Resolve(p, s.config.Sniff, func() (io.Reader, error) {
		return io.NewSectionReader(f, 0, 3072), nil
	})
}

func dumpHead(rw *http11.ResponseWriter) string {
	out := "HTTP/1.1 " + strconv.Itoa(rw.Status()) + " " + http11.StatusText(rw.Status()) + "\r\n"
	rw.Header().VisitAll(func(name, value string) bool {
		out += name + ": " + value + "\r\n"
		return true
	})
	return out
}
