package server

import (
	"errors"
	"net"
	"path/filepath"
	"strings"
	"time"

	"github.com/watt-toolkit/hais/pkg/hais/http11"
	"github.com/watt-toolkit/hais/pkg/hais/pathguard"
	"github.com/watt-toolkit/hais/pkg/hais/urlcodec"
)

const faviconTarget = "/favicon.ico"

// exchange is the state of one connection's request and the responses sent
// for it. Multi-range requests produce several responses on one exchange.
type exchange struct {
	conn net.Conn
	req  *http11.Request
	rw   *http11.ResponseWriter

	start     time.Time
	status    int
	bodyBytes int64
	err       error
}

// serveConn handles one connection: read, dispatch, close.
func (s *Server) serveConn(conn net.Conn) {
	ex := &exchange{
		conn:  conn,
		rw:    http11.NewResponseWriter(conn),
		start: time.Now(),
	}

	s.stats.TotalConnections.Add(1)
	s.stats.ActiveConnections.Add(1)
	s.metrics.connOpened()
	defer func() {
		if r := recover(); r != nil {
			s.stats.ConnectionErrors.Add(1)
			s.config.ErrorLog.Printf("server: panic serving %s: %v", conn.RemoteAddr(), r)
		}
		s.stats.ActiveConnections.Add(-1)
		s.metrics.connClosed(time.Since(ex.start))
		conn.Close()
	}()

	if s.config.ReadTimeout > 0 {
		conn.SetReadDeadline(ex.start.Add(s.config.ReadTimeout))
	}

	buf := s.chunks.Get()
	head, err := http11.ReadHead(conn, buf, s.config.MaxRequestBytes)
	s.chunks.Put(buf)

	switch {
	case errors.Is(err, http11.ErrNoRequest):
		return
	case errors.Is(err, http11.ErrRequestTooLarge):
		// Answered below as a bad request.
	case err != nil:
		s.stats.ConnectionErrors.Add(1)
		s.config.ErrorLog.Printf("server: read from %s: %v", conn.RemoteAddr(), err)
		return
	}

	if s.config.Verbose {
		s.config.ErrorLog.Printf("%s ===================>\n%s", conn.RemoteAddr(), head)
	}
	if s.config.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	}

	req, perr := http11.ParseRequest(head)
	if err == nil {
		err = perr
	}
	ex.req = req
	s.stats.TotalRequests.Add(1)

	if err != nil {
		s.stats.RequestErrors.Add(1)
		ex.err = err
		s.errorPage(ex, http11.StatusBadRequest)
	} else {
		s.dispatch(ex)
	}
	s.logAccess(ex)
}

// dispatch routes a parsed request:
//
//	/                        listing of the root
//	/favicon.ico (missing)   configured fallback icon, else 404
//	contained directory      listing
//	contained file           range, conditional or full response
//	anything else            listing of the root
func (s *Server) dispatch(ex *exchange) {
	target := ex.req.Target

	if target == "/" {
		s.serveIndex(ex, s.config.Root, "/")
		return
	}
	if target == faviconTarget && !s.isFile(filepath.Join(s.config.Root, "favicon.ico")) {
		if s.config.FaviconPath == "" {
			s.errorPage(ex, http11.StatusNotFound)
			return
		}
		s.serveFull(ex, s.config.FaviconPath)
		return
	}

	res := s.resolver.Resolve(target)
	switch {
	case res.Contained && res.Kind == pathguard.Directory:
		s.serveIndex(ex, res.Path, urlPath(target))
	case res.Contained && res.Kind == pathguard.File:
		s.serveFile(ex, res.Path)
	default:
		s.serveIndex(ex, s.config.Root, "/")
	}
}

func (s *Server) isFile(p string) bool {
	info, err := s.fs.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// urlPath is the decoded target shown in listing titles and used as the
// base of entry hrefs.
func urlPath(target string) string {
	p := urlcodec.Decode(target)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
