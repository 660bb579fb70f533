// Package server runs the fixed worker pool that accepts connections and
// answers exactly one request on each from a directory tree: files, byte
// ranges, conditional GETs and autoindex pages.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/watt-toolkit/hais/pkg/hais/autoindex"
	"github.com/watt-toolkit/hais/pkg/hais/bufpool"
	"github.com/watt-toolkit/hais/pkg/hais/fsys"
	"github.com/watt-toolkit/hais/pkg/hais/http11"
	"github.com/watt-toolkit/hais/pkg/hais/pathguard"
)

// Server identity sent in the Server header and on error pages.
const (
	Product   = "hais"
	Version   = "1.2"
	Signature = Product + "/" + Version
)

// Config holds server configuration
type Config struct {
	// Root is the directory tree being served. Required.
	Root string

	// Workers is the number of goroutines accepting connections.
	// Default: runtime.NumCPU()
	Workers int

	// Charset is written into autoindex pages.
	// Default: "utf-8"
	Charset string

	// FaviconPath is served for /favicon.ico when Root has no favicon.ico.
	// Empty means such requests get a 404.
	FaviconPath string

	// Policy selects how targets are kept inside Root.
	// Default: pathguard.PolicyStrict
	Policy pathguard.Policy

	// ReadTimeout bounds reading the request head. 0 means no deadline.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing all responses on a connection.
	// 0 means no deadline.
	WriteTimeout time.Duration

	// MaxRequestBytes caps how much of a request head is read.
	// Default: http11.DefaultMaxHeadSize
	MaxRequestBytes int

	// Sniff detects the media type from content when the extension is
	// unknown.
	Sniff bool

	// Verbose logs raw request heads and response heads.
	Verbose bool

	// FS is the filesystem read from.
	// Default: fsys.OS{}
	FS fsys.FileSystem

	// AccessLog receives one entry per request. Nil disables access logging.
	AccessLog *AccessLogger

	// Registerer receives the server's Prometheus collectors. Nil disables
	// metrics.
	Registerer prometheus.Registerer

	// ErrorLog receives diagnostics. Default: the standard logger.
	ErrorLog *log.Logger
}

// DefaultConfig returns the default server configuration for root.
func DefaultConfig(root string) Config {
	return Config{
		Root:            root,
		Workers:         runtime.NumCPU(),
		Charset:         "utf-8",
		Policy:          pathguard.PolicyStrict,
		MaxRequestBytes: http11.DefaultMaxHeadSize,
		FS:              fsys.OS{},
	}
}

// Stats represents server statistics
type Stats struct {
	// Total number of connections accepted
	TotalConnections atomic.Uint64

	// Current number of connections being served
	ActiveConnections atomic.Int64

	// Total number of requests parsed and dispatched
	TotalRequests atomic.Uint64

	// Total number of response bytes written, heads included
	BytesWritten atomic.Uint64

	// Number of accept and read errors
	ConnectionErrors atomic.Uint64

	// Number of requests answered with 400
	RequestErrors atomic.Uint64

	// Number of responses aborted by a failed write
	WriteErrors atomic.Uint64

	// Server start time
	StartTime time.Time
}

// Duration returns the time since the server was created
func (s *Stats) Duration() time.Duration {
	return time.Since(s.StartTime)
}

// RequestsPerSecond returns the average requests per second
func (s *Stats) RequestsPerSecond() float64 {
	duration := s.Duration().Seconds()
	if duration == 0 {
		return 0
	}
	return float64(s.TotalRequests.Load()) / duration
}

// Server serves Config.Root.
type Server struct {
	config   Config
	fs       fsys.FileSystem
	resolver *pathguard.Resolver
	index    *autoindex.Generator
	chunks   *bufpool.Pool
	metrics  *Metrics
	stats    Stats
}

// New creates a server. The href codec and every other shared table are
// built here, before any worker runs.
func New(config Config) *Server {
	if config.Root == "" {
		panic("server: Root is required")
	}

	// Apply defaults
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Charset == "" {
		config.Charset = "utf-8"
	}
	if config.MaxRequestBytes <= 0 {
		config.MaxRequestBytes = http11.DefaultMaxHeadSize
	}
	if config.FS == nil {
		config.FS = fsys.OS{}
	}
	if config.ErrorLog == nil {
		config.ErrorLog = log.Default()
	}

	s := &Server{
		config:   config,
		fs:       config.FS,
		resolver: pathguard.New(config.Root, config.FS, config.Policy),
		index:    autoindex.New(config.FS, config.Charset),
		chunks:   bufpool.Chunks(),
	}
	s.index.Logf = config.ErrorLog.Printf
	if config.Registerer != nil {
		s.metrics = NewMetrics(config.Registerer, s.chunks)
	}
	s.stats.StartTime = time.Now()
	return s
}

// Stats returns server statistics
func (s *Server) Stats() *Stats {
	return &s.stats
}

// Config returns the configuration in effect, defaults applied.
func (s *Server) Config() Config {
	return s.config
}

// Serve runs Config.Workers workers on ln until ctx is cancelled, then
// closes ln and waits for in-flight connections to finish. It returns nil
// after a cancellation and an error if ln stops accepting on its own.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	stop := make(chan struct{})
	go func() {
		select {
		case <-gctx.Done():
		case <-stop:
		}
		ln.Close()
	}()

	for i := 0; i < s.config.Workers; i++ {
		g.Go(func() error {
			return s.worker(gctx, ln)
		})
	}

	err := g.Wait()
	close(stop)
	return err
}

// worker is one accept -> handle -> close loop.
func (s *Server) worker(ctx context.Context, ln net.Listener) error {
	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("server: accept: %w", err)
			}

			s.stats.ConnectionErrors.Add(1)
			s.metrics.acceptError()
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else if delay *= 2; delay > time.Second {
				delay = time.Second
			}
			s.config.ErrorLog.Printf("server: accept error: %v; retrying in %v", err, delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		delay = 0
		s.serveConn(conn)
	}
}
