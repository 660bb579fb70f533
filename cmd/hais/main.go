// Package main runs the hais autoindex file server.
//
//	hais [flags] <rootPath> <port> <threadCount> <charset> [<faviconPath>]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/watt-toolkit/hais/pkg/hais/pathguard"
	"github.com/watt-toolkit/hais/pkg/hais/server"
	"github.com/watt-toolkit/hais/pkg/hais/socket"
)

const usageLine = "Usage: hais [flags] <rootPath> <port> <threadCount> <charset> [<faviconPath>]"

// Options holds everything taken from the command line
type Options struct {
	Root        string
	Port        int
	Threads     int
	Charset     string
	FaviconPath string

	LegacyContainment bool
	MetricsAddr       string
	LogFormat         string
	Quiet             bool
	Verbose           bool
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	Sniff             bool
}

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process plumbing. It returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "hais: %v\n", err)
		}
		fmt.Fprintln(stderr, usageLine)
		return 1
	}

	logger := log.New(stderr, "hais: ", log.LstdFlags)

	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		logger.Printf("root %q is not a directory", opts.Root)
		return 1
	}

	ln, err := socket.Listen(socket.DefaultConfig(opts.Port, opts.Threads))
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	cfg := server.DefaultConfig(opts.Root)
	cfg.Workers = opts.Threads
	cfg.Charset = opts.Charset
	cfg.FaviconPath = opts.FaviconPath
	cfg.ReadTimeout = opts.ReadTimeout
	cfg.WriteTimeout = opts.WriteTimeout
	cfg.Sniff = opts.Sniff
	cfg.Verbose = opts.Verbose
	cfg.ErrorLog = logger
	if opts.LegacyContainment {
		cfg.Policy = pathguard.PolicyLegacy
	}
	if !opts.Quiet {
		cfg.AccessLog = server.NewAccessLogger(server.LoggerConfig{
			Output: stdout,
			Format: opts.LogFormat,
		})
	}

	var metricsSrv *http.Server
	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		cfg.Registerer = reg
		metricsSrv = startMetrics(opts.MetricsAddr, reg, logger)
	}

	srv := server.New(cfg)
	logger.Printf("serving %s on %s with %d workers", opts.Root, ln.Addr(), cfg.Workers)

	err = srv.Serve(ctx, ln)

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		metricsSrv.Shutdown(shutdownCtx)
		cancel()
	}
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	st := srv.Stats()
	logger.Printf("shut down after %v: %d connections, %d requests, %d bytes",
		st.Duration().Round(time.Millisecond), st.TotalConnections.Load(),
		st.TotalRequests.Load(), st.BytesWritten.Load())
	return 0
}

// parseArgs reads flags followed by the positional arguments.
func parseArgs(args []string, stderr io.Writer) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet("hais", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.LegacyContainment, "legacy-containment", false, "Use the prefix-only containment check")
	fs.StringVar(&opts.MetricsAddr, "metrics", "", "Serve Prometheus metrics on this address (e.g., :9100)")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "Access log format: json or text")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Disable the access log")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Log raw request and response heads")
	fs.DurationVar(&opts.ReadTimeout, "read-timeout", 0, "Deadline for reading a request (0 = none)")
	fs.DurationVar(&opts.WriteTimeout, "write-timeout", 0, "Deadline for writing responses (0 = none)")
	fs.BoolVar(&opts.Sniff, "sniff", false, "Detect the media type from content for unknown extensions")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	pos := fs.Args()
	if len(pos) < 4 {
		return nil, errUsage
	}

	port, err := strconv.Atoi(pos[1])
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port %q", pos[1])
	}
	threads, err := strconv.Atoi(pos[2])
	if err != nil || threads < 1 {
		return nil, fmt.Errorf("invalid thread count %q", pos[2])
	}
	if opts.LogFormat != "json" && opts.LogFormat != "text" {
		return nil, fmt.Errorf("invalid log format %q", opts.LogFormat)
	}

	opts.Root = pos[0]
	opts.Port = port
	opts.Threads = threads
	opts.Charset = pos[3]
	if len(pos) > 4 {
		opts.FaviconPath = pos[4]
	}
	return opts, nil
}

func startMetrics(addr string, reg *prometheus.Registry, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("metrics: %v", err)
		}
	}()
	return srv
}
