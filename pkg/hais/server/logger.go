package server

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// LoggerConfig defines configuration for the access logger.
type LoggerConfig struct {
	// Output is where entries are written (default: stdout)
	Output io.Writer

	// Format is "json" or "text" (default: "json")
	Format string

	// SkipPaths are targets that are never logged, e.g. /favicon.ico
	SkipPaths []string

	// TimeFormat is the layout of the time field (default: RFC3339)
	TimeFormat string
}

// DefaultLoggerConfig returns default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Output:     os.Stdout,
		Format:     "json",
		SkipPaths:  []string{},
		TimeFormat: time.RFC3339,
	}
}

// LogEntry is one access log record.
type LogEntry struct {
	Time       string  `json:"time"`
	Remote     string  `json:"remote"`
	Method     string  `json:"method"`
	Target     string  `json:"target"`
	Status     int     `json:"status"`
	Bytes      int64   `json:"bytes"`
	DurationMS float64 `json:"duration_ms"`
	Error      string  `json:"error,omitempty"`
}

// AccessLogger writes one entry per request. It is safe for concurrent use.
type AccessLogger struct {
	config LoggerConfig
	skip   map[string]bool
	mu     sync.Mutex
}

// NewAccessLogger creates a logger, applying defaults to config.
func NewAccessLogger(config LoggerConfig) *AccessLogger {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Format == "" {
		config.Format = "json"
	}
	if config.TimeFormat == "" {
		config.TimeFormat = time.RFC3339
	}

	skip := make(map[string]bool, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = true
	}
	return &AccessLogger{config: config, skip: skip}
}

// Log writes entry unless its target is skipped.
func (l *AccessLogger) Log(entry LogEntry) {
	if l.skip[entry.Target] {
		return
	}

	var line []byte
	if l.config.Format == "json" {
		b, err := json.Marshal(entry)
		if err != nil {
			log.Printf("server: failed to encode access log entry: %v", err)
			return
		}
		line = append(b, '\n')
	} else {
		line = []byte(formatText(entry))
	}

	l.mu.Lock()
	_, err := l.config.Output.Write(line)
	l.mu.Unlock()
	if err != nil {
		log.Printf("server: failed to write access log: %v", err)
	}
}

// formatText renders entry as
//
//	127.0.0.1:5050 GET /docs/report.pdf - 200 - 1024 bytes - 1.2ms
func formatText(e LogEntry) string {
	d := time.Duration(e.DurationMS * float64(time.Millisecond))
	if e.Error != "" {
		return fmt.Sprintf("%s %s %s - %d - %d bytes - %v - ERROR: %s\n",
			e.Remote, e.Method, e.Target, e.Status, e.Bytes, d, e.Error)
	}
	return fmt.Sprintf("%s %s %s - %d - %d bytes - %v\n",
		e.Remote, e.Method, e.Target, e.Status, e.Bytes, d)
}

// logAccess records the finished exchange on the configured access log.
func (s *Server) logAccess(ex *exchange) {
	l := s.config.AccessLog
	if l == nil {
		return
	}

	entry := LogEntry{
		Time:       ex.start.Format(l.config.TimeFormat),
		Status:     ex.status,
		Bytes:      ex.bodyBytes,
		DurationMS: float64(time.Since(ex.start).Microseconds()) / 1000.0,
	}
	if addr := ex.conn.RemoteAddr(); addr != nil {
		entry.Remote = addr.String()
	}
	if ex.req != nil {
		entry.Method = ex.req.Method
		entry.Target = ex.req.Target
	}
	if ex.err != nil {
		entry.Error = ex.err.Error()
	}
	l.Log(entry)
}
