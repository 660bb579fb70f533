// Package socket bootstraps the listening socket and provides zero-copy
// file transmission.
//
// On Linux the listener is built by hand so that SO_REUSEADDR is set and the
// accept backlog matches the worker count, and file bodies go out through
// sendfile(2). Other platforms fall back to net.Listen with the system
// default backlog and to io.Copy.
package socket

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
)

// ErrInvalidPort indicates a port outside 1-65535.
var ErrInvalidPort = errors.New("socket: invalid port")

// Config describes the listening socket.
type Config struct {
	// Port to bind on all IPv4 interfaces. 0 picks an ephemeral port.
	Port int

	// Backlog is the pending-connection queue length. Values below 1 use
	// the system default.
	Backlog int

	// ReuseAddr sets SO_REUSEADDR before bind.
	ReuseAddr bool
}

// DefaultConfig returns a config for port with the given backlog.
func DefaultConfig(port, backlog int) Config {
	return Config{
		Port:      port,
		Backlog:   backlog,
		ReuseAddr: true,
	}
}

// Listen creates a TCP listener bound to 0.0.0.0:cfg.Port.
func Listen(cfg Config) (net.Listener, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	ln, err := listen(cfg)
	if err != nil {
		return nil, fmt.Errorf("socket: listen on port %d: %w", cfg.Port, err)
	}
	return ln, nil
}

// SendFileRange sends count bytes of file starting at offset, using
// sendfile(2) where the platform and connection allow it.
func SendFileRange(conn net.Conn, file *os.File, offset, count int64) (int64, error) {
	if count <= 0 {
		return 0, nil
	}
	return sendFile(conn, file, offset, count)
}

// copyRange is the portable fallback for SendFileRange.
func copyRange(conn net.Conn, file *os.File, offset, count int64) (int64, error) {
	return io.Copy(conn, io.NewSectionReader(file, offset, count))
}
