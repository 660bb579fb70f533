//go:build linux

package socket

import (
	"errors"
	"io"
	"net"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

func listen(cfg Config) (net.Listener, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}

	if cfg.ReuseAddr {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			unix.Close(fd)
			return nil, os.NewSyscallError("setsockopt", err)
		}
	}

	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: cfg.Port}); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("bind", err)
	}

	backlog := cfg.Backlog
	if backlog < 1 {
		backlog = unix.SOMAXCONN
	}
	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("listen", err)
	}

	// net.FileListener dups the descriptor; our copy is closed with f.
	f := os.NewFile(uintptr(fd), "tcp:"+strconv.Itoa(cfg.Port))
	defer f.Close()
	return net.FileListener(f)
}

func sendFile(conn net.Conn, file *os.File, offset, count int64) (int64, error) {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return copyRange(conn, file, offset, count)
	}
	rawConn, err := tcpConn.SyscallConn()
	if err != nil {
		return copyRange(conn, file, offset, count)
	}

	srcFd := int(file.Fd())
	var written int64
	var sendErr error
	cur := offset

	ctrlErr := rawConn.Write(func(dstFd uintptr) bool {
		for written < count {
			chunk := count - written
			if chunk > 1<<30 {
				chunk = 1 << 30
			}
			n, err := unix.Sendfile(int(dstFd), srcFd, &cur, int(chunk))
			if n > 0 {
				written += int64(n)
			}
			switch {
			case errors.Is(err, unix.EAGAIN):
				// Socket buffer full: let the poller wait for writability.
				return false
			case errors.Is(err, unix.EINTR):
				continue
			case err != nil:
				sendErr = err
				return true
			case n == 0:
				// File shorter than expected.
				sendErr = io.ErrUnexpectedEOF
				return true
			}
		}
		return true
	})

	if ctrlErr != nil {
		return written, ctrlErr
	}
	if sendErr == io.ErrUnexpectedEOF {
		return written, sendErr
	}
	if sendErr != nil {
		// sendfile unsupported for this pair; finish with a plain copy.
		n, err := copyRange(conn, file, offset+written, count-written)
		return written + n, err
	}
	return written, nil
}
