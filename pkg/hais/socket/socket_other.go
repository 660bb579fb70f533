//go:build !linux

package socket

import (
	"net"
	"os"
	"strconv"
)

func listen(cfg Config) (net.Listener, error) {
	return net.Listen("tcp4", ":"+strconv.Itoa(cfg.Port))
}

func sendFile(conn net.Conn, file *os.File, offset, count int64) (int64, error) {
	return copyRange(conn, file, offset, count)
}
