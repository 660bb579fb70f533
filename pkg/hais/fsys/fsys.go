// Package fsys is the filesystem capability the server reads through.
//
// Metadata is never cached: every call goes to the backing filesystem, which
// is acceptable because the server has no write path.
package fsys

import (
	"io"
	"io/fs"
	"os"
	"time"
)

// TimeFormat is the RFC 1123 layout used for Last-Modified, always in GMT.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// File is an open regular file.
type File interface {
	io.Reader
	io.ReaderAt
	io.Closer
}

// FileSystem is the set of OS primitives the server needs.
// Names are host paths (filepath separators).
type FileSystem interface {
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the immediate children of name in enumeration order.
	ReadDir(name string) ([]fs.DirEntry, error)

	Open(name string) (File, error)
}

// FileMeta is the per-request view of a served file.
type FileMeta struct {
	Size         int64
	LastModified string
}

// FormatTime renders t with TimeFormat at one-second granularity.
func FormatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimeFormat)
}

// Meta returns the current size and Last-Modified text of name.
func Meta(fsys FileSystem, name string) (FileMeta, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return FileMeta{}, err
	}
	return FileMeta{
		Size:         info.Size(),
		LastModified: FormatTime(info.ModTime()),
	}, nil
}

// OS is the FileSystem backed by the host operating system.
type OS struct{}

// Stat implements FileSystem.
func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir implements FileSystem. Unlike os.ReadDir the entries are not
// sorted; they come back in the order the directory yields them.
func (OS) ReadDir(name string) ([]fs.DirEntry, error) {
	dir, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer dir.Close()
	return dir.ReadDir(-1)
}

// Open implements FileSystem. The concrete type is *os.File so that the
// socket layer can hand it to sendfile.
func (OS) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}
