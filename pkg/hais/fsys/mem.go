package fsys

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"sync"
	"time"
)

// Mem is an in-memory FileSystem whose ReadDir preserves insertion order.
// It exists so listings can be checked against a known enumeration order,
// which real filesystems do not promise.
type Mem struct {
	mu    sync.RWMutex
	nodes map[string]*memNode
}

type memNode struct {
	name     string
	dir      bool
	data     []byte
	modTime  time.Time
	children []string
}

// NewMem returns a Mem containing only the directory root.
func NewMem(root string) *Mem {
	m := &Mem{nodes: make(map[string]*memNode)}
	root = filepath.Clean(root)
	m.nodes[root] = &memNode{name: filepath.Base(root), dir: true}
	return m
}

// AddDir creates the directory p; its parent must exist.
func (m *Mem) AddDir(p string) *Mem {
	m.add(p, &memNode{dir: true})
	return m
}

// AddFile creates the file p with the given contents and mtime.
func (m *Mem) AddFile(p string, data []byte, modTime time.Time) *Mem {
	m.add(p, &memNode{data: data, modTime: modTime})
	return m
}

// Remove deletes p from its parent listing and from the tree.
func (m *Mem) Remove(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = filepath.Clean(p)
	delete(m.nodes, p)
	parent, ok := m.nodes[filepath.Dir(p)]
	if !ok {
		return
	}
	for i, c := range parent.children {
		if c == p {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
}

func (m *Mem) add(p string, n *memNode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = filepath.Clean(p)
	n.name = filepath.Base(p)
	parent, ok := m.nodes[filepath.Dir(p)]
	if !ok || !parent.dir {
		panic("fsys: parent of " + p + " is not a directory")
	}
	if _, exists := m.nodes[p]; !exists {
		parent.children = append(parent.children, p)
	}
	m.nodes[p] = n
}

func (m *Mem) lookup(op, name string) (*memNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.nodes[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return n, nil
}

// Stat implements FileSystem.
func (m *Mem) Stat(name string) (fs.FileInfo, error) {
	n, err := m.lookup("stat", name)
	if err != nil {
		return nil, err
	}
	return memInfo{n}, nil
}

// ReadDir implements FileSystem.
func (m *Mem) ReadDir(name string) ([]fs.DirEntry, error) {
	n, err := m.lookup("readdir", name)
	if err != nil {
		return nil, err
	}
	if !n.dir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]fs.DirEntry, 0, len(n.children))
	for _, c := range n.children {
		if child, ok := m.nodes[c]; ok {
			entries = append(entries, fs.FileInfoToDirEntry(memInfo{child}))
		}
	}
	return entries, nil
}

// Open implements FileSystem.
func (m *Mem) Open(name string) (File, error) {
	n, err := m.lookup("open", name)
	if err != nil {
		return nil, err
	}
	if n.dir {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return memFile{bytes.NewReader(n.data)}, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

type memInfo struct {
	n *memNode
}

func (i memInfo) Name() string       { return i.n.name }
func (i memInfo) Size() int64        { return int64(len(i.n.data)) }
func (i memInfo) ModTime() time.Time { return i.n.modTime }
func (i memInfo) IsDir() bool        { return i.n.dir }
func (i memInfo) Sys() any           { return nil }

func (i memInfo) Mode() fs.FileMode {
	if i.n.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
