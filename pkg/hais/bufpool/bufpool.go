// Package bufpool provides fixed-size byte buffers for connection reads and
// file streaming, with hit/miss accounting.
package bufpool

import (
	"sync"
	"sync/atomic"
)

// ChunkSize is the size of the buffers used for request reads and for
// copying file bodies.
const ChunkSize = 4 * 1024

// Pool hands out buffers of exactly Size bytes.
//
// Design:
// - sync.Pool underneath, pointer-to-slice entries to avoid boxing
// - misses are counted in New, so hits = gets - misses
// - buffers with a smaller capacity are discarded on Put
type Pool struct {
	size int
	pool sync.Pool

	gets     atomic.Uint64
	puts     atomic.Uint64
	misses   atomic.Uint64
	discards atomic.Uint64
}

// New creates a pool of size-byte buffers.
func New(size int) *Pool {
	p := &Pool{size: size}
	p.pool.New = func() interface{} {
		p.misses.Add(1)
		buf := make([]byte, size)
		return &buf
	}
	return p
}

// Size returns the buffer size.
func (p *Pool) Size() int {
	return p.size
}

// Get returns a buffer of length Size.
func (p *Pool) Get() []byte {
	p.gets.Add(1)
	buf := *(p.pool.Get().(*[]byte))
	return buf[:p.size]
}

// Put returns buf to the pool.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}
	p.puts.Add(1)
	if cap(buf) < p.size {
		p.discards.Add(1)
		return
	}
	buf = buf[:p.size]
	p.pool.Put(&buf)
}

// Metrics is a point-in-time snapshot of pool activity.
type Metrics struct {
	Gets     uint64
	Puts     uint64
	Hits     uint64
	Misses   uint64
	Discards uint64
	HitRate  float64 // 0-100
}

// Metrics returns the current counters.
func (p *Pool) Metrics() Metrics {
	m := Metrics{
		Gets:     p.gets.Load(),
		Puts:     p.puts.Load(),
		Misses:   p.misses.Load(),
		Discards: p.discards.Load(),
	}
	if m.Gets > m.Misses {
		m.Hits = m.Gets - m.Misses
	}
	if m.Gets > 0 {
		m.HitRate = float64(m.Hits) / float64(m.Gets) * 100
	}
	return m
}

var chunks = New(ChunkSize)

// Chunks returns the process-wide ChunkSize pool.
func Chunks() *Pool {
	return chunks
}
