// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
//
// FIFO byte-buffer free list. Buffers are recycled oldest-first so the
// working set stays hot under steady receive load.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/sockcore/control"
)

// DefaultChunk is the capacity given to freshly allocated buffers when
// the requested size is smaller.
const DefaultChunk = 65536

// maxIdle bounds how many buffers the free list retains.
const maxIdle = 64

// BytePool hands out byte slices of at least the requested size and
// takes them back for reuse.
type BytePool struct {
	mu    sync.Mutex
	free  *queue.Queue
	chunk int
}

// NewBytePool creates a pool whose fresh buffers have capacity chunk.
func NewBytePool(chunk int) *BytePool {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	return &BytePool{
		free:  queue.New(),
		chunk: chunk,
	}
}

// FromConfig creates a pool sized by the "pool.chunk" tunable and keeps
// following it across config reloads.
func FromConfig(cs *control.ConfigStore) *BytePool {
	p := NewBytePool(cs.GetInt("pool.chunk", DefaultChunk))
	cs.OnReload(func() {
		n := cs.GetInt("pool.chunk", DefaultChunk)
		p.mu.Lock()
		p.chunk = n
		p.mu.Unlock()
	})
	return p
}

// Get returns a slice of length size. Recycled buffers whose capacity
// is too small are discarded rather than grown.
func (p *BytePool) Get(size int) []byte {
	p.mu.Lock()
	for p.free.Length() > 0 {
		b := p.free.Remove().([]byte)
		if cap(b) >= size {
			p.mu.Unlock()
			return b[:size]
		}
	}
	chunk := p.chunk
	p.mu.Unlock()
	if size < chunk {
		return make([]byte, size, chunk)
	}
	return make([]byte, size)
}

// Put returns a buffer to the free list. The caller must not touch the
// slice afterwards.
func (p *BytePool) Put(b []byte) {
	if cap(b) == 0 {
		return
	}
	p.mu.Lock()
	if p.free.Length() < maxIdle {
		p.free.Add(b[:cap(b)])
	}
	p.mu.Unlock()
}

// Idle reports how many buffers are currently parked in the free list.
func (p *BytePool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Length()
}
