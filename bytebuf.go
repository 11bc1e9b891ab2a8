// Package bytebuf provides a growable contiguous byte buffer with a
// consumption cursor.
// It focuses on write-heavy single-owner workloads: repeated small appends,
// occasional bulk appends, prefix draining without copying, and cheap reuse
// without deallocation.
//
// A [Buffer] is addressed relative to its cursor: index 0 is always the first
// byte not yet consumed by [Buffer.Advance]. A Buffer is not safe for
// concurrent use, and views returned by [Buffer.Slice] and [Buffer.Bytes]
// alias its storage and must not be used after any mutating call.
package bytebuf

import (
	"sync"

	"github.com/pamburus/bytebuf/internal/block"
)

// DefaultCapacity is the initial capacity of buffers returned by [New].
const DefaultCapacity = 1024

// New creates a new instance of Buffer or gets an existing one from a pool.
func New() *Buffer {
	return bufPool.Get().(*Buffer)
}

// WithCapacity returns a new Buffer pre-allocating storage for n bytes.
// A zero n allocates nothing until the first append.
func WithCapacity(n int) *Buffer {
	return &Buffer{block: block.New(n)}
}

// ---

var bufPool = sync.Pool{
	New: func() any {
		return WithCapacity(DefaultCapacity)
	},
}
