// Package block holds the single heap allocation backing a buffer
// and the policy deciding how that allocation grows.
package block

import "errors"

// ErrTooLarge is the panic value used when a requested size cannot be
// represented or allocated.
var ErrTooLarge = errors.New("bytebuf: buffer too large")

// NextCap returns the capacity to allocate so that at least required bytes
// fit. Growth is 1.5x rounded up, which bounds both over-allocation and
// reallocation frequency better than doubling for append-heavy workloads.
// A zero capacity grows to exactly required.
func NextCap(cap, required int) int {
	if cap == 0 {
		return required
	}
	grown := cap + (cap+1)/2
	if grown < required {
		return required
	}

	return grown
}

// Block owns exactly one allocation. The slice length is always the current
// capacity; the owner tracks how much of it is initialized.
type Block struct {
	data []byte
}

// New returns a Block with capacity n. A zero n allocates nothing.
func New(n int) Block {
	if n == 0 {
		return Block{}
	}

	return Block{data: make([]byte, n)}
}

// Cap returns the current capacity.
func (b *Block) Cap() int {
	return len(b.data)
}

// Bytes returns the whole allocation, initialized or not.
func (b *Block) Bytes() []byte {
	return b.data
}

// Ensure guarantees capacity for required bytes, preserving the first filled
// bytes exactly. The Go allocator cannot extend a block in place, so growth
// is always allocate-and-copy. Ensure panics with [ErrTooLarge] if required
// overflows the int arithmetic of the caller.
func (b *Block) Ensure(filled, required int) {
	if required < 0 {
		panic(ErrTooLarge)
	}
	if required <= len(b.data) {
		return
	}

	next := make([]byte, NextCap(len(b.data), required))
	copy(next, b.data[:filled])
	b.data = next
}

// Release drops the allocation reference.
func (b *Block) Release() {
	b.data = nil
}
