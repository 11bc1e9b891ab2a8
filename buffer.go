package bytebuf

import (
	"github.com/pamburus/bytebuf/internal/block"
)

// Buffer is a contiguous byte container owning a single allocation.
// The zero value is an empty buffer with no allocation, ready for use.
type Buffer struct {
	block  block.Block
	start  int // bytes consumed from the front of the filled region
	filled int // initialized bytes, counted from the start of the allocation

	// version is bumped by every mutating operation and lets live iterators
	// detect mutation instead of reading through a stale allocation.
	version uint32
}

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return b.filled - b.start
}

// Remaining returns the number of unconsumed bytes.
// It is an alias for [Buffer.Len] in reader vocabulary.
func (b *Buffer) Remaining() int {
	return b.filled - b.start
}

// Cap returns the total number of allocated byte slots, filled or not.
func (b *Buffer) Cap() int {
	return b.block.Cap()
}

// Available returns the number of bytes that can be appended without growing.
func (b *Buffer) Available() int {
	return b.block.Cap() - b.filled
}

// Grow ensures the buffer has room for n more bytes. After Grow(n), at least
// n bytes can be appended without another allocation. Growth never moves the
// cursor and preserves all filled bytes. It panics with [ErrTooLarge] if the
// resulting size is not representable; any allocation failure is fatal.
func (b *Buffer) Grow(n int) {
	if n < 0 {
		panic(ErrTooLarge)
	}
	b.version++
	b.block.Ensure(b.filled, b.filled+n)
}

// AppendByte appends a single byte, growing if necessary. Amortized O(1).
func (b *Buffer) AppendByte(c byte) {
	b.version++
	b.block.Ensure(b.filled, b.filled+1)
	b.block.Bytes()[b.filled] = c
	b.filled++
}

// AppendBytes appends a byte slice in one pass, growing at most once.
// It either commits the whole input or, on a fatal allocation failure,
// nothing at all.
func (b *Buffer) AppendBytes(p []byte) {
	b.version++
	b.block.Ensure(b.filled, b.filled+len(p))
	copy(b.block.Bytes()[b.filled:], p)
	b.filled += len(p)
}

// AppendString appends a string.
func (b *Buffer) AppendString(s string) {
	b.version++
	b.block.Ensure(b.filled, b.filled+len(s))
	copy(b.block.Bytes()[b.filled:], s)
	b.filled += len(s)
}

// Get returns the byte at position i, counted from the cursor.
// It fails with an error wrapping [ErrOutOfBounds] if i is outside [0, Len()).
func (b *Buffer) Get(i int) (byte, error) {
	if i < 0 || i >= b.Len() {
		return 0, indexError(i, b.Len())
	}

	return b.block.Bytes()[b.start+i], nil
}

// At returns the byte at position i, counted from the cursor.
// It is the fail-fast counterpart of [Buffer.Get] and panics if i is out of
// range.
func (b *Buffer) At(i int) byte {
	if i < 0 || i >= b.Len() {
		panic(indexError(i, b.Len()))
	}

	return b.block.Bytes()[b.start+i]
}

// Slice returns a view over the unconsumed bytes [i, j), counted from the
// cursor. The view aliases the buffer's storage: it must not be used after
// any mutating call on the buffer. It fails with an error wrapping
// [ErrOutOfBounds] on an invalid range.
func (b *Buffer) Slice(i, j int) ([]byte, error) {
	if i < 0 || j < i || j > b.Len() {
		return nil, rangeError(i, j, b.Len())
	}

	return b.block.Bytes()[b.start+i : b.start+j], nil
}

// Bytes returns a view over all unconsumed bytes. Like [Buffer.Slice], the
// view is invalidated by any mutating call.
func (b *Buffer) Bytes() []byte {
	return b.block.Bytes()[b.start:b.filled]
}

// Advance consumes n leading bytes in O(1) without moving memory.
// It fails with an error wrapping [ErrOutOfBounds] if n exceeds [Buffer.Len],
// leaving the cursor unchanged.
func (b *Buffer) Advance(n int) error {
	if n < 0 || n > b.Len() {
		return advanceError(n, b.Len())
	}
	b.version++
	b.start += n

	return nil
}

// Tail returns the uninitialized region between the filled bytes and the end
// of the allocation. Bytes written there become visible after
// [Buffer.Commit]. The view is invalidated by any mutating call.
func (b *Buffer) Tail() []byte {
	return b.block.Bytes()[b.filled:]
}

// Commit marks n bytes of the tail as filled. It fails with an error wrapping
// [ErrOutOfBounds] if n exceeds [Buffer.Available].
func (b *Buffer) Commit(n int) error {
	if n < 0 || n > b.Available() {
		return commitError(n, b.Available())
	}
	b.version++
	b.filled += n

	return nil
}

// Extend grows the filled region by n zeroed bytes and returns the extension
// for direct writing. The returned slice is invalidated by any mutating call.
func (b *Buffer) Extend(n int) []byte {
	b.Grow(n)
	s := b.block.Bytes()[b.filled : b.filled+n]
	clear(s)
	b.filled += n

	return s
}

// Compact moves the unconsumed bytes to the front of the allocation,
// reclaiming the consumed prefix for future appends without growing.
// It is never performed implicitly.
func (b *Buffer) Compact() {
	if b.start == 0 {
		return
	}
	b.version++
	data := b.block.Bytes()
	copy(data, data[b.start:b.filled])
	b.filled -= b.start
	b.start = 0
}

// Reset forgets all content and the cursor while retaining the allocation
// and capacity, enabling cheap reuse across streaming cycles.
func (b *Buffer) Reset() {
	b.version++
	b.start = 0
	b.filled = 0
}

// Free resets the Buffer and returns it to the pool if its capacity is
// moderate, releasing the allocation otherwise. The Buffer must not be used
// after Free.
func (b *Buffer) Free() {
	const maxPooledCapacity = 64 << 10
	b.Reset()
	if c := b.block.Cap(); c > 0 && c <= maxPooledCapacity {
		bufPool.Put(b)
	} else {
		b.block.Release()
	}
}
