package bytebuf

// Iter starts a one-shot forward traversal over the unconsumed bytes,
// anchored at the buffer's current cursor. The traversal is exhausted once
// it reaches the end of the filled region; a new traversal must be started
// explicitly and re-anchors at the buffer's cursor at that time.
//
// The buffer must not be mutated while an iteration is in progress:
// [Iterator.Next] detects mutation and panics instead of reading through a
// possibly stale allocation.
func (b *Buffer) Iter() *Iterator {
	return &Iterator{
		buffer:  b,
		version: b.version,
	}
}

// Iterator is a lazy forward iterator over a Buffer's unconsumed bytes.
type Iterator struct {
	buffer  *Buffer
	pos     int
	version uint32
}

// Next returns the next byte and advances the iterator.
// It reports false once the iteration is exhausted.
func (it *Iterator) Next() (byte, bool) {
	if it.version != it.buffer.version {
		panic("bytebuf: buffer modified during iteration")
	}
	if it.pos >= it.buffer.Len() {
		return 0, false
	}

	c := it.buffer.block.Bytes()[it.buffer.start+it.pos]
	it.pos++

	return c, true
}
