package bytebuf

import "io"

// minReadSize is the smallest tail offered to an [io.Reader] by ReadFrom.
const minReadSize = 512

// Write implements [io.Writer] by appending p.
func (b *Buffer) Write(p []byte) (int, error) {
	b.AppendBytes(p)

	return len(p), nil
}

// WriteByte implements [io.ByteWriter] by appending c.
func (b *Buffer) WriteByte(c byte) error {
	b.AppendByte(c)

	return nil
}

// WriteString implements [io.StringWriter] by appending s.
func (b *Buffer) WriteString(s string) (int, error) {
	b.AppendString(s)

	return len(s), nil
}

// Read implements [io.Reader] by copying unconsumed bytes into p and
// consuming them. It returns [io.EOF] when the buffer is drained.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.Len() == 0 {
		if len(p) == 0 {
			return 0, nil
		}

		return 0, io.EOF
	}

	n := copy(p, b.Bytes())
	b.version++
	b.start += n

	return n, nil
}

// ReadByte implements [io.ByteReader] by consuming a single byte.
func (b *Buffer) ReadByte() (byte, error) {
	if b.Len() == 0 {
		return 0, io.EOF
	}

	c := b.block.Bytes()[b.start]
	b.version++
	b.start++

	return c, nil
}

// WriteTo implements [io.WriterTo] by draining all unconsumed bytes into w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.Len() == 0 {
		return 0, nil
	}

	n, err := w.Write(b.Bytes())
	if n > b.Len() {
		panic("bytebuf: invalid write count")
	}
	b.version++
	b.start += n
	if err == nil && b.Len() > 0 {
		err = io.ErrShortWrite
	}

	return int64(n), err
}

// ReadFrom implements [io.ReaderFrom] by filling the buffer from r until EOF,
// growing as needed.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if b.Available() < minReadSize {
			b.Grow(minReadSize)
		}

		n, err := r.Read(b.Tail())
		if n < 0 {
			panic("bytebuf: invalid read count")
		}
		b.version++
		b.filled += n
		total += int64(n)

		switch err {
		case nil:
		case io.EOF:
			return total, nil
		default:
			return total, err
		}
	}
}
