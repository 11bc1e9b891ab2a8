package bytebuf_test

import (
	"testing"

	"github.com/pamburus/bytebuf"
	. "github.com/pamburus/go-tst/tst"
)

func TestIterator(tt *testing.T) {
	t := New(tt)

	collect := func(it *bytebuf.Iterator) []byte {
		var out []byte
		for {
			c, ok := it.Next()
			if !ok {
				return out
			}
			out = append(out, c)
		}
	}

	t.Run("Forward", func(t Test) {
		b := bytebuf.WithCapacity(8)
		b.AppendBytes([]byte("ABCDE"))
		t.Expect(collect(b.Iter())).To(Equal([]byte("ABCDE")))
	})

	t.Run("Empty", func(t Test) {
		b := bytebuf.WithCapacity(8)
		it := b.Iter()
		_, ok := it.Next()
		t.Expect(ok).To(BeFalse())
	})

	t.Run("AnchorsAtCursor", func(t Test) {
		b := bytebuf.WithCapacity(8)
		b.AppendBytes([]byte{65, 66, 67, 68})
		t.Expect(b.Advance(1)).To(BeNil())

		it := b.Iter()
		t.Expect(collect(it)).To(Equal([]byte{66, 67, 68}))

		_, ok := it.Next()
		t.Expect(ok).To(BeFalse())
	})

	t.Run("ExhaustedStaysExhausted", func(t Test) {
		b := bytebuf.WithCapacity(8)
		b.AppendBytes([]byte("AB"))

		it := b.Iter()
		t.Expect(collect(it)).To(Equal([]byte("AB")))
		for i := 0; i < 3; i++ {
			_, ok := it.Next()
			t.Expect(ok).To(BeFalse())
		}
	})

	t.Run("FreshIterationAfterDrain", func(t Test) {
		b := bytebuf.WithCapacity(8)
		b.AppendBytes([]byte("ABC"))
		t.Expect(b.Advance(3)).To(BeNil())

		_, ok := b.Iter().Next()
		t.Expect(ok).To(BeFalse())
	})

	t.Run("AfterGrowth", func(t Test) {
		b := bytebuf.WithCapacity(3)
		b.AppendBytes([]byte("ABCDEFGH"))
		t.Expect(collect(b.Iter())).To(Equal([]byte("ABCDEFGH")))
	})

	t.Run("MutationInvalidates", func(t Test) {
		b := bytebuf.WithCapacity(8)
		b.AppendBytes([]byte("ABC"))

		it := b.Iter()
		_, ok := it.Next()
		t.Expect(ok).To(BeTrue())

		b.AppendByte('D')
		t.Expect(recoverPanic(func() { it.Next() }) != nil).To(BeTrue())
	})

	t.Run("AdvanceInvalidates", func(t Test) {
		b := bytebuf.WithCapacity(8)
		b.AppendBytes([]byte("ABC"))

		it := b.Iter()
		t.Expect(b.Advance(1)).To(BeNil())
		t.Expect(recoverPanic(func() { it.Next() }) != nil).To(BeTrue())
	})

	t.Run("ResetInvalidates", func(t Test) {
		b := bytebuf.WithCapacity(8)
		b.AppendBytes([]byte("ABC"))

		it := b.Iter()
		b.Reset()
		t.Expect(recoverPanic(func() { it.Next() }) != nil).To(BeTrue())
	})
}
