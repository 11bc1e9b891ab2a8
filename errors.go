package bytebuf

import (
	"errors"
	"fmt"

	"github.com/pamburus/bytebuf/internal/block"
)

var (
	// ErrOutOfBounds reports a position or range outside the valid logical
	// region. Errors returned by [Buffer.Get], [Buffer.Slice],
	// [Buffer.Advance] and [Buffer.Commit] wrap it.
	ErrOutOfBounds = errors.New("bytebuf: out of bounds")

	// ErrTooLarge is the panic value used when a buffer cannot grow to the
	// requested size. Allocation failures are fatal and never retried.
	ErrTooLarge = block.ErrTooLarge
)

// ---

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d of %d", ErrOutOfBounds, i, n)
}

func rangeError(i, j, n int) error {
	return fmt.Errorf("%w: range [%d:%d] of %d", ErrOutOfBounds, i, j, n)
}

func advanceError(n, remaining int) error {
	return fmt.Errorf("%w: advance %d with %d remaining", ErrOutOfBounds, n, remaining)
}

func commitError(n, available int) error {
	return fmt.Errorf("%w: commit %d with %d available", ErrOutOfBounds, n, available)
}
