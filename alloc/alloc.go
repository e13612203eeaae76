// Package alloc defines the allocation contract behind every owned buffer in
// blobseq, plus wrappers that count or limit allocations.
package alloc

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidSize = errors.New("allocation size must be positive")
	ErrExhausted   = errors.New("allocation budget exhausted")
)

// Allocator hands out element buffers and accounts for bookkeeping tables.
type Allocator interface {
	// Alloc returns a new zeroed buffer of exactly size bytes.
	Alloc(size int) ([]byte, error)
	// Free releases a buffer previously returned by Alloc.
	Free(buf []byte)
	// Reserve accounts for a table of the given number of slots before the
	// caller makes it.
	Reserve(slots int) error
	// Release undoes a Reserve of the same number of slots.
	Release(slots int)
}

// Heap delegates to the Go runtime. Free and Release are no-ops.
type Heap struct{}

func (Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return make([]byte, size), nil
}

func (Heap) Free([]byte) {}

func (Heap) Reserve(slots int) error {
	if slots < 0 {
		return ErrInvalidSize
	}
	return nil
}

func (Heap) Release(int) {}

// Default is used by every constructor unless overridden.
var Default Allocator = Heap{}
