// Package strbuilder assembles text one byte at a time on top of a
// sequence.Sequence and materializes it as a single NUL-terminated buffer.
package strbuilder

import (
	"fmt"

	"blobseq/errs"
	"blobseq/sequence"
)

// Builder accumulates bytes in a Sequence whose elements are all one byte
// long. The zero value is not usable; call New.
type Builder struct {
	seq *sequence.Sequence
}

// New returns an empty Builder. The options configure the backing Sequence.
func New(opts ...sequence.Option) *Builder {
	return &Builder{seq: sequence.New(opts...)}
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return b.seq.Len()
}

func (b *Builder) Stats() sequence.Stats {
	return b.seq.Stats()
}

func (b *Builder) AppendChar(ch byte) error {
	return b.seq.Append([]byte{ch})
}

// AppendCharRepeated appends ch n times.
func (b *Builder) AppendCharRepeated(ch byte, n int) error {
	if n < 0 {
		return errs.ErrArgument.New(fmt.Sprintf("negative repeat count %d", n))
	}
	mark := b.seq.Len()
	for range n {
		if err := b.AppendChar(ch); err != nil {
			b.truncate(mark)
			return err
		}
	}
	return nil
}

func (b *Builder) AppendString(s string) error {
	return b.AppendStringRepeated(s, 1)
}

// AppendStringRepeated appends the whole of s, n times over.
func (b *Builder) AppendStringRepeated(s string, n int) error {
	if n < 0 {
		return errs.ErrArgument.New(fmt.Sprintf("negative repeat count %d", n))
	}
	mark := b.seq.Len()
	for range n {
		for i := 0; i < len(s); i++ {
			if err := b.AppendChar(s[i]); err != nil {
				b.truncate(mark)
				return err
			}
		}
	}
	return nil
}

// AppendBytes appends p. Unlike a string, p may be nil, which is rejected.
func (b *Builder) AppendBytes(p []byte) error {
	return b.AppendBytesRepeated(p, 1)
}

func (b *Builder) AppendBytesRepeated(p []byte, n int) error {
	if p == nil {
		return errs.ErrArgument.New("nil bytes")
	}
	return b.AppendStringRepeated(string(p), n)
}

// AppendFormatted appends fmt.Sprintf(format, args...). The text is measured
// first, rendered into a scratch buffer of exactly that size taken from the
// sequence's allocator, then copied in byte by byte.
func (b *Builder) AppendFormatted(format string, args ...any) error {
	var m meter
	fmt.Fprintf(&m, format, args...)
	n := int(m)

	a := b.seq.Allocator()
	scratch, err := a.Alloc(n + 1)
	if err != nil {
		return errs.ErrMalloc.Wrap(err, fmt.Sprintf("%d byte format buffer", n+1))
	}
	defer a.Free(scratch)

	out := fmt.Appendf(scratch[:0], format, args...)
	if len(out) != n {
		// an argument rendered differently on the second pass
		return errs.ErrSize.New(n, len(out))
	}

	mark := b.seq.Len()
	for _, ch := range out {
		if err := b.AppendChar(ch); err != nil {
			b.truncate(mark)
			return err
		}
	}
	return nil
}

// Get returns the byte at index.
func (b *Builder) Get(index int) (byte, error) {
	var ch [1]byte
	if err := b.seq.Get(index, ch[:]); err != nil {
		return 0, err
	}
	return ch[0], nil
}

// Set overwrites the byte at index.
func (b *Builder) Set(index int, ch byte) error {
	return b.seq.Set(index, []byte{ch})
}

// Build copies the accumulated bytes into one buffer of Len()+1 bytes whose
// last byte is zero. The buffer belongs to the caller, who may hand it back
// with Release; later changes to the Builder do not affect it.
func (b *Builder) Build() ([]byte, error) {
	n := b.seq.Len()
	a := b.seq.Allocator()
	buf, err := a.Alloc(n + 1)
	if err != nil {
		return nil, errs.ErrMalloc.Wrap(err, fmt.Sprintf("%d byte string", n+1))
	}
	for i := range n {
		if err := b.seq.Get(i, buf[i:i+1]); err != nil {
			a.Free(buf)
			return nil, err
		}
	}
	buf[n] = 0
	return buf, nil
}

// Text builds the text and returns it without the terminator.
func (b *Builder) Text() (string, error) {
	buf, err := b.Build()
	if err != nil {
		return "", err
	}
	s := string(buf[:len(buf)-1])
	b.Release(buf)
	return s, nil
}

// Release returns a buffer obtained from Build to the allocator.
func (b *Builder) Release(buf []byte) {
	if buf != nil {
		b.seq.Allocator().Free(buf)
	}
}

// Delete releases the backing storage. Buffers returned by Build are not
// affected.
func (b *Builder) Delete() {
	b.seq.Delete()
}

func (b *Builder) truncate(n int) {
	for b.seq.Len() > n {
		_ = b.seq.Pop()
	}
}

// meter counts the bytes written to it.
type meter int

func (m *meter) Write(p []byte) (int, error) {
	*m += meter(len(p))
	return len(p), nil
}
