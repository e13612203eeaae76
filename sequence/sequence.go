package sequence

import (
	"github.com/sirupsen/logrus"

	"blobseq/alloc"
	"blobseq/errs"
)

// Sequence is a growable, index-addressable list of opaque byte elements.
// Each element is its own buffer, copied in on Append and Set and copied out
// on Get and Top. The caller's size is the length of the slice it passes, and
// reads must ask for exactly the stored size.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	items [][]byte // owned element buffers, len == capacity
	sizes []int    // recorded element sizes, len == capacity
	count int

	bytes   int
	growths int
	cfg     config
}

// Stats is a snapshot of a Sequence's bookkeeping.
type Stats struct {
	Count    int
	Capacity int
	Growths  int // reallocations of a non-empty table since creation or the last Delete
	Bytes    int // total size of live elements
}

// New returns an empty Sequence with no reserved slots.
func New(opts ...Option) *Sequence {
	return &Sequence{cfg: newConfig(opts)}
}

func (s *Sequence) Len() int {
	return s.count
}

func (s *Sequence) Cap() int {
	return len(s.items)
}

func (s *Sequence) IsEmpty() bool {
	return s.count == 0
}

func (s *Sequence) Stats() Stats {
	return Stats{
		Count:    s.count,
		Capacity: len(s.items),
		Growths:  s.growths,
		Bytes:    s.bytes,
	}
}

// SizeAt returns the stored size of the element at index.
func (s *Sequence) SizeAt(index int) (int, error) {
	if err := s.checkRange(index); err != nil {
		return 0, err
	}
	return s.sizes[index], nil
}

// Append copies item into a new element at the end of the sequence.
// On any allocation failure the sequence is left as it was.
func (s *Sequence) Append(item []byte) error {
	if item == nil {
		return errs.ErrArgument.New("nil item")
	}
	if len(item) == 0 {
		return errs.ErrArgument.New("zero-sized item")
	}

	items, sizes := s.items, s.sizes
	grown := s.count == len(s.items)
	if grown {
		var err error
		if items, sizes, err = s.grow(); err != nil {
			return err
		}
	}

	buf, err := s.cfg.alloc.Alloc(len(item))
	if err != nil {
		if grown {
			s.cfg.alloc.Release(len(items))
			s.cfg.alloc.Release(len(sizes))
			s.cfg.log.WithFields(logrus.Fields{
				"count":    s.count,
				"capacity": len(s.items),
			}).Debug("element allocation failed, growth rolled back")
		}
		return errs.ErrMalloc.Wrap(err, "element buffer")
	}
	copy(buf, item)

	if grown {
		s.commit(items, sizes)
	}
	s.items[s.count] = buf
	s.sizes[s.count] = len(buf)
	s.count++
	s.bytes += len(buf)
	return nil
}

// grow reserves and fills the next pair of tables without installing them.
func (s *Sequence) grow() ([][]byte, []int, error) {
	oldCap := len(s.items)
	newCap := s.cfg.growth.Next(oldCap)
	if newCap <= oldCap {
		newCap = oldCap + 1
	}

	if err := s.cfg.alloc.Reserve(newCap); err != nil {
		return nil, nil, errs.ErrMalloc.Wrap(err, "element table")
	}
	if err := s.cfg.alloc.Reserve(newCap); err != nil {
		s.cfg.alloc.Release(newCap)
		return nil, nil, errs.ErrMalloc.Wrap(err, "size table")
	}

	items := make([][]byte, newCap)
	sizes := make([]int, newCap)
	// element buffers are re-pointed, never copied
	copy(items, s.items[:s.count])
	copy(sizes, s.sizes[:s.count])
	return items, sizes, nil
}

func (s *Sequence) commit(items [][]byte, sizes []int) {
	oldCap := len(s.items)
	if oldCap > 0 {
		s.cfg.alloc.Release(oldCap)
		s.cfg.alloc.Release(oldCap)
	}
	s.items, s.sizes = items, sizes
	if oldCap > 0 {
		s.growths++
	}
	s.cfg.log.WithFields(logrus.Fields{
		"count": s.count,
		"from":  oldCap,
		"to":    len(items),
	}).Debug("sequence grew")
}

// Top copies the last element into out.
func (s *Sequence) Top(out []byte) error {
	if s.count == 0 {
		return errs.ErrEmpty.New("top")
	}
	last := s.count - 1
	if err := s.checkSize(last, len(out)); err != nil {
		return err
	}
	copy(out, s.items[last])
	return nil
}

// Pop releases the last element. Capacity is not reduced.
func (s *Sequence) Pop() error {
	if s.count == 0 {
		return errs.ErrEmpty.New("pop")
	}
	s.count--
	s.release(s.count)
	return nil
}

// Get copies the element at index into out.
func (s *Sequence) Get(index int, out []byte) error {
	if err := s.checkRange(index); err != nil {
		return err
	}
	if err := s.checkSize(index, len(out)); err != nil {
		return err
	}
	copy(out, s.items[index])
	return nil
}

// Set replaces the element at index with a copy of item. The new buffer is
// allocated before the old one is released, so a failed Set leaves the slot
// untouched. Set may change the element's size.
func (s *Sequence) Set(index int, item []byte) error {
	if err := s.checkRange(index); err != nil {
		return err
	}
	if item == nil {
		return errs.ErrArgument.New("nil item")
	}
	if len(item) == 0 {
		return errs.ErrArgument.New("zero-sized item")
	}

	buf, err := s.cfg.alloc.Alloc(len(item))
	if err != nil {
		return errs.ErrMalloc.Wrap(err, "element buffer")
	}
	copy(buf, item)

	s.release(index)
	s.items[index] = buf
	s.sizes[index] = len(buf)
	s.bytes += len(buf)
	return nil
}

// Delete releases every element and both tables, leaving an empty Sequence
// that can be reused. Deleting an empty Sequence is a no-op.
func (s *Sequence) Delete() {
	for i := range s.count {
		s.release(i)
	}
	if c := len(s.items); c > 0 {
		s.cfg.alloc.Release(c)
		s.cfg.alloc.Release(c)
	}
	s.items = nil
	s.sizes = nil
	s.count = 0
	s.bytes = 0
	s.growths = 0
}

func (s *Sequence) release(index int) {
	s.cfg.alloc.Free(s.items[index])
	s.bytes -= s.sizes[index]
	s.items[index] = nil
	s.sizes[index] = 0
}

func (s *Sequence) checkRange(index int) error {
	if index < 0 || index >= s.count {
		return errs.ErrRange.New(index, s.count)
	}
	return nil
}

func (s *Sequence) checkSize(index, size int) error {
	stored := s.sizes[index]
	if s.cfg.legacySize {
		stored = s.sizes[s.count-1]
	}
	if stored != size {
		return errs.ErrSize.New(stored, size)
	}
	return nil
}

// Allocator returns the allocator that backs the sequence's buffers.
func (s *Sequence) Allocator() alloc.Allocator {
	return s.cfg.alloc
}
