package alloc

// Limited lets a fixed number of Alloc and Reserve calls through and fails
// every call after that with ErrExhausted. It is used to exercise the
// out-of-memory paths.
type Limited struct {
	inner  Allocator
	budget int
}

// NewLimited returns an allocator that allows budget successful operations.
// A negative budget never fails.
func NewLimited(inner Allocator, budget int) *Limited {
	if inner == nil {
		inner = Default
	}
	return &Limited{inner: inner, budget: budget}
}

// SetBudget resets the number of operations still allowed.
func (l *Limited) SetBudget(n int) {
	l.budget = n
}

func (l *Limited) Budget() int {
	return l.budget
}

func (l *Limited) take() bool {
	if l.budget < 0 {
		return true
	}
	if l.budget == 0 {
		return false
	}
	l.budget--
	return true
}

func (l *Limited) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if !l.take() {
		return nil, ErrExhausted
	}
	return l.inner.Alloc(size)
}

func (l *Limited) Free(buf []byte) {
	l.inner.Free(buf)
}

func (l *Limited) Reserve(slots int) error {
	if !l.take() {
		return ErrExhausted
	}
	return l.inner.Reserve(slots)
}

func (l *Limited) Release(slots int) {
	l.inner.Release(slots)
}
