package alloc

// Counting wraps an Allocator and tracks every buffer and table it hands out,
// so tests can assert that each allocation is released exactly once.
// It is not safe for concurrent use.
type Counting struct {
	inner Allocator
	live  map[*byte]int

	Allocs    int // successful Alloc calls
	Frees     int // Free calls that matched a live buffer
	BadFrees  int // Free calls on unknown or already freed buffers
	Bytes     int // total bytes ever allocated
	LiveBytes int
	Reserves  int // successful Reserve calls
	Releases  int
	LiveSlots int
	PeakSlots int
	FailedOps int // Alloc or Reserve calls rejected by the inner allocator
}

func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Default
	}
	return &Counting{
		inner: inner,
		live:  make(map[*byte]int),
	}
}

func (c *Counting) Alloc(size int) ([]byte, error) {
	buf, err := c.inner.Alloc(size)
	if err != nil {
		c.FailedOps++
		return nil, err
	}
	c.Allocs++
	c.Bytes += size
	c.LiveBytes += size
	c.live[&buf[0]] = size
	return buf, nil
}

func (c *Counting) Free(buf []byte) {
	if len(buf) == 0 {
		c.BadFrees++
		return
	}
	size, ok := c.live[&buf[0]]
	if !ok {
		c.BadFrees++
		return
	}
	delete(c.live, &buf[0])
	c.Frees++
	c.LiveBytes -= size
	c.inner.Free(buf)
}

func (c *Counting) Reserve(slots int) error {
	if err := c.inner.Reserve(slots); err != nil {
		c.FailedOps++
		return err
	}
	c.Reserves++
	c.LiveSlots += slots
	c.PeakSlots = max(c.PeakSlots, c.LiveSlots)
	return nil
}

func (c *Counting) Release(slots int) {
	c.Releases++
	c.LiveSlots -= slots
	c.inner.Release(slots)
}

// Live returns the number of buffers allocated and not yet freed.
func (c *Counting) Live() int {
	return len(c.live)
}

// Balanced reports whether every buffer and table has been released exactly
// once.
func (c *Counting) Balanced() bool {
	return len(c.live) == 0 && c.BadFrees == 0 && c.LiveSlots == 0 && c.Reserves == c.Releases
}
