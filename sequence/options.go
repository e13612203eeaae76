package sequence

import (
	"io"

	"github.com/sirupsen/logrus"

	"blobseq/alloc"
)

// DefaultChunk is the number of slots added each time a full Sequence grows.
const DefaultChunk = 8

// Growth decides the next capacity of a full Sequence.
type Growth interface {
	// Next returns the capacity to grow to from capacity. Results not larger
	// than capacity are treated as capacity+1.
	Next(capacity int) int
}

// GrowthFunc adapts a plain function to Growth.
type GrowthFunc func(capacity int) int

func (f GrowthFunc) Next(capacity int) int {
	return f(capacity)
}

type fixedChunk int

func (c fixedChunk) Next(capacity int) int {
	return capacity + int(c)
}

// FixedChunk grows capacity by exactly n slots. This is the default policy,
// with n = DefaultChunk. It costs a table reallocation every n appends.
func FixedChunk(n int) Growth {
	if n < 1 {
		n = 1
	}
	return fixedChunk(n)
}

type doubling int

func (d doubling) Next(capacity int) int {
	return max(int(d), 2*capacity)
}

// Doubling doubles capacity, starting at minimum slots.
func Doubling(minimum int) Growth {
	if minimum < 1 {
		minimum = 1
	}
	return doubling(minimum)
}

type config struct {
	alloc      alloc.Allocator
	growth     Growth
	log        logrus.FieldLogger
	legacySize bool
}

// Option configures a Sequence.
type Option func(*config)

// WithAllocator sets the allocator for element buffers and tables.
func WithAllocator(a alloc.Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.alloc = a
		}
	}
}

// WithGrowth replaces the fixed-chunk growth policy.
func WithGrowth(g Growth) Option {
	return func(c *config) {
		if g != nil {
			c.growth = g
		}
	}
}

// WithLogger sets the logger that receives growth events at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithLegacySizeCheck makes Get and Top compare the requested size with the
// size of the last element instead of the element being read.
func WithLegacySizeCheck() Option {
	return func(c *config) {
		c.legacySize = true
	}
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func newConfig(opts []Option) config {
	cfg := config{
		alloc:  alloc.Default,
		growth: FixedChunk(DefaultChunk),
		log:    discard,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
