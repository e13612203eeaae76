package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blobseq/alloc"
)

func TestHeap(t *testing.T) {
	var h alloc.Heap
	buf, err := h.Alloc(16)
	require.NoError(t, err)
	assert.Len(t, buf, 16)
	assert.Equal(t, make([]byte, 16), buf)

	_, err = h.Alloc(0)
	assert.ErrorIs(t, err, alloc.ErrInvalidSize)
	assert.NoError(t, h.Reserve(8))
	assert.ErrorIs(t, h.Reserve(-1), alloc.ErrInvalidSize)
}

func TestCounting(t *testing.T) {
	c := alloc.NewCounting(nil)
	a, err := c.Alloc(4)
	require.NoError(t, err)
	b, err := c.Alloc(6)
	require.NoError(t, err)
	require.NoError(t, c.Reserve(8))

	assert.Equal(t, 2, c.Live())
	assert.Equal(t, 10, c.LiveBytes)
	assert.Equal(t, 8, c.LiveSlots)
	assert.False(t, c.Balanced())

	c.Free(a)
	c.Free(a) // double free is recorded, not applied twice
	c.Free(b)
	c.Release(8)

	assert.Equal(t, 0, c.Live())
	assert.Equal(t, 2, c.Frees)
	assert.Equal(t, 1, c.BadFrees)
	assert.Equal(t, 10, c.Bytes)
	assert.Equal(t, 8, c.PeakSlots)
	assert.False(t, c.Balanced(), "a double free must unbalance the counter")
}

func TestCounting_ForeignFree(t *testing.T) {
	c := alloc.NewCounting(nil)
	c.Free(make([]byte, 3))
	c.Free(nil)
	assert.Equal(t, 2, c.BadFrees)
	assert.Equal(t, 0, c.Frees)
}

func TestLimited(t *testing.T) {
	l := alloc.NewLimited(nil, 2)
	c := alloc.NewCounting(l)

	_, err := c.Alloc(1)
	require.NoError(t, err)
	require.NoError(t, c.Reserve(4))
	assert.Equal(t, 0, l.Budget())

	_, err = c.Alloc(1)
	assert.ErrorIs(t, err, alloc.ErrExhausted)
	assert.ErrorIs(t, c.Reserve(4), alloc.ErrExhausted)
	assert.Equal(t, 2, c.FailedOps)
	assert.Equal(t, 1, c.Allocs)
	assert.Equal(t, 1, c.Reserves)

	l.SetBudget(-1)
	for range 100 {
		_, err := c.Alloc(1)
		require.NoError(t, err)
	}
}
