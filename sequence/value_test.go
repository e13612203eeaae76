package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blobseq/errs"
	"blobseq/sequence"
)

type point struct {
	X, Y int32
}

func TestValue_Uint64(t *testing.T) {
	s := sequence.New()
	for _, v := range []uint64{0, 1, 1 << 40, ^uint64(0)} {
		require.NoError(t, sequence.AppendValue(s, v))
	}

	v, err := sequence.GetValue[uint64](s, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), v)

	top, err := sequence.TopValue[uint64](s)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), top)

	require.NoError(t, sequence.SetValue(s, 0, uint64(42)))
	v, err = sequence.GetValue[uint64](s, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	size, err := s.SizeAt(0)
	require.NoError(t, err)
	assert.Equal(t, 8, size)
}

func TestValue_Struct(t *testing.T) {
	s := sequence.New()
	require.NoError(t, sequence.AppendValue(s, point{X: -3, Y: 7}))

	p, err := sequence.GetValue[point](s, 0)
	require.NoError(t, err)
	assert.Equal(t, point{X: -3, Y: 7}, p)
}

func TestValue_SizeMismatch(t *testing.T) {
	s := sequence.New()
	require.NoError(t, sequence.AppendValue(s, uint32(7)))

	_, err := sequence.GetValue[uint64](s, 0)
	assert.True(t, errs.ErrSize.Is(err))

	_, err = sequence.TopValue[uint16](s)
	assert.True(t, errs.ErrSize.Is(err))

	_, err = sequence.GetValue[uint32](s, 1)
	assert.True(t, errs.ErrRange.Is(err))
}

func TestValue_NoFixedSize(t *testing.T) {
	s := sequence.New()

	err := sequence.AppendValue(s, 5) // int has no fixed binary size
	assert.True(t, errs.ErrArgument.Is(err))

	err = sequence.AppendValue(s, "text")
	assert.True(t, errs.ErrArgument.Is(err))

	err = sequence.AppendValue(s, struct{}{})
	assert.True(t, errs.ErrArgument.Is(err))

	assert.Equal(t, 0, s.Len())

	empty := sequence.New()
	_, err = sequence.TopValue[uint8](empty)
	assert.True(t, errs.ErrEmpty.Is(err))
}
