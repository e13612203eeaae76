package sequence

import (
	"encoding/binary"
	"fmt"

	"blobseq/errs"
)

// The helpers below store fixed-size values (integers, floats, arrays and
// structs of those) as elements, encoded little-endian with encoding/binary.
// The element size is binary.Size of the type, so reading an element back as a
// type of a different size fails with a size error.

func encodeValue[T any](v T) ([]byte, error) {
	n := binary.Size(v)
	if n <= 0 {
		return nil, errs.ErrArgument.New(fmt.Sprintf("%T has no fixed binary size", v))
	}
	return binary.Append(make([]byte, 0, n), binary.LittleEndian, v)
}

func valueBuffer[T any](v *T) ([]byte, error) {
	n := binary.Size(v)
	if n <= 0 {
		return nil, errs.ErrArgument.New(fmt.Sprintf("%T has no fixed binary size", *v))
	}
	return make([]byte, n), nil
}

func decodeValue[T any](buf []byte, v *T) error {
	if _, err := binary.Decode(buf, binary.LittleEndian, v); err != nil {
		return errs.ErrArgument.Wrap(err, fmt.Sprintf("decode %T", *v))
	}
	return nil
}

// AppendValue appends the binary encoding of v.
func AppendValue[T any](s *Sequence, v T) error {
	buf, err := encodeValue(v)
	if err != nil {
		return err
	}
	return s.Append(buf)
}

// SetValue replaces the element at index with the binary encoding of v.
func SetValue[T any](s *Sequence, index int, v T) error {
	buf, err := encodeValue(v)
	if err != nil {
		return err
	}
	return s.Set(index, buf)
}

// GetValue decodes the element at index as a T.
func GetValue[T any](s *Sequence, index int) (T, error) {
	var v T
	buf, err := valueBuffer(&v)
	if err != nil {
		return v, err
	}
	if err := s.Get(index, buf); err != nil {
		return v, err
	}
	err = decodeValue(buf, &v)
	return v, err
}

// TopValue decodes the last element as a T.
func TopValue[T any](s *Sequence) (T, error) {
	var v T
	buf, err := valueBuffer(&v)
	if err != nil {
		return v, err
	}
	if err := s.Top(buf); err != nil {
		return v, err
	}
	err = decodeValue(buf, &v)
	return v, err
}
