// Package errs defines the result kinds shared by every blobseq package and the
// fixed table of human-readable messages for them.
//
// Operations return a plain error. The error is always created from one of the
// kinds below, so callers can either test a single kind:
//
//	if errs.ErrEmpty.Is(err) { ... }
//
// or recover the discriminator and look its message up:
//
//	fmt.Println(errs.Message(errs.CodeOf(err)))
package errs

import (
	"errors"

	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Code is the result discriminator of an operation.
type Code int

const (
	NoError Code = iota
	ArgumentError
	MallocError
	EmptyError
	SizeError
	RangeError

	// Unknown is reported for errors that did not originate in blobseq.
	Unknown Code = -1
)

var (
	ErrArgument = goerrors.NewKind("invalid argument: %s")
	ErrMalloc   = goerrors.NewKind("cannot allocate %s")
	ErrEmpty    = goerrors.NewKind("%s on empty sequence")
	ErrSize     = goerrors.NewKind("size mismatch: stored %d bytes, requested %d")
	ErrRange    = goerrors.NewKind("index %d out of range [0, %d)")
)

var names = [...]string{
	NoError:       "NoError",
	ArgumentError: "ArgumentError",
	MallocError:   "MallocError",
	EmptyError:    "EmptyError",
	SizeError:     "SizeError",
	RangeError:    "RangeError",
}

var messages = [...]string{
	NoError:       "no error",
	ArgumentError: "invalid or missing argument",
	MallocError:   "memory allocation failed",
	EmptyError:    "operation requires a non-empty sequence",
	SizeError:     "element size does not match the requested size",
	RangeError:    "index is outside the valid range",
}

const invalidMessage = "invalid error"

var kinds = [...]*goerrors.Kind{
	ArgumentError: ErrArgument,
	MallocError:   ErrMalloc,
	EmptyError:    ErrEmpty,
	SizeError:     ErrSize,
	RangeError:    ErrRange,
}

// Valid reports whether c indexes the message table.
func (c Code) Valid() bool {
	return c >= 0 && int(c) < len(messages)
}

func (c Code) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return names[c]
}

// Kind returns the error kind for c, or nil for NoError and invalid codes.
func (c Code) Kind() *goerrors.Kind {
	if !c.Valid() {
		return nil
	}
	return kinds[c]
}

// Message returns the fixed description for c. Codes outside the table get a
// generic notice instead of an index past its end.
func Message(c Code) string {
	if !c.Valid() {
		return invalidMessage
	}
	return messages[c]
}

// CodeOf maps err back to its discriminator. A nil error is NoError.
func CodeOf(err error) Code {
	if err == nil {
		return NoError
	}
	var e *goerrors.Error
	if !errors.As(err, &e) {
		return Unknown
	}
	for c := ArgumentError; c <= RangeError; c++ {
		if kinds[c].Is(e) {
			return c
		}
	}
	return Unknown
}
