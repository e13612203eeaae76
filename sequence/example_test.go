package sequence_test

import (
	"fmt"

	"blobseq/errs"
	"blobseq/sequence"
)

func ExampleSequence() {
	s := sequence.New()
	defer s.Delete()

	for _, word := range []string{"alpha", "beta", "gamma"} {
		if err := s.Append([]byte(word)); err != nil {
			fmt.Println(err)
			return
		}
	}

	out := make([]byte, 4)
	if err := s.Get(1, out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(out))

	// asking for the wrong size is an error, not a truncation
	err := s.Get(0, out)
	fmt.Println(errs.CodeOf(err), "-", errs.Message(errs.CodeOf(err)))

	fmt.Println(s.Len(), s.Cap())

	// Output:
	// beta
	// SizeError - element size does not match the requested size
	// 3 8
}

func ExampleAppendValue() {
	s := sequence.New()
	defer s.Delete()

	for i := range uint64(3) {
		_ = sequence.AppendValue(s, i*100)
	}
	v, _ := sequence.TopValue[uint64](s)
	fmt.Println(v)

	// Output:
	// 200
}
