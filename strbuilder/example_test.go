package strbuilder_test

import (
	"fmt"

	"blobseq/strbuilder"
)

func ExampleBuilder() {
	b := strbuilder.New()
	defer b.Delete()

	_ = b.AppendStringRepeated("abc-xyz ", 3)
	_ = b.AppendChar('(')
	_ = b.AppendChar(')')
	_ = b.AppendChar(' ')
	_ = b.AppendCharRepeated('0', 10)
	_ = b.AppendFormatted(" abc-%d", 1000)

	s, err := b.Text()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)

	// Output:
	// abc-xyz abc-xyz abc-xyz () 0000000000 abc-1000
}

func ExampleBuilder_Build() {
	b := strbuilder.New()
	defer b.Delete()

	_ = b.AppendStringRepeated("ab", 2)
	_ = b.Set(0, 'X')

	buf, _ := b.Build()
	defer b.Release(buf)
	fmt.Printf("%q\n", buf)

	// Output:
	// "Xbab\x00"
}
