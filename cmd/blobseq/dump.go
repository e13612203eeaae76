package main

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"

	"blobseq/sequence"
)

type dumpNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []dumpNode `asciitree:"children"`
}

// dumpTree describes the layout of s: its bookkeeping, then one child per
// element with its size and contents.
func dumpTree(name string, s *sequence.Sequence) (dumpNode, error) {
	stats := s.Stats()
	root := dumpNode{
		Label: name,
		Props: []string{
			fmt.Sprintf("count: %d", stats.Count),
			fmt.Sprintf("capacity: %d", stats.Capacity),
			fmt.Sprintf("growths: %d", stats.Growths),
			fmt.Sprintf("bytes: %d", stats.Bytes),
		},
	}
	for i := range s.Len() {
		size, err := s.SizeAt(i)
		if err != nil {
			return root, err
		}
		buf := make([]byte, size)
		if err := s.Get(i, buf); err != nil {
			return root, err
		}
		root.Children = append(root.Children, dumpNode{
			Label: fmt.Sprintf("[%d]", i),
			Props: []string{
				fmt.Sprintf("size: %d", size),
				fmt.Sprintf("value: %q", buf),
			},
		})
	}
	return root, nil
}

func renderDump(name string, s *sequence.Sequence) (string, error) {
	root, err := dumpTree(name, s)
	if err != nil {
		return "", err
	}
	return asciitree.RenderFancy(root), nil
}
