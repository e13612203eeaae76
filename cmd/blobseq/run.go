package main

import (
	"strings"

	"github.com/sirupsen/logrus"

	"blobseq/sequence"
	"blobseq/strbuilder"
)

// buildText assembles the demo string:
//
//	"abc-xyz " x repeat, "() ", ten '0', " abc-<number>"
func buildText(cfg Config, opts []sequence.Option, logger logrus.FieldLogger) (string, sequence.Stats, error) {
	b := strbuilder.New(opts...)
	defer b.Delete()

	steps := []func() error{
		func() error { return b.AppendStringRepeated("abc-xyz ", cfg.Repeat) },
		func() error { return b.AppendChar('(') },
		func() error { return b.AppendChar(')') },
		func() error { return b.AppendChar(' ') },
		func() error { return b.AppendCharRepeated('0', 10) },
		func() error { return b.AppendFormatted(" abc-%d", cfg.Number) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return "", b.Stats(), err
		}
	}

	text, err := b.Text()
	stats := b.Stats()
	if err == nil {
		logger.WithFields(logrus.Fields{
			"length":   len(text),
			"capacity": stats.Capacity,
			"growths":  stats.Growths,
		}).Debug("text built")
	}
	return text, stats, err
}

// splitWords stores every space-separated word of text as one element.
func splitWords(text string, opts []sequence.Option) (*sequence.Sequence, error) {
	s := sequence.New(opts...)
	for _, w := range strings.Fields(text) {
		if err := s.Append([]byte(w)); err != nil {
			s.Delete()
			return nil, err
		}
	}
	return s, nil
}
