// Command blobseq assembles a demo string with a strbuilder.Builder, prints it
// and optionally dumps the layout of a sequence built from its words.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"blobseq/alloc"
	"blobseq/errs"
	"blobseq/sequence"
	"blobseq/usage"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const summary = `Builds "abc-xyz " repeated, "() ", ten zeros and " abc-<number>" one byte at a
time, then prints the result.`

func newParser() *usage.Parser {
	return usage.NewParser("blobseq", summary).
		SupportsString("config", "c", "file", "Read settings from a YAML file").
		SupportsInt("chunk", "", "n", "Slots added when a sequence grows").
		SupportsFlag("doubling", "", "Double capacity instead of adding fixed chunks").
		SupportsFlag("legacy-size", "", "Check read sizes against the last element").
		SupportsInt("repeat", "r", "n", "How many times to repeat \"abc-xyz \"").
		SupportsInt("number", "n", "n", "Number formatted at the end").
		SupportsFlag("dump", "d", "Print the words of the result as a sequence tree").
		SupportsFlag("stats", "s", "Print allocation statistics").
		SupportsFlag("verbose", "v", "Log sequence growth").
		SupportsFlag("version", "", "Print the version and exit")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	parser := newParser()
	defer parser.Delete()

	printUsage := func() {
		text, err := parser.Usage()
		if err != nil {
			fmt.Fprintln(stderr, color.RedString("error: %s", errs.Message(errs.CodeOf(err))))
			return
		}
		fmt.Fprint(stderr, text)
	}
	fail := func(err error) int {
		fmt.Fprintln(stderr, color.RedString("error: %s", describe(err)))
		printUsage()
		return 1
	}

	res, err := parser.Parse(args)
	if errors.Is(err, usage.ErrHelp) {
		printUsage()
		return 0
	}
	if err != nil {
		return fail(err)
	}
	if res.Has("version") {
		fmt.Fprintf(stdout, "blobseq version %s\n", Version)
		return 0
	}
	if len(res.Args) > 0 {
		return fail(errs.ErrArgument.New(fmt.Sprintf("unexpected arguments %q", res.Args)))
	}

	cfg, err := LoadConfig(res.ValueOrDefault("config", ""))
	if err != nil {
		return fail(err)
	}
	if err := applyOptions(&cfg, res); err != nil {
		return fail(err)
	}

	logger := cfg.NewLogger()
	logger.SetOutput(stderr)
	counter := alloc.NewCounting(nil)
	opts := append(cfg.SequenceOptions(logger), sequence.WithAllocator(counter))

	text, stats, err := buildText(cfg, opts, logger)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, text)

	if res.Has("dump") {
		words, err := splitWords(text, opts)
		if err != nil {
			return fail(err)
		}
		tree, err := renderDump("words", words)
		words.Delete()
		if err != nil {
			return fail(err)
		}
		fmt.Fprint(stdout, tree)
	}

	if res.Has("stats") {
		fmt.Fprintf(stdout, "builder: %s elements, capacity %d, %d growths\n",
			humanize.Comma(int64(stats.Count)), stats.Capacity, stats.Growths)
		fmt.Fprintf(stdout, "allocations: %s (%s), released: %s, live: %d\n",
			humanize.Comma(int64(counter.Allocs)), humanize.Bytes(uint64(counter.Bytes)),
			humanize.Comma(int64(counter.Frees)), counter.Live())
	}
	if !counter.Balanced() {
		logger.WithField("live", counter.Live()).Warn("buffers still allocated at exit")
	}
	return 0
}

// applyOptions overrides cfg with the options given on the command line.
func applyOptions(cfg *Config, res *usage.Results) error {
	var err error
	if cfg.Chunk, err = res.Int("chunk", cfg.Chunk); err != nil {
		return err
	}
	if cfg.Repeat, err = res.Int("repeat", cfg.Repeat); err != nil {
		return err
	}
	if cfg.Number, err = res.Int("number", cfg.Number); err != nil {
		return err
	}
	if res.Has("doubling") {
		cfg.Growth = GrowthDoubling
	}
	if res.Has("legacy-size") {
		cfg.LegacySizeCheck = true
	}
	if res.Has("verbose") {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return errs.ErrArgument.Wrap(err, err.Error())
	}
	return nil
}

// describe turns err into the one-line message shown to the user: the table
// message for blobseq errors, the error text for everything else.
func describe(err error) string {
	code := errs.CodeOf(err)
	if code == errs.Unknown {
		return err.Error()
	}
	return fmt.Sprintf("%s (%v)", errs.Message(code), err)
}
