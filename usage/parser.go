package usage

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"blobseq/errs"
	"blobseq/sequence"
	"blobseq/strbuilder"
)

const (
	helpFlag       = "help"
	helpFlagAbbrev = "h"
)

// ErrHelp is returned by Parse when --help or -h is given.
var ErrHelp = errors.New("help requested")

// Parser holds the supported options of one command in registration order.
type Parser struct {
	Name    string
	Summary string

	options []*Option
	order   *sequence.Sequence // uint64 indexes into options
	byName  map[string]int
	seqOpts []sequence.Option
	err     error
}

// NewParser creates a parser for the named command. The options configure the
// option table and the builder used by Usage.
func NewParser(name, summary string, opts ...sequence.Option) *Parser {
	return &Parser{
		Name:    name,
		Summary: summary,
		order:   sequence.New(opts...),
		byName:  make(map[string]int),
		seqOpts: opts,
	}
}

// SupportOption adds opt. Names and abbreviations must be unique; the first
// registration problem is reported by Parse and Usage.
func (p *Parser) SupportOption(opt *Option) *Parser {
	if p.err != nil {
		return p
	}
	if err := p.validate(opt); err != nil {
		p.err = err
		return p
	}

	idx := len(p.options)
	if err := sequence.AppendValue(p.order, uint64(idx)); err != nil {
		p.err = err
		return p
	}
	p.options = append(p.options, opt)
	p.byName[opt.Name] = idx
	if opt.Abbrev != "" {
		p.byName[opt.Abbrev] = idx
	}
	return p
}

func (p *Parser) validate(opt *Option) error {
	switch {
	case opt == nil || opt.Name == "":
		return errs.ErrArgument.New("option name is required")
	case opt.Name == helpFlag || opt.Name == helpFlagAbbrev || opt.Abbrev == helpFlag || opt.Abbrev == helpFlagAbbrev:
		return errs.ErrArgument.New(`"help" and "h" are reserved`)
	case strings.HasPrefix(opt.Name, "-") || strings.HasPrefix(opt.Abbrev, "-"):
		return errs.ErrArgument.New("option names must not start with -")
	case strings.ContainsAny(opt.Name, " =\t"):
		return errs.ErrArgument.New(fmt.Sprintf("option name %q contains an invalid character", opt.Name))
	}
	if _, ok := p.byName[opt.Name]; ok {
		return errs.ErrArgument.New(fmt.Sprintf("duplicate option %q", opt.Name))
	}
	if _, ok := p.byName[opt.Abbrev]; ok && opt.Abbrev != "" {
		return errs.ErrArgument.New(fmt.Sprintf("duplicate option %q", opt.Abbrev))
	}
	return nil
}

func (p *Parser) SupportsFlag(name, abbrev, desc string) *Parser {
	return p.SupportOption(&Option{Name: name, Abbrev: abbrev, Desc: desc, Kind: Flag})
}

func (p *Parser) SupportsString(name, abbrev, valDesc, desc string) *Parser {
	return p.SupportOption(&Option{Name: name, Abbrev: abbrev, ValDesc: valDesc, Desc: desc, Kind: Value})
}

func (p *Parser) SupportsInt(name, abbrev, valDesc, desc string) *Parser {
	return p.SupportOption(&Option{Name: name, Abbrev: abbrev, ValDesc: valDesc, Desc: desc, Kind: Value, Validator: isIntStr})
}

// Options returns the supported options in registration order.
func (p *Parser) Options() ([]*Option, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make([]*Option, 0, p.order.Len())
	for i := range p.order.Len() {
		idx, err := sequence.GetValue[uint64](p.order, i)
		if err != nil {
			return nil, err
		}
		out = append(out, p.options[idx])
	}
	return out, nil
}

// Parse reads options and positional arguments from args. Everything after a
// bare "--" is positional.
func (p *Parser) Parse(args []string) (*Results, error) {
	if p.err != nil {
		return nil, p.err
	}
	res := &Results{values: make(map[string]string)}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			res.Args = append(res.Args, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			res.Args = append(res.Args, arg)
			continue
		}

		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		value, hasValue := "", false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value, hasValue = name[:eq], name[eq+1:], true
		}
		if name == helpFlag || name == helpFlagAbbrev {
			return nil, ErrHelp
		}

		idx, ok := p.byName[name]
		if !ok {
			return nil, errs.ErrArgument.New(fmt.Sprintf("unknown option %q", arg))
		}
		opt := p.options[idx]

		switch opt.Kind {
		case Flag:
			if hasValue {
				return nil, errs.ErrArgument.New(fmt.Sprintf("flag --%s does not take a value", opt.Name))
			}
		case Value:
			if !hasValue {
				if i+1 >= len(args) {
					return nil, errs.ErrArgument.New(fmt.Sprintf("option --%s requires a value", opt.Name))
				}
				i++
				value = args[i]
			}
			if opt.Validator != nil {
				if err := opt.Validator(value); err != nil {
					return nil, err
				}
			}
		}
		res.values[opt.Name] = value
	}
	return res, nil
}

// Usage renders the help text: a usage line, the summary and one aligned line
// per option.
func (p *Parser) Usage() (string, error) {
	opts, err := p.Options()
	if err != nil {
		return "", err
	}
	help := &Option{Name: helpFlag, Abbrev: helpFlagAbbrev, Desc: "Show this help", Kind: Flag}
	opts = append(opts, help)

	width := 0
	for _, opt := range opts {
		width = max(width, len(opt.left()))
	}

	b := strbuilder.New(p.seqOpts...)
	defer b.Delete()

	if err := b.AppendFormatted("usage: %s [options] [args...]\n", p.Name); err != nil {
		return "", err
	}
	if p.Summary != "" {
		if err := b.AppendFormatted("\n%s\n", p.Summary); err != nil {
			return "", err
		}
	}
	if err := b.AppendString("\noptions:\n"); err != nil {
		return "", err
	}
	for _, opt := range opts {
		left := opt.left()
		if err := b.AppendFormatted("  %s", left); err != nil {
			return "", err
		}
		if err := b.AppendCharRepeated(' ', width-len(left)+3); err != nil {
			return "", err
		}
		if err := b.AppendString(opt.Desc); err != nil {
			return "", err
		}
		if err := b.AppendChar('\n'); err != nil {
			return "", err
		}
	}
	return b.Text()
}

// Delete releases the option table.
func (p *Parser) Delete() {
	p.order.Delete()
}
