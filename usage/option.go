// Package usage parses command-line options and prints usage text. The option
// table is kept in a sequence.Sequence and the text is assembled with a
// strbuilder.Builder.
package usage

import (
	"strconv"

	"blobseq/errs"
)

type OptionKind int

const (
	// Flag takes no value.
	Flag OptionKind = iota
	// Value requires a value, given as --name value or --name=value.
	Value
)

// ValidationFunc checks a value after parsing.
type ValidationFunc func(string) error

// Option describes one supported command-line option.
type Option struct {
	// Long name, given on the command line as --Name. Required.
	Name string
	// Short name, given as -Abbrev. Optional.
	Abbrev string
	// Placeholder shown for the value in usage text.
	ValDesc string
	Desc    string
	Kind    OptionKind
	// Validator runs on the value after parsing. Optional.
	Validator ValidationFunc
}

func isIntStr(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return errs.ErrArgument.New(strconv.Quote(s) + " is not a valid int")
	}
	return nil
}

// left renders the option's first usage column.
func (o *Option) left() string {
	s := "    --" + o.Name
	if o.Abbrev != "" {
		s = "-" + o.Abbrev + ", --" + o.Name
	}
	if o.Kind == Value {
		s += " <" + o.ValDesc + ">"
	}
	return s
}
