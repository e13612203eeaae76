package usage

import (
	"fmt"
	"strconv"

	"blobseq/errs"
)

// Results holds the outcome of Parse.
type Results struct {
	values map[string]string
	// Args are the positional arguments in order.
	Args []string
}

// Has reports whether the named option was given.
func (r *Results) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

func (r *Results) Value(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r *Results) ValueOrDefault(name, def string) string {
	if v, ok := r.values[name]; ok {
		return v
	}
	return def
}

// Int returns the named option as an int, or def when it was not given.
func (r *Results) Int(name string, def int) (int, error) {
	v, ok := r.values[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, errs.ErrArgument.New(fmt.Sprintf("--%s: %q is not a valid int", name, v))
	}
	return n, nil
}
