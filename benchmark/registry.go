package benchmark

import (
	"sort"
	"strings"
)

// Entry describes a registered function.
type Entry struct {
	// Key is the registry key accepted by New.
	Key string
	// Fixed reports whether the function has a fixed dimensionality and so
	// rejects WithDimensionality.
	Fixed bool

	construct func(opts ...Option) (Function, error)
}

var registry = map[string]Entry{
	"ackley":      {Key: "ackley", construct: adapt(NewAckley)},
	"forrester":   {Key: "forrester", Fixed: true, construct: adapt(NewForrester)},
	"gramacy-lee": {Key: "gramacy-lee", Fixed: true, construct: adapt(NewGramacyLee)},
	"griewank":    {Key: "griewank", construct: adapt(NewGriewank)},
	"rastrigin":   {Key: "rastrigin", construct: adapt(NewRastrigin)},
	"rosenbrock":  {Key: "rosenbrock", construct: adapt(NewRosenbrock)},
	"schubert":    {Key: "schubert", construct: adapt(NewSchubert)},
	"schwefel":    {Key: "schwefel", construct: adapt(NewSchwefel)},
}

var aliases = map[string]string{
	"gramacy-and-lee": "gramacy-lee",
	"gramacylee":      "gramacy-lee",
}

// adapt turns a typed constructor into one returning the Function interface.
// The explicit nil check keeps a nil *T from becoming a non-nil interface.
func adapt[T Function](ctor func(opts ...Option) (T, error)) func(opts ...Option) (Function, error) {
	return func(opts ...Option) (Function, error) {
		fn, err := ctor(opts...)
		if err != nil {
			return nil, err
		}
		return fn, nil
	}
}

// Names returns the registry keys in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Entries returns every registry entry, sorted by key.
func Entries() []Entry {
	names := Names()
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = registry[name]
	}
	return entries
}

// Lookup finds the entry for name. Keys are matched case-insensitively and
// underscores or spaces are read as dashes.
func Lookup(name string) (Entry, error) {
	key := normalizeKey(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	e, ok := registry[key]
	if !ok {
		return Entry{}, newError(ErrUnknownFunction, "registry", "Lookup", "no function named %q", name)
	}
	return e, nil
}

// New constructs the function registered under name.
func New(name string, opts ...Option) (Function, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.New(opts...)
}

// New constructs the entry's function. The zero Entry names no function.
func (e Entry) New(opts ...Option) (Function, error) {
	if e.construct == nil {
		return nil, newError(ErrUnknownFunction, "registry", "New", "entry %q has no constructor", e.Key)
	}
	return e.construct(opts...)
}

// All constructs every registered function that accepts opts, sorted by key.
// Fixed-dimensionality functions are skipped when opts set a dimensionality.
func All(opts ...Option) ([]Function, error) {
	dimSet := applyOptions(opts).dimSet
	fns := make([]Function, 0, len(registry))
	for _, e := range Entries() {
		if e.Fixed && dimSet {
			continue
		}
		fn, err := e.New(opts...)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func normalizeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(key)
}
