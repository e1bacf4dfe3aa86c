package core

import (
	"fmt"
	"sort"
)

// Rule is a local transition rule: a pure function from a window of Arity()
// binary cells to a single bit. Window element 0 is the leftmost neighbor.
// Implementations must not retain or modify the window slice.
type Rule interface {
	Arity() int
	Apply(window []uint8) uint8
}

// Factory constructs a Rule of the requested arity using optional
// string parameters.
type Factory func(arity int, params map[string]string) (Rule, error)

var rules = map[string]Factory{}

// Register adds a rule factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rules[name] = f
}

// Rules exposes the registry of available rule factories.
func Rules() map[string]Factory {
	return rules
}

// RuleNames returns the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRule builds the named rule at the given arity.
func NewRule(name string, arity int, params map[string]string) (Rule, error) {
	f, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	r, err := f(arity, params)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return r, nil
}
