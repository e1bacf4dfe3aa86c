// Package rule provides local transition rules for one-dimensional binary
// automata and their canonical fingerprint encoding.
//
// A rule maps a window of V cells (V odd) to a single bit. Two
// implementations are provided: Func wraps a function value, Table looks the
// output up by window mask. Both satisfy core.Rule, so the automaton never
// needs to know which one it is driving.
package rule

import (
	"fmt"

	"eca-density/internal/core"
)

// MaxArity bounds the window width so that a fingerprint (2^V characters)
// stays enumerable.
const MaxArity = 21

// ValidateArity checks that v is an odd window width in [1, MaxArity].
func ValidateArity(v int) error {
	if v <= 0 || v%2 == 0 {
		return fmt.Errorf("%w: got %d", core.ErrInvalidArity, v)
	}
	if v > MaxArity {
		return fmt.Errorf("%w: %d exceeds maximum %d", core.ErrInvalidArity, v, MaxArity)
	}
	return nil
}

// Func is a rule backed by a function value.
type Func struct {
	v  int
	fn func(window []uint8) uint8
}

// New wraps fn as a rule of the given arity.
func New(arity int, fn func(window []uint8) uint8) (*Func, error) {
	if err := ValidateArity(arity); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: nil rule function", core.ErrInvalidParameter)
	}
	return &Func{v: arity, fn: fn}, nil
}

// Arity returns the window width.
func (f *Func) Arity() int { return f.v }

// Apply evaluates the rule. Any nonzero output is reported as 1.
func (f *Func) Apply(window []uint8) uint8 {
	if f.fn(window) != 0 {
		return 1
	}
	return 0
}

// Sum counts the 1-cells in a window.
func Sum(window []uint8) int {
	sum := 0
	for _, c := range window {
		sum += int(c)
	}
	return sum
}
