package rule

import (
	"fmt"
	"math/bits"

	"eca-density/internal/core"
)

// Table is a rule stored as its full output column, indexed by window mask.
type Table struct {
	v   int
	out []uint8
}

// NewTable builds a table rule from 2^arity outputs ordered by mask.
func NewTable(arity int, outputs []uint8) (*Table, error) {
	if err := ValidateArity(arity); err != nil {
		return nil, err
	}
	if len(outputs) != 1<<arity {
		return nil, fmt.Errorf("%w: table for arity %d needs %d outputs, got %d",
			core.ErrSizeMismatch, arity, 1<<arity, len(outputs))
	}
	if err := core.ValidateCells(outputs); err != nil {
		return nil, err
	}
	return &Table{v: arity, out: append([]uint8(nil), outputs...)}, nil
}

// FromFingerprint decodes a fingerprint produced by Encode.
func FromFingerprint(fingerprint string) (*Table, error) {
	n := len(fingerprint)
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: fingerprint length %d is not a power of two", core.ErrInvalidArity, n)
	}
	outputs, err := core.ParseBits(fingerprint)
	if err != nil {
		return nil, err
	}
	return NewTable(bits.TrailingZeros(uint(n)), outputs)
}

// Compile snapshots any rule into a table with the same fingerprint.
func Compile(r core.Rule) (*Table, error) {
	v := r.Arity()
	if err := ValidateArity(v); err != nil {
		return nil, err
	}
	out := make([]uint8, 1<<v)
	window := make([]uint8, v)
	for mask := range out {
		fillWindow(window, mask)
		if r.Apply(window) != 0 {
			out[mask] = 1
		}
	}
	return &Table{v: v, out: out}, nil
}

// Arity returns the window width.
func (t *Table) Arity() int { return t.v }

// Apply looks up the output for the window.
func (t *Table) Apply(window []uint8) uint8 {
	return t.out[Mask(window)]
}

// Mask packs a window into an integer with window[0] as the most
// significant bit.
func Mask(window []uint8) int {
	mask := 0
	for _, c := range window {
		mask = mask<<1 | int(c&1)
	}
	return mask
}

func fillWindow(window []uint8, mask int) {
	v := len(window)
	for i := 0; i < v; i++ {
		window[v-1-i] = uint8((mask >> i) & 1)
	}
}
