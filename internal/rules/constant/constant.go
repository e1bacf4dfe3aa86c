// Package constant registers trivial rules: the two constant outputs and
// the identity rule that copies the center cell.
package constant

import (
	"eca-density/internal/core"
	"eca-density/internal/rule"
)

// New returns a rule that ignores its window and always outputs value.
func New(arity int, value uint8) (*rule.Func, error) {
	out := value & 1
	return rule.New(arity, func([]uint8) uint8 { return out })
}

// Identity returns a rule whose output is the center cell, so every
// configuration is a fixed point.
func Identity(arity int) (*rule.Func, error) {
	center := arity / 2
	return rule.New(arity, func(window []uint8) uint8 { return window[center] })
}

func init() {
	core.Register("zero", func(arity int, _ map[string]string) (core.Rule, error) {
		return New(arity, 0)
	})
	core.Register("one", func(arity int, _ map[string]string) (core.Rule, error) {
		return New(arity, 1)
	})
	core.Register("identity", func(arity int, _ map[string]string) (core.Rule, error) {
		return Identity(arity)
	})
}
