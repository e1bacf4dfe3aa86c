package parity

import (
	"eca-density/internal/core"
	"eca-density/internal/rule"
)

// New returns the rule that outputs the parity of the window: 1 when an odd
// number of cells are set.
func New(arity int) (*rule.Func, error) {
	return rule.New(arity, func(window []uint8) uint8 {
		return uint8(rule.Sum(window) % 2)
	})
}

func init() {
	core.Register("parity", func(arity int, _ map[string]string) (core.Rule, error) {
		return New(arity)
	})
}
