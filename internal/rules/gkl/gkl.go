// Package gkl implements the Gacs-Kurdyumov-Levin rule, the classic
// hand-designed solution to the density-classification task.
package gkl

import (
	"fmt"

	"eca-density/internal/core"
	"eca-density/internal/rule"
)

// New returns the GKL rule of radius (arity-1)/2. A cell in state 0 takes
// the majority of itself, its nearest left neighbor and the neighbor at the
// left edge of the window; a cell in state 1 looks the same way to the right.
func New(arity int) (*rule.Func, error) {
	if arity < 3 {
		return nil, fmt.Errorf("%w: gkl needs arity >= 3, got %d", core.ErrInvalidArity, arity)
	}
	c := arity / 2
	last := arity - 1
	return rule.New(arity, func(w []uint8) uint8 {
		if w[c] == 0 {
			return vote(w[0], w[c-1], w[c])
		}
		return vote(w[c], w[c+1], w[last])
	})
}

func vote(a, b, c uint8) uint8 {
	if a+b+c >= 2 {
		return 1
	}
	return 0
}

func init() {
	core.Register("gkl", func(arity int, _ map[string]string) (core.Rule, error) {
		return New(arity)
	})
}
