package majority

import (
	"eca-density/internal/core"
	"eca-density/internal/rule"
)

// New returns the local majority vote over the whole window.
func New(arity int) (*rule.Func, error) {
	half := arity / 2
	return rule.New(arity, func(window []uint8) uint8 {
		if rule.Sum(window) > half {
			return 1
		}
		return 0
	})
}

func init() {
	core.Register("majority", func(arity int, _ map[string]string) (core.Rule, error) {
		return New(arity)
	})
}
