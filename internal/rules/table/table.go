// Package table registers rules given directly by their fingerprint, which
// is how rules discovered by external searches are replayed.
package table

import (
	"fmt"

	"eca-density/internal/core"
	"eca-density/internal/rule"
)

func init() {
	core.Register("table", func(arity int, cfg map[string]string) (core.Rule, error) {
		bits, ok := cfg["bits"]
		if !ok {
			return nil, fmt.Errorf("%w: table rule needs a bits parameter", core.ErrInvalidParameter)
		}
		t, err := rule.FromFingerprint(bits)
		if err != nil {
			return nil, err
		}
		if t.Arity() != arity {
			return nil, fmt.Errorf("%w: fingerprint has arity %d, requested %d", core.ErrArityMismatch, t.Arity(), arity)
		}
		return t, nil
	})
}
