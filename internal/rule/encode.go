package rule

import (
	"strings"

	"eca-density/internal/core"
)

// Encode returns the canonical fingerprint of r: for every mask from 0 to
// 2^V-1 the window is filled most-significant neighbor first
// (window[V-1-i] = bit i of mask) and the rule output is appended as '0' or
// '1'. The result has length 2^V and does not depend on how r is
// implemented.
func Encode(r core.Rule) string {
	v := r.Arity()
	combinations := 1 << v
	window := make([]uint8, v)

	var b strings.Builder
	b.Grow(combinations)
	for mask := 0; mask < combinations; mask++ {
		fillWindow(window, mask)
		if r.Apply(window) != 0 {
			b.WriteByte('1')
			continue
		}
		b.WriteByte('0')
	}
	return b.String()
}

// Equal reports whether two rules have the same arity and fingerprint.
func Equal(a, b core.Rule) bool {
	return a.Arity() == b.Arity() && Encode(a) == Encode(b)
}
