// Package automaton implements a one-dimensional binary cellular automaton
// with cyclic boundary and synchronous update.
package automaton

import (
	"fmt"
	"slices"

	"eca-density/internal/core"
	"eca-density/internal/rule"
	pkgcore "eca-density/pkg/core"
)

// Automaton holds a ring of n binary cells and the local rule that advances
// it. The rule is referenced, not owned; rules are stateless so it may be
// shared between automata. An Automaton is not safe for concurrent use.
type Automaton struct {
	n, v   int
	cur    []uint8
	nxt    []uint8
	window []uint8
	rule   core.Rule
}

// New creates an automaton of n cells with neighborhood width v. All cells
// start at 0 and no rule is bound.
func New(n, v int) (*Automaton, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d cells", core.ErrNonPositiveSize, n)
	}
	if err := rule.ValidateArity(v); err != nil {
		return nil, err
	}
	return &Automaton{
		n:      n,
		v:      v,
		cur:    make([]uint8, n),
		nxt:    make([]uint8, n),
		window: make([]uint8, v),
	}, nil
}

// Size returns the number of cells.
func (a *Automaton) Size() int { return a.n }

// Arity returns the neighborhood width.
func (a *Automaton) Arity() int { return a.v }

// Rule returns the bound rule, or nil.
func (a *Automaton) Rule() core.Rule { return a.rule }

// SetConfiguration replaces the current configuration with a copy of cells.
func (a *Automaton) SetConfiguration(cells []uint8) error {
	if len(cells) != a.n {
		return fmt.Errorf("%w: got %d cells, want %d", core.ErrSizeMismatch, len(cells), a.n)
	}
	if err := core.ValidateCells(cells); err != nil {
		return err
	}
	copy(a.cur, cells)
	return nil
}

// BindRule attaches r. Its arity must equal the neighborhood width.
func (a *Automaton) BindRule(r core.Rule) error {
	if r == nil {
		return core.ErrNoRule
	}
	if r.Arity() != a.v {
		return fmt.Errorf("%w: rule arity %d, neighborhood %d", core.ErrArityMismatch, r.Arity(), a.v)
	}
	a.rule = r
	return nil
}

// Configuration returns a snapshot of the current cells.
func (a *Automaton) Configuration() []uint8 { return slices.Clone(a.cur) }

// Step advances every cell by one generation. All new values are computed
// from the current generation into the scratch buffer before the buffers
// are swapped, so no cell observes a value written during the same step.
func (a *Automaton) Step() error {
	if a.rule == nil {
		return core.ErrNoRule
	}
	half := a.v / 2
	for i := 0; i < a.n; i++ {
		for d := -half; d <= half; d++ {
			a.window[d+half] = a.cur[core.Wrap(i+d, a.n)]
		}
		a.nxt[i] = a.rule.Apply(a.window) & 1
	}
	a.cur, a.nxt = a.nxt, a.cur
	return nil
}

// AllZeros reports whether the configuration is uniformly 0.
func (a *Automaton) AllZeros() bool { return core.IsAllZeros(a.cur) }

// AllOnes reports whether the configuration is uniformly 1.
func (a *Automaton) AllOnes() bool { return core.IsAllOnes(a.cur) }

// Density returns the fraction of cells set to 1.
func (a *Automaton) Density() float64 {
	d, _ := core.Density(a.cur)
	return d
}

// Randomize installs a random configuration drawn from seed.
func (a *Automaton) Randomize(seed uint64) {
	pkgcore.FillBinary(pkgcore.NewRNG(seed).Source(), a.cur)
}

// Clone returns an independent copy sharing the bound rule.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		n:      a.n,
		v:      a.v,
		cur:    slices.Clone(a.cur),
		nxt:    make([]uint8, a.n),
		window: make([]uint8, a.v),
		rule:   a.rule,
	}
}

// String renders the configuration as a bit-string.
func (a *Automaton) String() string { return core.FormatBits(a.cur) }
