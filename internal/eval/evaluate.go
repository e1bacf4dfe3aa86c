package eval

import (
	"errors"
	"fmt"

	"eca-density/internal/automaton"
	"eca-density/internal/core"
)

var (
	// ErrInvalidBudget reports a negative iteration budget.
	ErrInvalidBudget = errors.New("iteration budget must be non-negative")
	// ErrInvalidThreshold reports a density threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("density threshold must be in [0, 1]")
)

// Result is the outcome of one trial.
type Result struct {
	InitialConfiguration string
	InitialDensity       float64
	FinalConfiguration   []uint8
	ConvergedToEmpty     bool
	ConvergedToFull      bool
	Correct              bool
	Iterations           int
}

// Converged reports whether the trial reached a uniform state.
func (r Result) Converged() bool { return r.ConvergedToEmpty || r.ConvergedToFull }

// Evaluate runs a on its current configuration for at most maxSteps steps.
// Before each step the configuration is inspected; an all-0 or all-1 state
// ends the trial. The state reached by the final step of the budget is not
// inspected. The trial is correct when it converged to all-0 for an
// initial density below threshold, or to all-1 otherwise.
func Evaluate(a *automaton.Automaton, maxSteps int, threshold float64) (Result, error) {
	if maxSteps < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidBudget, maxSteps)
	}
	if threshold < 0 || threshold > 1 {
		return Result{}, fmt.Errorf("%w: got %g", ErrInvalidThreshold, threshold)
	}

	initial := a.Configuration()
	density, err := core.Density(initial)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		InitialConfiguration: core.FormatBits(initial),
		InitialDensity:       density,
	}

	for t := 0; t < maxSteps; t++ {
		if a.AllZeros() {
			res.ConvergedToEmpty = true
			break
		}
		if a.AllOnes() {
			res.ConvergedToFull = true
			break
		}
		if err := a.Step(); err != nil {
			return Result{}, fmt.Errorf("step %d: %w", t, err)
		}
		res.Iterations++
	}

	res.FinalConfiguration = a.Configuration()
	res.Correct = score(res.InitialDensity, threshold, res.ConvergedToEmpty, res.ConvergedToFull)
	return res, nil
}

func score(density, threshold float64, empty, full bool) bool {
	if density < threshold {
		return empty
	}
	return full
}
