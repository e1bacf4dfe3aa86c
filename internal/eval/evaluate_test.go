package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca-density/internal/automaton"
	"eca-density/internal/core"
	"eca-density/internal/rule"
)

func constRule(t *testing.T, v int, out uint8) core.Rule {
	t.Helper()
	r, err := rule.New(v, func([]uint8) uint8 { return out })
	require.NoError(t, err)
	return r
}

func identityRule(t *testing.T, v int) core.Rule {
	t.Helper()
	r, err := rule.New(v, func(w []uint8) uint8 { return w[v/2] })
	require.NoError(t, err)
	return r
}

func bound(t *testing.T, cells []uint8, r core.Rule) *automaton.Automaton {
	t.Helper()
	a, err := automaton.New(len(cells), r.Arity())
	require.NoError(t, err)
	require.NoError(t, a.BindRule(r))
	require.NoError(t, a.SetConfiguration(cells))
	return a
}

func TestEvaluateEarlyConvergence(t *testing.T) {
	initials := [][]uint8{
		{1, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 1, 1, 1},
		{0, 1, 0, 1, 0, 1, 1},
	}
	// A budget of one step never inspects the state it produces; see
	// TestEvaluateLastStepNotInspected.
	for _, m := range []int{2, 5, 1000} {
		for _, cells := range initials {
			res, err := Evaluate(bound(t, cells, constRule(t, 3, 0)), m, 0.5)
			require.NoError(t, err)
			assert.Equal(t, 1, res.Iterations, "M=%d cells=%v", m, cells)
			assert.True(t, res.ConvergedToEmpty)
			assert.False(t, res.ConvergedToFull)
			assert.Equal(t, []uint8{0, 0, 0, 0, 0, 0, 0}, res.FinalConfiguration)
			assert.Equal(t, core.FormatBits(cells), res.InitialConfiguration)
		}
	}
}

func TestEvaluateBudgetExhaustion(t *testing.T) {
	cells := []uint8{1, 0, 1, 1, 0, 0, 1, 0}
	for _, m := range []int{0, 1, 17, 200} {
		res, err := Evaluate(bound(t, cells, identityRule(t, 7)), m, 0.5)
		require.NoError(t, err)
		assert.Equal(t, m, res.Iterations)
		assert.False(t, res.ConvergedToEmpty)
		assert.False(t, res.ConvergedToFull)
		assert.False(t, res.Correct)
		assert.Equal(t, cells, res.FinalConfiguration)
	}
}

func TestEvaluateAlreadyUniform(t *testing.T) {
	res, err := Evaluate(bound(t, []uint8{1, 1, 1, 1}, identityRule(t, 3)), 10, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Iterations)
	assert.True(t, res.ConvergedToFull)
	assert.True(t, res.Correct)
	assert.Equal(t, 1.0, res.InitialDensity)
}

func TestEvaluateLastStepNotInspected(t *testing.T) {
	// The zero rule reaches all-0 after the first step, but a budget of one
	// step ends the loop before that state is inspected.
	res, err := Evaluate(bound(t, []uint8{1, 0, 1, 0}, constRule(t, 3, 0)), 1, 0.6)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.ConvergedToEmpty)
	assert.False(t, res.ConvergedToFull)
	assert.False(t, res.Correct)
}

func TestEvaluateScoring(t *testing.T) {
	low := []uint8{1, 0, 0, 0, 0} // density 0.2

	res, err := Evaluate(bound(t, low, constRule(t, 3, 0)), 10, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Correct, "low density converging to empty is correct")

	res, err = Evaluate(bound(t, low, constRule(t, 3, 1)), 10, 0.5)
	require.NoError(t, err)
	assert.True(t, res.ConvergedToFull)
	assert.False(t, res.Correct, "low density converging to full is wrong")

	high := []uint8{1, 1, 1, 0, 1} // density 0.8
	res, err = Evaluate(bound(t, high, constRule(t, 3, 1)), 10, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Correct)

	// Density equal to the threshold expects full.
	half := []uint8{1, 1, 0, 0}
	res, err = Evaluate(bound(t, half, constRule(t, 3, 1)), 10, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Correct)
}

func TestEvaluateValidation(t *testing.T) {
	a := bound(t, []uint8{1, 0, 1}, identityRule(t, 3))
	_, err := Evaluate(a, -1, 0.5)
	assert.ErrorIs(t, err, ErrInvalidBudget)
	_, err = Evaluate(a, 10, 1.5)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	unbound, err := automaton.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, unbound.SetConfiguration([]uint8{1, 0, 1}))
	_, err = Evaluate(unbound, 10, 0.5)
	assert.ErrorIs(t, err, core.ErrNoRule)
}

func TestRandomConfiguration(t *testing.T) {
	a, err := RandomConfiguration(10, 1234)
	require.NoError(t, err)
	b, err := RandomConfiguration(10, 1234)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 10)
	assert.NoError(t, core.ValidateCells(a))

	c, err := RandomConfiguration(10, 0)
	require.NoError(t, err)
	assert.Len(t, c, 10)

	_, err = RandomConfiguration(0, 1)
	assert.ErrorIs(t, err, core.ErrNonPositiveSize)
}

func TestSeedSchedule(t *testing.T) {
	s := DefaultSeedSchedule
	assert.Equal(t, uint64(42), s.Seed(0))
	assert.Equal(t, uint64(9918), s.Seed(1))
	assert.Equal(t, uint64(42+9876*10), s.Seed(10))
}
