package gkl

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca-density/internal/core"
	"eca-density/internal/rule"
)

func TestGKLUniformWindowsAreFixed(t *testing.T) {
	r, err := New(7)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), r.Apply(make([]uint8, 7)))
	assert.Equal(t, uint8(1), r.Apply([]uint8{1, 1, 1, 1, 1, 1, 1}))
	assert.Len(t, rule.Encode(r), 128)
}

func TestGKLIsolatedCellDies(t *testing.T) {
	r, err := New(7)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), r.Apply([]uint8{0, 0, 0, 1, 0, 0, 0}))
	assert.Equal(t, uint8(1), r.Apply([]uint8{1, 1, 1, 0, 1, 1, 1}))
}

// Complementing a window and mirroring it must complement the output.
func TestGKLConjugateSymmetry(t *testing.T) {
	r, err := New(7)
	require.NoError(t, err)

	w := make([]uint8, 7)
	for mask := 0; mask < 128; mask++ {
		for i := range w {
			w[i] = uint8((mask >> (6 - i)) & 1)
		}
		mirrored := slices.Clone(w)
		slices.Reverse(mirrored)
		for i := range mirrored {
			mirrored[i] ^= 1
		}
		assert.Equal(t, 1-r.Apply(w), r.Apply(mirrored), "mask %07b", mask)
	}
}

func TestGKLArity(t *testing.T) {
	_, err := New(1)
	assert.ErrorIs(t, err, core.ErrInvalidArity)

	r, err := core.NewRule("gkl", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Arity())
}
