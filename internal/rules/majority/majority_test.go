package majority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca-density/internal/rule"
)

func TestMajority(t *testing.T) {
	r, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, "00010111", rule.Encode(r))

	r7, err := New(7)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), r7.Apply([]uint8{1, 1, 1, 1, 0, 0, 0}))
	assert.Equal(t, uint8(0), r7.Apply([]uint8{1, 1, 1, 0, 0, 0, 0}))
}
