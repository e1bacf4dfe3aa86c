package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca-density/internal/core"
	"eca-density/internal/rule"
)

func TestConstantRules(t *testing.T) {
	zero, err := core.NewRule("zero", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "00000000", rule.Encode(zero))

	one, err := core.NewRule("one", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "11111111", rule.Encode(one))
}

func TestIdentity(t *testing.T) {
	id, err := Identity(3)
	require.NoError(t, err)
	assert.Equal(t, "00110011", rule.Encode(id))
}
