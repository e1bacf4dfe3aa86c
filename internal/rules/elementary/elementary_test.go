package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca-density/internal/core"
	"eca-density/internal/rule"
)

func TestRule110Fingerprint(t *testing.T) {
	// 110 = 0b01101110; mask m selects bit m.
	assert.Equal(t, "01110110", rule.Encode(New(110)))
	assert.Equal(t, "00000000", rule.Encode(New(0)))
	assert.Equal(t, "11111111", rule.Encode(New(255)))
}

func TestFingerprintRoundTripsCode(t *testing.T) {
	for code := 0; code < 256; code++ {
		tbl, err := rule.FromFingerprint(rule.Encode(New(uint8(code))))
		require.NoError(t, err)
		assert.True(t, rule.Equal(New(uint8(code)), tbl), "code %d", code)
	}
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(110), c.Rule)

	c, err = FromMap(map[string]string{"rule": "30"})
	require.NoError(t, err)
	assert.Equal(t, uint8(30), c.Rule)

	_, err = FromMap(map[string]string{"rule": "256"})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestRegisteredFactory(t *testing.T) {
	r, err := core.NewRule("elementary", 3, map[string]string{"rule": "184"})
	require.NoError(t, err)
	assert.Equal(t, uint8(184), r.(*Elementary).Code())

	_, err = core.NewRule("elementary", 7, nil)
	assert.ErrorIs(t, err, core.ErrArityMismatch)
}
