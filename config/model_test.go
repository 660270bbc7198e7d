package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModelValidates(t *testing.T) {
	m := DefaultModel()
	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.DelayParam)
	assert.EqualValues(t, LatConnMultInit, m.LatConnMult)
}

func TestWeightMaxDerivation(t *testing.T) {
	m := DefaultModel()
	assert.InDelta(t, m.WEI*4.32/float64(m.LatConnMult), m.WEIMax(), 1e-12)
	assert.InDelta(t, m.WIE*4.32/float64(m.LatConnMult), m.WIEMax(), 1e-12)
	assert.Equal(t, m.WIEMax(), m.WIIMax())
}

func TestSuffixOrder(t *testing.T) {
	m := DefaultModel()
	m.NoNoise = true
	m.NoInh = true
	m.NoElat = true
	assert.Equal(t, "_noinh_noelat_nonoise", m.Suffix())
}

func TestValidateRejectsBadFlags(t *testing.T) {
	m := DefaultModel()
	m.DelayParam = 1
	assert.Error(t, m.Validate())

	m = DefaultModel()
	m.LatConnMult = 0
	assert.Error(t, m.Validate())
}
