package simphase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlasticOnlyUnderLearning(t *testing.T) {
	assert.True(t, NewLearning(3).Plastic())
	assert.False(t, NewTesting(3).Plastic())
	assert.False(t, NewMixing(1, 2).Plastic())
	assert.False(t, NewPulse(1, 350).Plastic())
	assert.False(t, NewSpontaneous().Plastic())
}

func TestPhaseStringers(t *testing.T) {
	assert.Equal(t, "learning", Learning.String())
	assert.Equal(t, "mixing", Mixing.String())
	assert.Equal(t, "spontaneous", Spontaneous.String())
}

func TestMixingPayload(t *testing.T) {
	p := NewMixing(4, 9)
	assert.Equal(t, 4, p.Stim1)
	assert.Equal(t, 9, p.Stim2)
}
