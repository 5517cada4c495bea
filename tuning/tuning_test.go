package tuning

import (
	"testing"

	"github.com/otonality/jipitch/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresTwelveRatios(t *testing.T) {
	_, err := New([]string{"1/1", "3/2"}, pitch.DirectPitch(440), DefaultRootKey)
	assert.Error(t, err)

	_, err = New([]string{
		"1/1", "16/15", "9/8", "6/5", "5/4", "4/3",
		"45/32", "3/2", "8/5", "5/3", "16/9", "not-a-ratio",
	}, pitch.DirectPitch(440), DefaultRootKey)
	assert.Error(t, err)
}

func TestDefaultScaleRoot(t *testing.T) {
	s := Default(pitch.DirectPitch(440))
	assert := assert.New(t)
	assert.Equal(uint8(DefaultRootKey), s.RootKey())
	assert.InDelta(440.0, s.KeyToFrequency(69), 1e-9)
	assert.InDelta(880.0, s.KeyToFrequency(81), 1e-9)
	assert.InDelta(220.0, s.KeyToFrequency(57), 1e-9)
}

func TestKeyToPitch(t *testing.T) {
	s := Default(pitch.DirectPitch(440))
	assert := assert.New(t)

	fifth, err := pitch.FromRatio("3/2")
	require.NoError(t, err)
	assert.True(s.KeyToPitch(76).Equal(fifth), "key 76 should be a just fifth, got %s", s.KeyToPitch(76))

	// one octave below the fifth
	low, err := pitch.FromRatio("3/4")
	require.NoError(t, err)
	assert.True(s.KeyToPitch(64).Equal(low), "got %s", s.KeyToPitch(64))

	// a just major third sounds flat of 12-TET
	third := s.KeyToPitch(73)
	assert.InDelta(386.31, third.Cents(), 0.01)
}

func TestStepNormalization(t *testing.T) {
	s := Default(pitch.DirectPitch(440))
	for step := 0; step < 12; step++ {
		cents := s.Step(step).Cents()
		assert.GreaterOrEqual(t, cents, 0.0)
		assert.Less(t, cents, 1200.0)
	}
	// step indexing wraps
	assert.True(t, s.Step(12).Equal(s.Step(0)))
	assert.True(t, s.Step(-1).Equal(s.Step(11)))
}

func TestScaleUsesItsConcertPitch(t *testing.T) {
	s := Default(pitch.DirectPitch(432))
	assert.InDelta(t, 432.0, s.KeyToFrequency(69), 1e-9)
}
