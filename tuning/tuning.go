// Package tuning anchors a twelve-step just scale to the MIDI keyboard
// so that every key resolves to an exact JustIntonationPitch.
package tuning

import (
	"fmt"

	"github.com/otonality/jipitch/constants"
	"github.com/otonality/jipitch/pitch"
)

// DefaultRootKey is the MIDI key sounding the 1/1 (A above middle C,
// which the default concert pitch puts at 440 Hz).
const DefaultRootKey = 69

// Scale maps the twelve chromatic pitch classes onto just ratios. The
// ratios are stored octave-normalized; registers come from the key
// distance to the root key.
type Scale struct {
	steps        [12]*pitch.JustIntonationPitch
	concertPitch pitch.Pitch
	rootKey      uint8
}

// New builds a scale from twelve ratio strings, the first of which is
// the root step (usually "1/1").
func New(ratios []string, concertPitch pitch.Pitch, rootKey uint8) (*Scale, error) {
	if len(ratios) != 12 {
		return nil, fmt.Errorf("a chromatic scale needs 12 ratios, got %d", len(ratios))
	}
	s := &Scale{concertPitch: concertPitch, rootKey: rootKey}
	for i, ratio := range ratios {
		p, err := pitch.FromRatio(ratio, concertPitch)
		if err != nil {
			return nil, err
		}
		s.steps[i] = p.Normalize(2)
	}
	return s, nil
}

// Default returns the 5-limit chromatic scale rooted at the concert
// pitch key.
func Default(concertPitch pitch.Pitch) *Scale {
	s, err := New(constants.ChromaticJustRatios[:], concertPitch, DefaultRootKey)
	if err != nil {
		// the builtin table is known-good
		panic("broken builtin chromatic ratio table: " + err.Error())
	}
	return s
}

// RootKey returns the MIDI key of the 1/1.
func (s *Scale) RootKey() uint8 { return s.rootKey }

// Step returns the octave-normalized pitch of a chromatic step 0..11.
func (s *Scale) Step(step int) *pitch.JustIntonationPitch {
	return s.steps[floorMod(step, 12)].Register(0)
}

// KeyToPitch resolves a MIDI key to its just pitch: the step class of
// the key, registered by its octave distance to the root key.
func (s *Scale) KeyToPitch(key uint8) *pitch.JustIntonationPitch {
	distance := int(key) - int(s.rootKey)
	return s.steps[floorMod(distance, 12)].Register(floorDiv(distance, 12))
}

// KeyToFrequency resolves a MIDI key to an absolute frequency in Hz.
func (s *Scale) KeyToFrequency(key uint8) float64 {
	return s.KeyToPitch(key).Frequency()
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
