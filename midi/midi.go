// Package midi maps just pitches onto the MIDI wire format, expressing
// the cents a just pitch sits away from its 12-TET key as pitch bend.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/otonality/jipitch/tuning"
)

// BendRangeCents is the assumed upward pitch bend range of the
// receiving synth: two semitones, the General MIDI default.
const BendRangeCents = 200.0

const bendMax = 8192

// FrequencyToKey converts a frequency into a fractional MIDI key
// number, with the concert pitch sounding at key 69.
func FrequencyToKey(freq, concertPitch float64) float64 {
	return 69 + 12*math.Log2(freq/concertPitch)
}

// KeyAndBend splits a frequency into the nearest MIDI key and the
// 14-bit pitch bend value expressing the remainder.
func KeyAndBend(freq, concertPitch float64) (uint8, int16) {
	fractional := FrequencyToKey(freq, concertPitch)
	key := math.Round(fractional)
	if key < 0 {
		key = 0
	}
	if key > 127 {
		key = 127
	}
	return uint8(key), BendValue((fractional - key) * 100)
}

// BendValue converts a cent offset into a relative 14-bit pitch bend
// value, clamped to the representable range.
func BendValue(cents float64) int16 {
	rel := math.Round(cents / BendRangeCents * bendMax)
	if rel > bendMax-1 {
		rel = bendMax - 1
	}
	if rel < -bendMax {
		rel = -bendMax
	}
	return int16(rel)
}

// WriteScaleSMF renders one octave of the scale upward from its root
// key as a standard MIDI file: one note per step, each preceded by the
// pitch bend that pulls the equal-tempered key onto the just frequency.
func WriteScaleSMF(scale *tuning.Scale, path string) error {
	file := smf.New()

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))

	concertPitch := scale.KeyToFrequency(69)
	root := int(scale.RootKey())
	for key := root; key <= root+12; key++ {
		midiKey, bend := KeyAndBend(scale.KeyToFrequency(uint8(key)), concertPitch)
		tr.Add(0, gomidi.Pitchbend(0, bend))
		tr.Add(0, gomidi.NoteOn(0, midiKey, 100))
		tr.Add(960, gomidi.NoteOff(0, midiKey))
	}
	tr.Close(0)

	if err := file.Add(tr); err != nil {
		return err
	}
	return file.WriteFile(path)
}

// ReadSMF parses a standard MIDI file from disk.
func ReadSMF(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("could not read midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("could not parse midi file: %w", err)
	}
	return res, nil
}
