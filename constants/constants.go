package constants

import (
	"os"
	"strconv"
)

// DefaultConcertPitch is the reference frequency for the ratio 1/1.
const DefaultConcertPitch = 440.0

// OctaveInCents is how many cents equal one octave.
const OctaveInCents = 1200.0

// EqualTemperedFifthInCents is the size of the 12-TET fifth, used to
// measure how far a pythagorean fifth chain drifts from equal
// temperament.
const EqualTemperedFifthInCents = 700.0

// DiatonicPitchNameCycleOfFifths lists the diatonic letters in
// cycle-of-fifths order.
var DiatonicPitchNameCycleOfFifths = [7]string{"f", "c", "g", "d", "a", "e", "b"}

// ChromaticJustRatios is a 5-limit just mapping for the twelve
// chromatic steps above 1/1, used as the default keyboard tuning.
var ChromaticJustRatios = [12]string{
	"1/1", "16/15", "9/8", "6/5", "5/4", "4/3",
	"45/32", "3/2", "8/5", "5/3", "16/9", "15/8",
}

// GetConcertPitch returns the concert pitch frequency, overridable
// through the CONCERT_PITCH environment variable.
func GetConcertPitch() float64 {
	if v := os.Getenv("CONCERT_PITCH"); v != "" {
		if hz, err := strconv.ParseFloat(v, 64); err == nil && hz > 0 {
			return hz
		}
	}
	return DefaultConcertPitch
}
