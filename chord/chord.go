// Package chord analyzes sets of simultaneously sounding MIDI keys in
// terms of the just intervals a tuning assigns to them.
package chord

import (
	"fmt"
	"sort"

	"github.com/otonality/jipitch/pitch"
	"github.com/otonality/jipitch/tuning"
	"github.com/otonality/jipitch/util"
)

// OnNotes tracks which MIDI keys are currently held.
type OnNotes = map[uint8]bool

// CreateChordKey builds a stable identifier for a set of notes, e.g.
// "60-64-67". The input slice is sorted in place.
func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

// Interval is one pairwise just interval inside a chord.
type Interval struct {
	LowerKey uint8
	UpperKey uint8
	Pitch    *pitch.JustIntonationPitch
	Cents    float64
	Barlow   float64
}

// Analysis is the just reading of one chord under a tuning.
type Analysis struct {
	Key         string
	Notes       []uint8
	Frequencies []float64
	Intervals   []Interval
	Harmonicity float64
}

// Analyze resolves every held key through the scale and scores all
// pairwise intervals. The chord harmonicity is the mean simplified
// Barlow harmonicity over the pairs; a single note scores 1.
func Analyze(notes []uint8, scale *tuning.Scale) Analysis {
	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	res := Analysis{
		Key:   CreateChordKey(sorted),
		Notes: sorted,
	}

	pitches := make([]*pitch.JustIntonationPitch, len(sorted))
	for i, note := range sorted {
		pitches[i] = scale.KeyToPitch(note)
		res.Frequencies = append(res.Frequencies, pitches[i].Frequency())
	}

	var scores []float64
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			interval := pitches[j].Subtract(pitches[i])
			barlow := interval.HarmonicitySimplifiedBarlow()
			res.Intervals = append(res.Intervals, Interval{
				LowerKey: sorted[i],
				UpperKey: sorted[j],
				Pitch:    interval,
				Cents:    interval.Cents(),
				Barlow:   barlow,
			})
			scores = append(scores, barlow)
		}
	}
	if len(scores) == 0 {
		res.Harmonicity = 1
	} else {
		res.Harmonicity = util.Mean(scores)
	}
	return res
}

// RankSort orders analyses from most to least harmonic, breaking ties
// by chord key for stable output.
func RankSort(analyses []Analysis) {
	sort.Slice(analyses, func(i, j int) bool {
		if analyses[i].Harmonicity != analyses[j].Harmonicity {
			return analyses[i].Harmonicity > analyses[j].Harmonicity
		}
		return analyses[i].Key < analyses[j].Key
	})
}
