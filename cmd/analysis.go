package cmd

import (
	"math"

	"github.com/otonality/jipitch/comma"
	"github.com/otonality/jipitch/model"
	"github.com/otonality/jipitch/pitch"
	"github.com/otonality/jipitch/pythagorean"
)

// The 1/1 sounds at the concert pitch, so spellings are relative to a.
const referencePitchName = "a"

func buildRatioAnalysis(ratio string, concertPitch float64, table comma.Table) (model.RatioAnalysis, error) {
	p, err := pitch.FromRatio(ratio, pitch.DirectPitch(concertPitch))
	if err != nil {
		return model.RatioAnalysis{}, err
	}

	res := model.RatioAnalysis{
		Ratio:     p.String(),
		Exponents: p.Exponents(),
		Cents:     p.Cents(),
		Frequency: p.Frequency(),
		Octave:    p.Octave(),
		Otonal:    p.Tonality(),
		Harmonicity: model.Harmonicity{
			SimplifiedBarlow: p.HarmonicitySimplifiedBarlow(),
			Euler:            p.HarmonicityEuler(),
			Tenney:           p.HarmonicityTenney(),
			Vogel:            p.HarmonicityVogel(),
			Wilson:           p.HarmonicityWilson(),
		},
	}
	if b := p.HarmonicityBarlow(); !math.IsInf(b, 0) {
		res.Harmonicity.Barlow = &b
	}

	name, err := pythagorean.ClosestPitchName(p, referencePitchName, table)
	if err != nil {
		return model.RatioAnalysis{}, err
	}
	res.Pythagorean = model.Pythagorean{
		ClosestInterval: pythagorean.ClosestInterval(p, table).String(),
		PitchName:       name,
		CentDeviation:   pythagorean.CentDeviationFromClosestWesternPitchClass(p, table),
	}
	return res, nil
}
