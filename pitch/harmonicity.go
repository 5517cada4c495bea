package pitch

import "github.com/otonality/jipitch/harmonicity"

// HarmonicityBarlow scores the pitch with Barlow's harmonicity.
func (p *JustIntonationPitch) HarmonicityBarlow() float64 {
	return harmonicity.Barlow(p.vector)
}

// HarmonicitySimplifiedBarlow scores the pitch with the absolute
// Barlow harmonicity (1/1 maps to 1 instead of +Inf).
func (p *JustIntonationPitch) HarmonicitySimplifiedBarlow() float64 {
	return harmonicity.SimplifiedBarlow(p.vector)
}

// HarmonicityEuler scores the pitch with Euler's gradus suavitatis.
func (p *JustIntonationPitch) HarmonicityEuler() int {
	return harmonicity.Euler(p.vector)
}

// HarmonicityTenney scores the pitch with Tenney's harmonic distance.
func (p *JustIntonationPitch) HarmonicityTenney() float64 {
	return harmonicity.Tenney(p.vector)
}

// HarmonicityVogel scores the pitch with Vogel's complexity.
func (p *JustIntonationPitch) HarmonicityVogel() int {
	return harmonicity.Vogel(p.vector)
}

// HarmonicityWilson scores the pitch with Wilson's complexity.
func (p *JustIntonationPitch) HarmonicityWilson() int {
	return harmonicity.Wilson(p.vector)
}
