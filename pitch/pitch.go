// Package pitch implements just-intonation pitches: frequency ratios
// encoded as exponent vectors over the ascending primes, anchored to a
// concert pitch. All arithmetic is exact; floats only appear at the
// frequency/cents boundary.
package pitch

import (
	"math"
	"math/big"

	"github.com/otonality/jipitch/constants"
	"github.com/otonality/jipitch/vector"
)

// Pitch is anything that can report an absolute frequency in Hz.
type Pitch interface {
	Frequency() float64
}

// PitchInterval is anything that can report a signed interval in cents.
type PitchInterval interface {
	Cents() float64
}

// DirectPitch is a raw frequency in Hz.
type DirectPitch float64

func (d DirectPitch) Frequency() float64 { return float64(d) }

// JustIntonationPitch is a frequency ratio relative to a concert
// pitch, held as a canonical exponent vector. The vector is owned by
// the pitch and never shared.
type JustIntonationPitch struct {
	vector       vector.Vector
	concertPitch Pitch
}

func defaultConcertPitch(concertPitch []Pitch) Pitch {
	if len(concertPitch) > 0 && concertPitch[0] != nil {
		return concertPitch[0]
	}
	return DirectPitch(constants.DefaultConcertPitch)
}

// FromRatio builds a pitch from a "num/den" ratio string.
func FromRatio(ratio string, concertPitch ...Pitch) (*JustIntonationPitch, error) {
	r, err := vector.Parse(ratio)
	if err != nil {
		return nil, err
	}
	return FromRat(r, concertPitch...), nil
}

// FromRat builds a pitch from a positive fraction.
func FromRat(r *big.Rat, concertPitch ...Pitch) *JustIntonationPitch {
	return &JustIntonationPitch{
		vector:       vector.FromRat(r),
		concertPitch: defaultConcertPitch(concertPitch),
	}
}

// FromExponents builds a pitch from an exponent sequence over the
// ascending primes, e.g. [-1, 1] for 3/2.
func FromExponents(exponents []int, concertPitch ...Pitch) *JustIntonationPitch {
	return &JustIntonationPitch{
		vector:       vector.Trim(exponents),
		concertPitch: defaultConcertPitch(concertPitch),
	}
}

// Unison returns the 1/1 pitch.
func Unison(concertPitch ...Pitch) *JustIntonationPitch {
	return FromExponents(nil, concertPitch...)
}

// Exponents returns a copy of the canonical exponent vector.
func (p *JustIntonationPitch) Exponents() vector.Vector {
	return vector.Trim(p.vector)
}

// ConcertPitch returns the reference pitch for ratio 1/1.
func (p *JustIntonationPitch) ConcertPitch() Pitch { return p.concertPitch }

// SetConcertPitch replaces the reference pitch.
func (p *JustIntonationPitch) SetConcertPitch(concertPitch Pitch) {
	p.concertPitch = defaultConcertPitch([]Pitch{concertPitch})
}

// Ratio returns the reduced fraction the pitch denotes.
func (p *JustIntonationPitch) Ratio() *big.Rat {
	return vector.AdjustRatio(p.vector.Rat(), 1)
}

// Numerator returns the numerator of the reduced fraction.
func (p *JustIntonationPitch) Numerator() *big.Int {
	num, _ := p.vector.Pair()
	return num
}

// Denominator returns the denominator of the reduced fraction.
func (p *JustIntonationPitch) Denominator() *big.Int {
	_, den := p.vector.Pair()
	return den
}

// Frequency returns the absolute frequency in Hz: ratio times the
// concert pitch frequency.
func (p *JustIntonationPitch) Frequency() float64 {
	f, _ := p.Ratio().Float64()
	return f * p.concertPitch.Frequency()
}

// Cents returns the interval the ratio spans, in cents.
func (p *JustIntonationPitch) Cents() float64 {
	return RatioToCents(p.Ratio())
}

// Octave returns which octave window above (or below) 1/1 the pitch
// falls into.
func (p *JustIntonationPitch) Octave() int {
	return int(math.Floor(p.Cents() / constants.OctaveInCents))
}

// Tonality reports whether the pitch is otonal (true) or utonal
// (false). A pitch is utonal when its dominating prime factor sits in
// the denominator.
func (p *JustIntonationPitch) Tonality() bool {
	if len(p.vector) == 0 {
		return true
	}
	maxIdx, minIdx := 0, 0
	for i, e := range p.vector {
		if e > p.vector[maxIdx] {
			maxIdx = i
		}
		if e < p.vector[minIdx] {
			minIdx = i
		}
	}
	maxima, minima := p.vector[maxIdx], p.vector[minIdx]
	if maxima <= 0 && minima < 0 {
		return false
	}
	if minima < 0 && minIdx > maxIdx {
		return false
	}
	return true
}

// Harmonic returns which harmonic (positive) or subharmonic (negative)
// of the fundamental the pitch represents, or 0 when it is neither.
func (p *JustIntonationPitch) Harmonic() int64 {
	r := p.Ratio()
	num, den := r.Num(), r.Denom()
	switch {
	case den.Bit(0) == 0:
		return num.Int64()
	case num.Bit(0) == 0:
		return -den.Int64()
	case num.Cmp(den) == 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the pitch itself when its ratio is >= 1 and its
// reciprocal otherwise.
func (p *JustIntonationPitch) Abs() *JustIntonationPitch {
	if p.Numerator().Cmp(p.Denominator()) > 0 {
		return p.clone()
	}
	return &JustIntonationPitch{
		vector:       vector.Neg(p.vector),
		concertPitch: p.concertPitch,
	}
}

// FactorTerms returns the prime factors (with multiplicity) of the
// numerator and the denominator.
func (p *JustIntonationPitch) FactorTerms() (num []int64, den []int64) {
	return p.vector.FactorTerms()
}

// OccupiedPrimes returns the primes with non-zero exponents.
func (p *JustIntonationPitch) OccupiedPrimes() []int64 {
	return p.vector.OccupiedPrimes()
}

// Equal reports whether two pitches denote the same ratio. The concert
// pitch does not take part in the comparison.
func (p *JustIntonationPitch) Equal(other *JustIntonationPitch) bool {
	return vector.Equal(p.vector, other.vector)
}

// EqualInterval reports whether the pitch spans the same interval as a
// generic cents-based interval.
func (p *JustIntonationPitch) EqualInterval(interval PitchInterval) bool {
	return p.Cents() == interval.Cents()
}

// String renders the pitch as a "num/den" ratio, e.g. "3/2" or "1/1".
func (p *JustIntonationPitch) String() string {
	r := p.Ratio()
	return r.Num().String() + "/" + r.Denom().String()
}

func (p *JustIntonationPitch) clone() *JustIntonationPitch {
	return &JustIntonationPitch{
		vector:       vector.Trim(p.vector),
		concertPitch: p.concertPitch,
	}
}
