package pitch

import (
	"fmt"
	"math"

	"github.com/otonality/jipitch/vector"
)

// Every operation comes in two flavors sharing one pure core: the
// plain method returns a new pitch and leaves the receiver untouched,
// the InPlace twin replaces the receiver's vector.

// RegisterResolutionError reports that no candidate register could be
// resolved for a pitch. It guards MoveToClosestRegister and is not
// expected in normal use.
type RegisterResolutionError struct {
	Pitch     string
	Reference string
}

func (e *RegisterResolutionError) Error() string {
	return fmt.Sprintf("cannot find closest register of %s to %s", e.Pitch, e.Reference)
}

func (p *JustIntonationPitch) addVector(interval PitchInterval, negate bool) vector.Vector {
	if other, ok := interval.(*JustIntonationPitch); ok {
		if negate {
			return vector.Sub(p.vector, other.vector)
		}
		return vector.Add(p.vector, other.vector)
	}
	// generic intervals fall back to cents arithmetic
	r := CentsToRatio(interval.Cents())
	res := p.Ratio()
	if negate {
		res.Quo(res, r)
	} else {
		res.Mul(res, r)
	}
	return vector.FromRat(res)
}

// Add transposes the pitch up by an interval. A JustIntonationPitch
// operand is added exactly on the exponent vectors; any other
// PitchInterval is applied through its cents value.
func (p *JustIntonationPitch) Add(interval PitchInterval) *JustIntonationPitch {
	return &JustIntonationPitch{vector: p.addVector(interval, false), concertPitch: p.concertPitch}
}

// AddInPlace is the mutating twin of Add.
func (p *JustIntonationPitch) AddInPlace(interval PitchInterval) {
	p.vector = p.addVector(interval, false)
}

// Subtract transposes the pitch down by an interval, mirroring Add.
func (p *JustIntonationPitch) Subtract(interval PitchInterval) *JustIntonationPitch {
	return &JustIntonationPitch{vector: p.addVector(interval, true), concertPitch: p.concertPitch}
}

// SubtractInPlace is the mutating twin of Subtract.
func (p *JustIntonationPitch) SubtractInPlace(interval PitchInterval) {
	p.vector = p.addVector(interval, true)
}

func (p *JustIntonationPitch) normalizedVector(prime int64) vector.Vector {
	return vector.FromRat(vector.AdjustRatio(p.vector.Rat(), prime))
}

// Normalize folds the pitch into one period of the given prime: the
// window [1, prime). The octave (prime 2) is the usual period.
func (p *JustIntonationPitch) Normalize(prime int64) *JustIntonationPitch {
	return &JustIntonationPitch{vector: p.normalizedVector(prime), concertPitch: p.concertPitch}
}

// NormalizeInPlace is the mutating twin of Normalize.
func (p *JustIntonationPitch) NormalizeInPlace(prime int64) {
	p.vector = p.normalizedVector(prime)
}

func (p *JustIntonationPitch) registeredVector(octave int) vector.Vector {
	// fold to [1, 2) first, then shift by a signed power of two
	return vector.Add(p.normalizedVector(2), vector.Vector{octave})
}

// Register moves the pitch into the given octave: 0 is the octave from
// 1/1 to 2/1, negative values lie below 1/1. Register(0) is equivalent
// to Normalize(2).
func (p *JustIntonationPitch) Register(octave int) *JustIntonationPitch {
	return &JustIntonationPitch{vector: p.registeredVector(octave), concertPitch: p.concertPitch}
}

// RegisterInPlace is the mutating twin of Register.
func (p *JustIntonationPitch) RegisterInPlace(octave int) {
	p.vector = p.registeredVector(octave)
}

// pickClosestCandidate selects the candidate minimizing the absolute
// cents distance to the reference. Replacement happens on strictly
// smaller distance only, so equidistant candidates resolve to the
// earliest (lowest) one.
func pickClosestCandidate(candidates []*JustIntonationPitch, reference *JustIntonationPitch) (vector.Vector, error) {
	referenceCents := reference.Cents()

	var best vector.Vector
	bestDiff := math.Inf(1)
	for _, candidate := range candidates {
		diff := math.Abs(candidate.Cents() - referenceCents)
		if diff < bestDiff {
			best = candidate.vector
			bestDiff = diff
		}
	}
	if math.IsInf(bestDiff, 1) {
		return nil, &RegisterResolutionError{Pitch: "", Reference: reference.String()}
	}
	return best, nil
}

func (p *JustIntonationPitch) closestRegisterVector(reference *JustIntonationPitch) (vector.Vector, error) {
	referenceOctave := reference.Octave()
	candidates := make([]*JustIntonationPitch, 0, 3)
	for adaption := -1; adaption <= 1; adaption++ {
		candidates = append(candidates, p.Register(referenceOctave+adaption))
	}
	v, err := pickClosestCandidate(candidates, reference)
	if err != nil {
		return nil, &RegisterResolutionError{Pitch: p.String(), Reference: reference.String()}
	}
	return v, nil
}

// MoveToClosestRegister shifts the pitch to whichever neighboring
// register of the reference minimizes the absolute cents distance to
// it. Equidistant ties resolve to the lower octave.
func (p *JustIntonationPitch) MoveToClosestRegister(reference *JustIntonationPitch) (*JustIntonationPitch, error) {
	v, err := p.closestRegisterVector(reference)
	if err != nil {
		return nil, err
	}
	return &JustIntonationPitch{vector: v, concertPitch: p.concertPitch}, nil
}

// MoveToClosestRegisterInPlace is the mutating twin of
// MoveToClosestRegister.
func (p *JustIntonationPitch) MoveToClosestRegisterInPlace(reference *JustIntonationPitch) error {
	v, err := p.closestRegisterVector(reference)
	if err != nil {
		return err
	}
	p.vector = v
	return nil
}

func (p *JustIntonationPitch) inverseVector(axis *JustIntonationPitch) vector.Vector {
	if axis == nil {
		return vector.Neg(p.vector)
	}
	// mirror the signed distance from the axis
	distance := vector.Sub(p.vector, axis.vector)
	return vector.Sub(axis.vector, distance)
}

// Inverse reflects the pitch. With a nil axis the ratio becomes its
// reciprocal; with an axis pitch the result lies as far below the axis
// as the receiver lies above it.
func (p *JustIntonationPitch) Inverse(axis *JustIntonationPitch) *JustIntonationPitch {
	return &JustIntonationPitch{vector: p.inverseVector(axis), concertPitch: p.concertPitch}
}

// InverseInPlace is the mutating twin of Inverse.
func (p *JustIntonationPitch) InverseInPlace(axis *JustIntonationPitch) {
	p.vector = p.inverseVector(axis)
}

func intersectExponents(e0, e1 int, strict bool) int {
	if e0 == 0 || e1 == 0 {
		return 0
	}
	if strict {
		if e0 == e1 {
			return e0
		}
		return 0
	}
	switch {
	case e0 < 0 && e1 < 0:
		if e0 > e1 {
			return e0
		}
		return e1
	case e0 > 0 && e1 > 0:
		if e0 < e1 {
			return e0
		}
		return e1
	default:
		// mixed signs share no common factor
		return 0
	}
}

func (p *JustIntonationPitch) intersectionVector(other *JustIntonationPitch, strict bool) vector.Vector {
	v0, v1 := vector.Pad(p.vector, other.vector)
	res := make(vector.Vector, len(v0))
	for i := range v0 {
		res[i] = intersectExponents(v0[i], v1[i], strict)
	}
	return vector.Trim(res)
}

// Intersection keeps the factors two pitches share, at no greater
// multiplicity than either owns. With strict set, an exponent survives
// only when both sides hold it with the exact same value.
func (p *JustIntonationPitch) Intersection(other *JustIntonationPitch, strict bool) *JustIntonationPitch {
	return &JustIntonationPitch{vector: p.intersectionVector(other, strict), concertPitch: p.concertPitch}
}

// IntersectionInPlace is the mutating twin of Intersection.
func (p *JustIntonationPitch) IntersectionInPlace(other *JustIntonationPitch, strict bool) {
	p.vector = p.intersectionVector(other, strict)
}
