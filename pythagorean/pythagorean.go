// Package pythagorean decomposes a just pitch into its closest 3-limit
// (pythagorean) interval plus a residual comma compound, and derives
// from that the cents drift against 12-tone equal temperament and a
// best-fit diatonic pitch name.
package pythagorean

import (
	"fmt"
	"strings"

	"github.com/otonality/jipitch/comma"
	"github.com/otonality/jipitch/constants"
	"github.com/otonality/jipitch/pitch"
	"github.com/otonality/jipitch/prime"
)

// Commas collects the comma correction of a pitch: for every prime
// >= 5 with a non-zero exponent, the table's reference comma raised to
// that exponent.
func Commas(p *pitch.JustIntonationPitch, table comma.Table) comma.Compound {
	exponents := make(map[int64]int)
	for i, e := range p.Exponents() {
		if i < 2 || e == 0 {
			continue
		}
		exponents[prime.Nth(i+1)] = e
	}
	return comma.NewCompound(exponents, table)
}

// ClosestInterval returns the octave-normalized 3-limit interval
// nearest to p: the pitch with its comma compound subtracted. The
// result is expressible with primes 2 and 3 only.
func ClosestInterval(p *pitch.JustIntonationPitch, table comma.Table) *pitch.JustIntonationPitch {
	compound := Commas(p, table)
	if compound.Size() == 0 {
		return p.Normalize(2)
	}
	return p.Subtract(pitch.FromRat(compound.Ratio())).Normalize(2)
}

// CentDeviationFromClosestWesternPitchClass quantifies how far the
// pitch drifts from its nearest 12-TET spelling: the cents of the
// comma compound plus the drift accumulated by the fifth chain of the
// closest pythagorean interval.
func CentDeviationFromClosestWesternPitchClass(p *pitch.JustIntonationPitch, table comma.Table) float64 {
	deviation := pitch.FromRat(Commas(p, table).Ratio()).Cents()

	exponents := ClosestInterval(p, table).Exponents()
	if len(exponents) >= 2 {
		fifth, _ := pitch.FromRatio("3/2")
		deviation += float64(exponents[1]) * (fifth.Cents() - constants.EqualTemperedFifthInCents)
	}
	return deviation
}

func countAccidentals(accidentals string) (int, error) {
	res := 0
	for _, a := range accidentals {
		switch a {
		case 's':
			res++
		case 'f':
			res--
		default:
			return 0, fmt.Errorf("unknown accidental %q", string(a))
		}
	}
	return res, nil
}

func accidentalString(n int) string {
	if n > 0 {
		return strings.Repeat("s", n)
	}
	return strings.Repeat("f", -n)
}

// floorMod and floorDiv follow the flooring convention so that fifth
// chains below the reference walk the cycle backwards correctly.
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

// ClosestPitchName spells the closest pythagorean interval of p as a
// diatonic letter plus accidentals ("s" sharp, "f" flat), relative to
// a reference pitch name such as "c" or "af".
func ClosestPitchName(p *pitch.JustIntonationPitch, reference string, table comma.Table) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("empty reference pitch name")
	}
	letter, accidentals := reference[:1], reference[1:]
	referenceAccidentals, err := countAccidentals(accidentals)
	if err != nil {
		return "", err
	}
	position := -1
	for i, name := range constants.DiatonicPitchNameCycleOfFifths {
		if name == letter {
			position = i
			break
		}
	}
	if position < 0 {
		return "", fmt.Errorf("unknown diatonic pitch name %q", letter)
	}

	exponents := ClosestInterval(p, table).Exponents()
	nFifths := 0
	if len(exponents) >= 2 {
		nFifths = exponents[1]
	}

	newLetter := constants.DiatonicPitchNameCycleOfFifths[(position+floorMod(nFifths, 7))%7]
	nAccidentals := floorDiv(position+nFifths, 7) + referenceAccidentals
	return newLetter + accidentalString(nAccidentals), nil
}
