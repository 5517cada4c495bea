package pitch

import (
	"math"
	"math/big"

	"github.com/otonality/jipitch/constants"
)

// maxFallbackDenominator bounds the rational approximation used when a
// cents value has to be turned back into a fraction. Keeping the
// denominator small keeps the derived exponent vector factorable.
const maxFallbackDenominator = 1_000_000_000

// RatioToCents converts a frequency ratio to its interval size in
// cents (1200 cents per octave).
func RatioToCents(ratio *big.Rat) float64 {
	f, _ := ratio.Float64()
	return constants.OctaveInCents * math.Log2(f)
}

// CentsToRatio converts a cents value to a fraction approximating
// 2^(cents/1200). The result is a continued-fraction convergent with a
// bounded denominator, so it stays factorable into an exponent vector.
func CentsToRatio(cents float64) *big.Rat {
	return approximateRatio(math.Exp2(cents / constants.OctaveInCents))
}

// approximateRatio finds the best rational approximation of f with a
// denominator below maxFallbackDenominator via continued fractions.
func approximateRatio(f float64) *big.Rat {
	if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return big.NewRat(1, 1)
	}
	if f > float64(maxFallbackDenominator) {
		return new(big.Rat).SetFloat64(f)
	}

	var h0, h1 int64 = 0, 1 // numerator convergents
	var k0, k1 int64 = 1, 0 // denominator convergents
	x := f
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(x))
		h := a*h1 + h0
		k := a*k1 + k0
		if k > maxFallbackDenominator || k < 0 {
			break
		}
		h0, h1 = h1, h
		k0, k1 = k1, k
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}
		if got, _ := big.NewRat(h1, k1).Float64(); got == f {
			break
		}
		x = 1 / frac
	}
	return big.NewRat(h1, k1)
}
