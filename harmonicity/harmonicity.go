// Package harmonicity scores how consonant a rational interval is.
// Every metric is a pure function of the prime factorization of the
// interval's numerator and denominator: Barlow's harmonicity (from his
// indigestibility measure), Euler's gradus suavitatis, Tenney's
// harmonic distance and the Vogel and Wilson complexities. The
// formulas follow the published definitions; the reference values in
// the tests come straight from the literature.
package harmonicity

import (
	"math"
	"math/big"

	"github.com/otonality/jipitch/prime"
	"github.com/otonality/jipitch/vector"
)

// Indigestibility is Barlow's measure of how awkward an integer is as
// a ratio term: for each prime power p^k of n it accumulates
// 2*k*(p-1)^2/p. Indigestibility(1) == 0.
func Indigestibility(n int64) float64 {
	return indigestibilityOfFactors(prime.FactorMultiple(n))
}

// factors must be ascending; the sum is accumulated in prime order so
// results are bit-for-bit reproducible.
func indigestibilityOfFactors(factors []int64) float64 {
	var sum float64
	for i := 0; i < len(factors); {
		p := factors[i]
		k := 0
		for i < len(factors) && factors[i] == p {
			k++
			i++
		}
		sum += float64(k) * float64((p-1)*(p-1)) / float64(p)
	}
	return 2 * sum
}

// Barlow calculates Barlow's harmonicity of an interval. A higher
// magnitude means a more harmonic interval; the sign tells whether the
// numerator (positive) or the denominator (negative) dominates.
// Barlow of 1/1 is +Inf.
func Barlow(v vector.Vector) float64 {
	num, den := v.FactorTerms()
	indigestibilityNum := indigestibilityOfFactors(num)
	indigestibilityDen := indigestibilityOfFactors(den)
	if indigestibilityNum == 0 && indigestibilityDen == 0 {
		return math.Inf(1)
	}
	sign := 1.0
	if indigestibilityNum-indigestibilityDen < 0 {
		sign = -1.0
	}
	return sign / (indigestibilityNum + indigestibilityDen)
}

// SimplifiedBarlow is the absolute Barlow harmonicity with the 1/1
// infinity mapped to 1.
func SimplifiedBarlow(v vector.Vector) float64 {
	barlow := math.Abs(Barlow(v))
	if math.IsInf(barlow, 1) {
		return 1
	}
	return barlow
}

// Euler calculates Euler's gradus suavitatis: 1 plus the sum of
// (prime - 1) over the full factorization of numerator times
// denominator. Euler of 1/1 is 1; higher means less consonant.
func Euler(v vector.Vector) int {
	num, den := v.FactorTerms()
	res := 1
	for _, p := range num {
		res += int(p) - 1
	}
	for _, p := range den {
		res += int(p) - 1
	}
	return res
}

// Tenney calculates Tenney's harmonic distance: log2 of numerator
// times denominator. Tenney of 1/1 is 0.
func Tenney(v vector.Vector) float64 {
	r := v.Rat()
	product := new(big.Int).Mul(r.Num(), r.Denom())
	f, _ := new(big.Float).SetInt(product).Float64()
	return math.Log2(f)
}

func vogelTerm(p int64) int {
	if p == 2 {
		return 1
	}
	return int(p)
}

// Vogel calculates Vogel's complexity: the sum of all prime factors
// other than 2 plus the count of factors equal to 2.
func Vogel(v vector.Vector) int {
	num, den := v.FactorTerms()
	res := 0
	for _, p := range num {
		res += vogelTerm(p)
	}
	for _, p := range den {
		res += vogelTerm(p)
	}
	return res
}

func wilsonTerm(p int64) int {
	if p == 2 {
		return 0
	}
	return int(p)
}

// Wilson calculates Wilson's complexity: the sum of all prime factors
// other than 2.
func Wilson(v vector.Vector) int {
	num, den := v.FactorTerms()
	res := 0
	for _, p := range num {
		res += wilsonTerm(p)
	}
	for _, p := range den {
		res += wilsonTerm(p)
	}
	return res
}
