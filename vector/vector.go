// Package vector implements the exponent-vector representation of a
// rational interval: a slice of signed integers indexed by the
// ascending primes (index 0 -> 2, index 1 -> 3, index 2 -> 5, ...).
// The canonical form carries no trailing zeros; the empty vector is
// the ratio 1/1.
package vector

import (
	"math/big"

	"github.com/otonality/jipitch/prime"
)

// Vector is an exponent vector over the ascending primes.
type Vector []int

// Trim drops trailing zero entries, returning the canonical form.
// The input is never mutated.
func Trim(v Vector) Vector {
	end := len(v)
	for end > 0 && v[end-1] == 0 {
		end--
	}
	res := make(Vector, end)
	copy(res, v[:end])
	return res
}

// Pad returns copies of a and b right-padded with zeros to equal
// length. Neither input is mutated.
func Pad(a, b Vector) (Vector, Vector) {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}
	pa := make(Vector, size)
	pb := make(Vector, size)
	copy(pa, a)
	copy(pb, b)
	return pa, pb
}

// Add returns the trimmed elementwise sum of a and b.
func Add(a, b Vector) Vector {
	pa, pb := Pad(a, b)
	for i := range pa {
		pa[i] += pb[i]
	}
	return Trim(pa)
}

// Sub returns the trimmed elementwise difference of a and b.
func Sub(a, b Vector) Vector {
	pa, pb := Pad(a, b)
	for i := range pa {
		pa[i] -= pb[i]
	}
	return Trim(pa)
}

// Neg returns the trimmed elementwise negation of v.
func Neg(v Vector) Vector {
	res := make(Vector, len(v))
	for i, e := range v {
		res[i] = -e
	}
	return Trim(res)
}

// Equal reports whether a and b denote the same ratio, i.e. whether
// their canonical forms match.
func Equal(a, b Vector) bool {
	pa, pb := Pad(a, b)
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}
	return true
}

// Primes returns the ascending primes corresponding to each position
// of v, e.g. a 3-entry vector yields [2 3 5].
func (v Vector) Primes() []int64 {
	return prime.Primes(len(v))
}

// OccupiedPrimes returns the primes with a non-zero exponent in v.
func (v Vector) OccupiedPrimes() []int64 {
	var res []int64
	for i, e := range v {
		if e != 0 {
			res = append(res, prime.Nth(i+1))
		}
	}
	return res
}

// Pair evaluates v into a (numerator, denominator) pair: positive
// exponents multiply into the numerator, negative ones into the
// denominator.
func (v Vector) Pair() (*big.Int, *big.Int) {
	num := big.NewInt(1)
	den := big.NewInt(1)
	for i, e := range v {
		if e == 0 {
			continue
		}
		p := big.NewInt(prime.Nth(i + 1))
		if e > 0 {
			num.Mul(num, new(big.Int).Exp(p, big.NewInt(int64(e)), nil))
		} else {
			den.Mul(den, new(big.Int).Exp(p, big.NewInt(int64(-e)), nil))
		}
	}
	return num, den
}

// Rat evaluates v into a reduced fraction.
func (v Vector) Rat() *big.Rat {
	num, den := v.Pair()
	return new(big.Rat).SetFrac(num, den)
}

// FactorTerms returns the prime factors (with multiplicity, ascending)
// of the numerator and the denominator of v.
func (v Vector) FactorTerms() (num []int64, den []int64) {
	for i, e := range v {
		if e == 0 {
			continue
		}
		p := prime.Nth(i + 1)
		for k := 0; k < abs(e); k++ {
			if e > 0 {
				num = append(num, p)
			} else {
				den = append(den, p)
			}
		}
	}
	return num, den
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
