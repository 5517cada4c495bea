package vector

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/otonality/jipitch/prime"
)

// ParseError reports a ratio string that could not be understood.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse ratio %q: %s", e.Input, e.Reason)
}

// Parse converts a "num/den" ratio string into a reduced fraction.
func Parse(s string) (*big.Rat, error) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return nil, &ParseError{Input: s, Reason: "missing '/'"}
	}
	n, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
	if !ok {
		return nil, &ParseError{Input: s, Reason: "numerator is not an integer"}
	}
	d, ok := new(big.Int).SetString(strings.TrimSpace(den), 10)
	if !ok {
		return nil, &ParseError{Input: s, Reason: "denominator is not an integer"}
	}
	if n.Sign() <= 0 || d.Sign() <= 0 {
		return nil, &ParseError{Input: s, Reason: "ratio must be positive"}
	}
	return new(big.Rat).SetFrac(n, d), nil
}

// FromRat factorizes a positive fraction into its canonical exponent
// vector. The numerator contributes positive exponents, the
// denominator negative ones.
func FromRat(r *big.Rat) Vector {
	numFactors := factorBig(r.Num())
	denFactors := factorBig(r.Denom())

	size := 0
	for p := range numFactors {
		if pi := prime.Pi(p); pi > size {
			size = pi
		}
	}
	for p := range denFactors {
		if pi := prime.Pi(p); pi > size {
			size = pi
		}
	}

	v := make(Vector, size)
	for p, e := range numFactors {
		v[prime.Pi(p)-1] += e
	}
	for p, e := range denFactors {
		v[prime.Pi(p)-1] -= e
	}
	return Trim(v)
}

// AdjustRatio folds r into the window [1, border) by repeatedly
// multiplying or dividing by border. For border <= 1 the fraction is
// returned unchanged (reduction is already handled by big.Rat itself).
// The operation is idempotent and never mutates r.
func AdjustRatio(r *big.Rat, border int64) *big.Rat {
	res := new(big.Rat).Set(r)
	if border <= 1 {
		return res
	}
	b := new(big.Rat).SetInt64(border)
	one := new(big.Rat).SetInt64(1)
	for res.Cmp(b) >= 0 {
		res.Quo(res, b)
	}
	for res.Cmp(one) < 0 {
		res.Mul(res, b)
	}
	return res
}

// factorBig trial-divides a positive big integer. Ratio terms are
// small in practice; the big.Int walk only exists so that vectors with
// large exponents survive the round trip through Rat.
func factorBig(n *big.Int) map[int64]int {
	res := make(map[int64]int)
	one := big.NewInt(1)
	if n.Cmp(one) <= 0 {
		return res
	}
	rest := new(big.Int).Set(n)
	d := big.NewInt(2)
	sq := new(big.Int)
	for sq.Mul(d, d).Cmp(rest) <= 0 {
		q, m := new(big.Int).QuoRem(rest, d, new(big.Int))
		if m.Sign() == 0 {
			res[d.Int64()]++
			rest = q
		} else {
			d.Add(d, one)
		}
	}
	if rest.Cmp(one) > 0 {
		if !rest.IsInt64() {
			panic(fmt.Sprintf("prime factor %v does not fit into an exponent vector", rest))
		}
		res[rest.Int64()]++
	}
	return res
}
