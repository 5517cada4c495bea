// Package comma models tuning commas: the very small intervals that
// separate a higher-prime just interval from its nearest 3-limit
// (pythagorean) spelling. The default table follows the Helmholtz-
// Ellis JI Pitch Notation, where every comma carries its defining
// prime in the numerator.
package comma

import (
	"math/big"
	"sort"
)

// Comma is a fixed small ratio attached to one prime, e.g. the
// syntonic comma 80/81 for prime 5.
type Comma struct {
	ratio *big.Rat
}

// New builds a comma from a ratio.
func New(num, den int64) Comma {
	return Comma{ratio: big.NewRat(num, den)}
}

// Ratio returns a copy of the comma's ratio.
func (c Comma) Ratio() *big.Rat {
	return new(big.Rat).Set(c.ratio)
}

// Table maps a prime >= 5 to its reference comma. A table is passed
// explicitly into every function deriving a Compound; it is never
// mutated after construction.
type Table map[int64]Comma

var defaultTable = Table{
	5:  New(80, 81),      // syntonic comma
	7:  New(63, 64),      // septimal comma
	11: New(33, 32),      // undecimal quartertone
	13: New(26, 27),      // tridecimal thirdtone
	17: New(2176, 2187),  // 17-limit schisma
	19: New(513, 512),    // 19-limit schisma
	23: New(736, 729),    // 23-limit comma
	29: New(261, 256),    // 29-limit sixthtone
	31: New(31, 32),      // 31-limit quartertone
	37: New(37, 36),      // 37-limit quartertone
	41: New(82, 81),      // 41-limit comma
	43: New(129, 128),    // 43-limit comma
	47: New(752, 729),    // 47-limit quartertone
}

// DefaultTable returns a copy of the Helmholtz-Ellis comma table.
func DefaultTable() Table {
	res := make(Table, len(defaultTable))
	for p, c := range defaultTable {
		res[p] = c
	}
	return res
}

// Compound is a frozen prime -> exponent mapping bound to a comma
// table: the accumulated comma correction of one pitch.
type Compound struct {
	exponents map[int64]int
	table     Table
}

// NewCompound binds a prime -> exponent mapping to a table. Primes
// with a zero exponent or without a table entry are dropped.
func NewCompound(exponents map[int64]int, table Table) Compound {
	res := make(map[int64]int, len(exponents))
	for p, e := range exponents {
		if e == 0 {
			continue
		}
		if _, ok := table[p]; !ok {
			continue
		}
		res[p] = e
	}
	return Compound{exponents: res, table: table}
}

// Exponents returns a copy of the prime -> exponent mapping.
func (c Compound) Exponents() map[int64]int {
	res := make(map[int64]int, len(c.exponents))
	for p, e := range c.exponents {
		res[p] = e
	}
	return res
}

// Primes returns the compound's primes in ascending order.
func (c Compound) Primes() []int64 {
	res := make([]int64, 0, len(c.exponents))
	for p := range c.exponents {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Size counts the referenced commas with multiplicity.
func (c Compound) Size() int {
	res := 0
	for _, e := range c.exponents {
		if e < 0 {
			res -= e
		} else {
			res += e
		}
	}
	return res
}

// Ratio multiplies out every referenced comma raised to its exponent.
// An empty compound yields 1/1.
func (c Compound) Ratio() *big.Rat {
	res := big.NewRat(1, 1)
	for p, e := range c.exponents {
		comma := c.table[p].Ratio()
		if e < 0 {
			comma.Inv(comma)
			e = -e
		}
		for i := 0; i < e; i++ {
			res.Mul(res, comma)
		}
	}
	return res
}
