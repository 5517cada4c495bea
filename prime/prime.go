// Package prime provides the small number-theory toolbox the pitch
// engine is built on: an incremental sieve, prime counting and trial
// division factorization. Inputs are low-limit ratios in practice, so
// nothing here tries to be clever about large numbers.
package prime

import (
	"sort"
	"sync"
)

var (
	mu sync.Mutex
	// sieve state grows on demand and is only ever appended to
	primes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
)

func isPrime(n int64) bool {
	for _, p := range primes {
		if p*p > n {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	return true
}

// growTo extends the sieve until it covers limit. Caller holds mu.
func growTo(limit int64) {
	for next := primes[len(primes)-1] + 2; primes[len(primes)-1] < limit; next += 2 {
		if isPrime(next) {
			primes = append(primes, next)
		}
	}
}

// growCount extends the sieve until it holds n primes. Caller holds mu.
func growCount(n int) {
	for next := primes[len(primes)-1] + 2; len(primes) < n; next += 2 {
		if isPrime(next) {
			primes = append(primes, next)
		}
	}
}

// Primes returns the first n primes in ascending order.
func Primes(n int) []int64 {
	if n <= 0 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	growCount(n)
	res := make([]int64, n)
	copy(res, primes[:n])
	return res
}

// Nth returns the n-th prime, 1-indexed (Nth(1) == 2).
func Nth(n int) int64 {
	mu.Lock()
	defer mu.Unlock()
	growCount(n)
	return primes[n-1]
}

// Pi counts the primes less than or equal to p.
func Pi(p int64) int {
	if p < 2 {
		return 0
	}
	mu.Lock()
	defer mu.Unlock()
	growTo(p)
	return sort.Search(len(primes), func(i int) bool {
		return primes[i] > p
	})
}

// UpTo returns all primes less than or equal to p in ascending order.
func UpTo(p int64) []int64 {
	return Primes(Pi(p))
}

// Factor decomposes n >= 1 into a prime -> exponent map. Factor(1)
// returns an empty map.
func Factor(n int64) map[int64]int {
	res := make(map[int64]int)
	if n < 2 {
		return res
	}
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			res[d]++
			n /= d
		}
	}
	if n > 1 {
		res[n]++
	}
	return res
}

// FactorMultiple decomposes n >= 1 into its ascending prime factors
// with multiplicity, e.g. FactorMultiple(12) == [2 2 3].
func FactorMultiple(n int64) []int64 {
	var res []int64
	if n < 2 {
		return res
	}
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			res = append(res, d)
			n /= d
		}
	}
	if n > 1 {
		res = append(res, n)
	}
	return res
}
