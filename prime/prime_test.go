package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimes(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11}, Primes(5))
	assert.Nil(t, Primes(0))
}

func TestNth(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(2), Nth(1))
	assert.Equal(int64(5), Nth(3))
	assert.Equal(int64(53), Nth(16)) // beyond the seeded sieve
	assert.Equal(int64(541), Nth(100))
}

func TestPi(t *testing.T) {
	cases := []struct {
		p    int64
		want int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {47, 15}, {100, 25},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Pi(c.p), "Pi(%v)", c.p)
	}
}

func TestUpTo(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7}, UpTo(10))
}

func TestFactor(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Factor(1))
	assert.Equal(map[int64]int{2: 1}, Factor(2))
	assert.Equal(map[int64]int{2: 4, 3: 1, 5: 2}, Factor(1200))
	assert.Equal(map[int64]int{97: 1}, Factor(97))
}

func TestFactorMultiple(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(FactorMultiple(1))
	assert.Equal([]int64{2, 2, 3}, FactorMultiple(12))
	assert.Equal([]int64{3, 3, 3, 3}, FactorMultiple(81))
}
