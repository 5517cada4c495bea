package pitch

import (
	"math"
	"math/big"
	"testing"

	"github.com/otonality/jipitch/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRatio(t *testing.T, ratio string) *JustIntonationPitch {
	t.Helper()
	p, err := FromRatio(ratio)
	require.NoError(t, err)
	return p
}

func TestConstructorsAgree(t *testing.T) {
	fromString := mustRatio(t, "3/2")
	fromRat := FromRat(big.NewRat(3, 2))
	fromExponents := FromExponents([]int{-1, 1})

	assert := assert.New(t)
	assert.True(fromString.Equal(fromRat))
	assert.True(fromString.Equal(fromExponents))
	assert.Equal(0, fromString.Ratio().Cmp(big.NewRat(3, 2)))
}

func TestFromRatioParseError(t *testing.T) {
	_, err := FromRatio("threehalves")
	var parseErr *vector.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCanonicalExponents(t *testing.T) {
	p := FromExponents([]int{1, 0, -1, 0})
	assert.Equal(t, vector.Vector{1, 0, -1}, p.Exponents())
}

func TestFrequency(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(660.0, mustRatio(t, "3/2").Frequency(), 1e-9)
	assert.InDelta(440.0, Unison().Frequency(), 1e-9)

	concert := DirectPitch(432)
	p, err := FromRatio("7/5", concert)
	assert.NoError(err)
	assert.InDelta(432*7.0/5.0, p.Frequency(), 1e-9)

	// another pitch may serve as concert pitch
	anchored := FromExponents([]int{1}, mustRatio(t, "3/2"))
	assert.InDelta(1320.0, anchored.Frequency(), 1e-9)
}

func TestCentsAndOctave(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(701.955000865387, mustRatio(t, "3/2").Cents(), 1e-9)
	assert.Equal(0.0, Unison().Cents())

	cases := []struct {
		ratio  string
		octave int
	}{
		{"1/1", 0}, {"3/2", 0}, {"2/1", 1}, {"3/1", 1},
		{"4/1", 2}, {"1/2", -1}, {"2/3", -1}, {"1/4", -2},
	}
	for _, c := range cases {
		assert.Equal(c.octave, mustRatio(t, c.ratio).Octave(), "octave of %s", c.ratio)
	}
}

func TestTonality(t *testing.T) {
	cases := []struct {
		exponents []int
		otonal    bool
	}{
		{[]int{-2, 1}, true},
		{[]int{-2, -1}, false},
		{nil, true},
		{[]int{1, -1}, false},  // 2/3: dominating factor in denominator
		{[]int{0, -1, 1}, true}, // 5/3
	}
	for _, c := range cases {
		p := FromExponents(c.exponents)
		assert.Equal(t, c.otonal, p.Tonality(), "tonality of %v", c.exponents)
	}
}

func TestHarmonic(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(3), FromExponents([]int{-1, 1}).Harmonic())
	assert.Equal(int64(-3), FromExponents([]int{1, -1}).Harmonic())
	assert.Equal(int64(1), Unison().Harmonic())
	assert.Equal(int64(0), mustRatio(t, "5/3").Harmonic())
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)
	assert.True(mustRatio(t, "2/3").Abs().Equal(mustRatio(t, "3/2")))
	assert.True(mustRatio(t, "3/2").Abs().Equal(mustRatio(t, "3/2")))
}

func TestAddSubtract(t *testing.T) {
	assert := assert.New(t)

	p := mustRatio(t, "3/2")
	sum := p.Add(mustRatio(t, "3/2"))
	assert.True(sum.Equal(mustRatio(t, "9/4")))
	// receiver untouched
	assert.True(p.Equal(mustRatio(t, "3/2")))

	diff := sum.Subtract(mustRatio(t, "3/2"))
	assert.True(diff.Equal(p))

	inPlace := mustRatio(t, "9/4")
	inPlace.SubtractInPlace(mustRatio(t, "3/2"))
	assert.True(inPlace.Equal(mustRatio(t, "3/2")))
}

func TestAdditiveInverseLaw(t *testing.T) {
	ratios := []string{"1/1", "3/2", "7/6", "16/15", "81/80", "11/8"}
	for _, a := range ratios {
		for _, b := range ratios {
			p := mustRatio(t, a)
			q := mustRatio(t, b)
			assert.True(t, p.Add(q).Subtract(q).Equal(p), "%s + %s - %s", a, b, b)
		}
	}
}

type fixedInterval float64

func (f fixedInterval) Cents() float64 { return float64(f) }

func TestAddGenericIntervalFallsBackToCents(t *testing.T) {
	p := Unison().Add(fixedInterval(1200))
	assert.True(t, p.Equal(mustRatio(t, "2/1")))

	down := Unison().Subtract(fixedInterval(1200))
	assert.True(t, down.Equal(mustRatio(t, "1/2")))

	// a non-rational interval lands within float precision
	fifth := Unison().Add(fixedInterval(701.955000865387))
	assert.InDelta(t, 701.955000865387, fifth.Cents(), 1e-6)
}

func TestNormalize(t *testing.T) {
	assert := assert.New(t)
	assert.True(mustRatio(t, "12/2").Normalize(2).Equal(mustRatio(t, "3/2")))
	assert.True(mustRatio(t, "1/3").Normalize(2).Equal(mustRatio(t, "4/3")))
	assert.True(mustRatio(t, "5/1").Normalize(3).Equal(mustRatio(t, "5/3")))

	p := mustRatio(t, "9/2")
	p.NormalizeInPlace(2)
	assert.True(p.Equal(mustRatio(t, "9/8")))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, ratio := range []string{"3/2", "9/1", "1/5", "45/32", "2/1"} {
		p := mustRatio(t, ratio)
		once := p.Normalize(2)
		assert.True(t, once.Normalize(2).Equal(once), "normalize(normalize(%s))", ratio)
	}
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)
	assert.True(mustRatio(t, "3/1").Register(0).Equal(mustRatio(t, "3/2")))
	assert.True(mustRatio(t, "3/2").Register(1).Equal(mustRatio(t, "3/1")))
	assert.True(mustRatio(t, "3/2").Register(-1).Equal(mustRatio(t, "3/4")))

	p := mustRatio(t, "3/4")
	p.RegisterInPlace(0)
	assert.True(p.Equal(mustRatio(t, "3/2")))
}

func TestMoveToClosestRegister(t *testing.T) {
	assert := assert.New(t)

	p, err := mustRatio(t, "3/2").MoveToClosestRegister(mustRatio(t, "15/8"))
	assert.NoError(err)
	assert.True(p.Equal(mustRatio(t, "3/2")))

	p, err = mustRatio(t, "3/2").MoveToClosestRegister(mustRatio(t, "9/2"))
	assert.NoError(err)
	assert.True(p.Equal(mustRatio(t, "6/1")), "got %s", p)

	q := mustRatio(t, "3/2")
	assert.NoError(q.MoveToClosestRegisterInPlace(mustRatio(t, "1/4")))
	assert.True(q.Equal(mustRatio(t, "3/16")), "got %s", q)
}

func TestMoveToClosestRegisterEquidistantPrefersLowerOctave(t *testing.T) {
	// 1/2 and 2/1 sit exactly 1200 cents either side of 1/1; the
	// earlier (lower) candidate must win the tie.
	candidates := []*JustIntonationPitch{mustRatio(t, "1/2"), mustRatio(t, "2/1")}
	v, err := pickClosestCandidate(candidates, Unison())
	assert.NoError(t, err)
	assert.Equal(t, vector.Vector{-1}, v)
}

func TestPickClosestCandidateEmpty(t *testing.T) {
	_, err := pickClosestCandidate(nil, Unison())
	var regErr *RegisterResolutionError
	assert.ErrorAs(t, err, &regErr)
}

func TestInverse(t *testing.T) {
	assert := assert.New(t)
	assert.True(mustRatio(t, "3/2").Inverse(nil).Equal(mustRatio(t, "2/3")))

	// involution
	for _, ratio := range []string{"1/1", "3/2", "7/4", "81/64"} {
		p := mustRatio(t, ratio)
		assert.True(p.Inverse(nil).Inverse(nil).Equal(p), "inverse(inverse(%s))", ratio)
	}

	// reflection around an axis mirrors the signed distance
	axis := mustRatio(t, "3/2")
	reflected := mustRatio(t, "2/1").Inverse(axis)
	assert.True(reflected.Equal(mustRatio(t, "9/8")), "got %s", reflected)
	assert.True(reflected.Inverse(axis).Equal(mustRatio(t, "2/1")))

	p := mustRatio(t, "3/2")
	p.InverseInPlace(nil)
	assert.True(p.Equal(mustRatio(t, "2/3")))
}

func TestIntersection(t *testing.T) {
	assert := assert.New(t)

	p := mustRatio(t, "5/3").Intersection(mustRatio(t, "7/6"), false)
	assert.Equal(0, p.Ratio().Cmp(big.NewRat(1, 3)))

	p = mustRatio(t, "9/7").Intersection(mustRatio(t, "3/2"), false)
	assert.True(p.Equal(mustRatio(t, "3/1")))

	p = mustRatio(t, "9/7").Intersection(mustRatio(t, "3/2"), true)
	assert.True(p.Equal(Unison()))

	// mixed signs share nothing
	p = mustRatio(t, "3/2").Intersection(mustRatio(t, "2/3"), false)
	assert.True(p.Equal(Unison()))

	q := mustRatio(t, "5/3")
	q.IntersectionInPlace(mustRatio(t, "7/6"), false)
	assert.Equal(0, q.Ratio().Cmp(big.NewRat(1, 3)))
}

func TestEqualIgnoresConcertPitch(t *testing.T) {
	a, err := FromRatio("3/2", DirectPitch(440))
	assert.NoError(t, err)
	b, err := FromRatio("3/2", DirectPitch(432))
	assert.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEqualInterval(t *testing.T) {
	p := mustRatio(t, "2/1")
	assert.True(t, p.EqualInterval(fixedInterval(1200)))
	assert.False(t, p.EqualInterval(fixedInterval(700)))
}

func TestString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("3/2", mustRatio(t, "3/2").String())
	assert.Equal("1/1", Unison().String())
	assert.Equal("3/1", FromExponents([]int{0, 1}).String())
}

func TestCentsToRatioRoundTrip(t *testing.T) {
	for _, cents := range []float64{0, 100, 701.955000865387, -498.044999134613, 1200} {
		got := RatioToCents(CentsToRatio(cents))
		assert.InDelta(t, cents, got, 1e-6, "cents %v", cents)
	}
}

func TestRatioToCents(t *testing.T) {
	assert.InDelta(t, 701.955000865387, RatioToCents(big.NewRat(3, 2)), 1e-9)
	assert.Equal(t, 1200.0, RatioToCents(big.NewRat(2, 1)))
	assert.Equal(t, -1200.0, RatioToCents(big.NewRat(1, 2)))
}

func TestSetConcertPitch(t *testing.T) {
	p := mustRatio(t, "3/2")
	p.SetConcertPitch(DirectPitch(220))
	assert.InDelta(t, 330.0, p.Frequency(), 1e-9)
}

func TestExponentsReturnsCopy(t *testing.T) {
	p := mustRatio(t, "3/2")
	exps := p.Exponents()
	exps[0] = 99
	assert.Equal(t, vector.Vector{-1, 1}, p.Exponents())
}

func TestOctaveIsFloorOfCents(t *testing.T) {
	p := mustRatio(t, "2/3")
	assert.Equal(t, int(math.Floor(p.Cents()/1200.0)), p.Octave())
}
