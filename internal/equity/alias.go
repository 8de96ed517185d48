package equity

import (
	"math/rand/v2"

	"github.com/lox/rangeequity/internal/ranges"
)

// aliasSampler draws indices into a fixed combo list in O(1) per draw,
// respecting per-combo weights treated as unnormalized probabilities
// (spec §4.4, §9 "alias method gives O(1) draws").
type aliasSampler struct {
	combos []ranges.Combo
	prob   []float64 // in [0,1], scaled per Vose's method
	alias  []int
}

func newAliasSampler(r ranges.HandRange) *aliasSampler {
	combos := r.Combos()
	n := len(combos)
	s := &aliasSampler{
		combos: combos,
		prob:   make([]float64, n),
		alias:  make([]int, n),
	}
	if n == 0 {
		return s
	}

	total := 0.0
	for _, c := range combos {
		total += float64(c.Weight)
	}

	scaled := make([]float64, n)
	var small, large []int
	for i, c := range combos {
		scaled[i] = float64(c.Weight) * float64(n) / total
		if scaled[i] < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		sIdx := small[len(small)-1]
		small = small[:len(small)-1]
		lIdx := large[len(large)-1]
		large = large[:len(large)-1]

		s.prob[sIdx] = scaled[sIdx]
		s.alias[sIdx] = lIdx

		scaled[lIdx] = scaled[lIdx] + scaled[sIdx] - 1.0
		if scaled[lIdx] < 1.0 {
			small = append(small, lIdx)
		} else {
			large = append(large, lIdx)
		}
	}
	for _, i := range large {
		s.prob[i] = 1.0
	}
	for _, i := range small {
		s.prob[i] = 1.0
	}

	return s
}

// Draw returns a uniformly-weighted-by-prob index in [0, len(combos)).
func (s *aliasSampler) Draw(rng *rand.Rand) int {
	n := len(s.combos)
	if n == 0 {
		return -1
	}
	i := rng.IntN(n)
	if rng.Float64() < s.prob[i] {
		return i
	}
	return s.alias[i]
}
