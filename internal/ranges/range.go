package ranges

import "github.com/lox/rangeequity/internal/card"

// HandRange is a normalized, deduplicated, weighted set of combos. Combos
// are always kept sorted by (A, B) ascending so that two equivalent ranges
// compare and render identically regardless of how they were built.
type HandRange struct {
	combos []Combo
}

// Combos returns the range's combos in canonical (A, B)-ascending order.
func (r HandRange) Combos() []Combo { return r.combos }

// Len reports how many distinct combos the range holds.
func (r HandRange) Len() int { return len(r.combos) }

// builder accumulates combos with last-write-wins semantics on weight,
// keyed by the canonical (low, high) card pair.
type builder struct {
	index  map[card.Card]map[card.Card]int
	order  []card.Card // first-seen A values; build does not read it, it sorts instead
}

func newBuilder() *builder {
	return &builder{index: map[card.Card]map[card.Card]int{}}
}

func (b *builder) put(c Combo) {
	if b.index[c.A] == nil {
		b.index[c.A] = map[card.Card]int{}
		b.order = append(b.order, c.A)
	}
	b.index[c.A][c.B] = c.Weight
}

func (b *builder) build() HandRange {
	var out []Combo
	for a, inner := range b.index {
		for bCard, w := range inner {
			out = append(out, Combo{A: a, B: bCard, Weight: w})
		}
	}
	sortCombos(out)
	return HandRange{combos: out}
}

func sortCombos(cs []Combo) {
	// Insertion sort: combo counts are small (<=1326) and this keeps the
	// package free of a sort.Slice closure allocation on the hot path.
	for i := 1; i < len(cs); i++ {
		v := cs[i]
		j := i - 1
		for j >= 0 && v.less(cs[j]) {
			cs[j+1] = cs[j]
			j--
		}
		cs[j+1] = v
	}
}

// WithoutMask returns a new HandRange with every combo that collides with
// blocked removed. Used to implement the "empty after blocking" precondition
// in the equity simulator.
func (r HandRange) WithoutMask(blocked uint64) HandRange {
	var out []Combo
	for _, c := range r.combos {
		if c.Mask()&blocked == 0 {
			out = append(out, c)
		}
	}
	return HandRange{combos: out}
}
