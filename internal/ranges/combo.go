// Package ranges implements the hand-range grammar from spec §4.3: parsing,
// normalization, and rendering of weighted starting-hand combo sets.
package ranges

import "github.com/lox/rangeequity/internal/card"

// Combo is a specific 2-card starting hand with a sampling weight. A is
// always the lower card index, giving every combo a single canonical
// representation.
type Combo struct {
	A, B   card.Card
	Weight int
}

func newCombo(a, b card.Card, weight int) Combo {
	if a > b {
		a, b = b, a
	}
	return Combo{A: a, B: b, Weight: weight}
}

// Mask returns the 2-bit dead-card mask this combo occupies.
func (c Combo) Mask() uint64 { return c.A.Bit() | c.B.Bit() }

func (c Combo) less(other Combo) bool {
	if c.A != other.A {
		return c.A < other.A
	}
	return c.B < other.B
}
