package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/rangeequity/internal/card"
)

func TestCanonicalCommutativeUnderSuitRelabel(t *testing.T) {
	hand := []card.Card{card.New(12, 0), card.New(11, 1)}
	relabeled := []card.Card{card.New(12, 1), card.New(11, 0)}
	require.Equal(t, Canonical(hand), Canonical(relabeled))
}

func TestIndexerBijection(t *testing.T) {
	idx := New()
	a := idx.IndexOf([]card.Card{card.New(12, 0), card.New(11, 1)})
	b := idx.IndexOf([]card.Card{card.New(12, 1), card.New(11, 0)})
	require.Equal(t, a, b, "suit-isomorphic hands must share an index")

	c := idx.IndexOf([]card.Card{card.New(10, 0), card.New(9, 1)})
	require.NotEqual(t, a, c)
	require.Equal(t, 2, idx.Len())
}
