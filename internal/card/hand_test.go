package card

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddRemoveInvariants(t *testing.T) {
	h := Empty()
	cards := []Card{New(12, 3), New(12, 2), New(0, 0), New(5, 1)}
	for _, c := range cards {
		h = h.Add(c)
	}
	require.Equal(t, len(cards), h.Count())
	require.Equal(t, len(cards), h.popcountOccupancy())

	sumRanks := 0
	for r := 0; r < NumRanks; r++ {
		sumRanks += h.RankCount(r)
	}
	require.Equal(t, len(cards), sumRanks)

	sumSuits := 0
	for s := 0; s < NumSuits; s++ {
		sumSuits += h.SuitCount(s)
	}
	require.Equal(t, len(cards), sumSuits)

	h = h.Remove(cards[0])
	require.Equal(t, len(cards)-1, h.Count())
	require.False(t, h.Contains(cards[0]))
}

func TestAddCommutative(t *testing.T) {
	a, b := New(5, 1), New(9, 2)
	h1 := Empty().Add(a).Add(b)
	h2 := Empty().Add(b).Add(a)
	require.Equal(t, h1, h2)
}

func TestMergeDisjoint(t *testing.T) {
	h1 := FromCards(New(0, 0), New(1, 1))
	h2 := FromCards(New(2, 2), New(3, 3))
	merged := h1.Merge(h2)
	require.Equal(t, 4, merged.Count())
	for _, c := range []Card{New(0, 0), New(1, 1), New(2, 2), New(3, 3)} {
		require.True(t, merged.Contains(c))
	}
}

func TestFlushSuit(t *testing.T) {
	h := FromCards(New(0, 3), New(2, 3), New(4, 3), New(6, 3), New(8, 3))
	suit, ok := h.FlushSuit()
	require.True(t, ok)
	require.Equal(t, 3, suit)

	h2 := FromCards(New(0, 3), New(2, 2), New(4, 1), New(6, 0))
	_, ok = h2.FlushSuit()
	require.False(t, ok)
}
