package tables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countsFromRanks(ranks ...int) [13]int {
	var c [13]int
	for _, r := range ranks {
		c[r]++
	}
	return c
}

func TestClassifyCategoryOrdering(t *testing.T) {
	quadCat, _ := classifyCounts(countsFromRanks(10, 10, 10, 10, 2, 3, 4))
	boatCat, _ := classifyCounts(countsFromRanks(9, 9, 9, 2, 2, 3, 4))
	straightCat, _ := classifyCounts(countsFromRanks(2, 3, 4, 5, 6, 8, 10))
	tripsCat, _ := classifyCounts(countsFromRanks(7, 7, 7, 1, 3, 5, 9))
	twoPairCat, _ := classifyCounts(countsFromRanks(8, 8, 4, 4, 1, 3, 9))
	pairCat, _ := classifyCounts(countsFromRanks(6, 6, 1, 3, 5, 9, 11))
	highCat, _ := classifyCounts(countsFromRanks(1, 3, 5, 7, 9, 11, 12))

	require.Equal(t, CategoryQuads, quadCat)
	require.Equal(t, CategoryFullHouse, boatCat)
	require.Equal(t, CategoryStraight, straightCat)
	require.Equal(t, CategoryTrips, tripsCat)
	require.Equal(t, CategoryTwoPair, twoPairCat)
	require.Equal(t, CategoryPair, pairCat)
	require.Equal(t, CategoryHighCard, highCat)

	require.Greater(t, quadCat, boatCat)
	require.Greater(t, boatCat, straightCat)
	require.Greater(t, straightCat, tripsCat)
	require.Greater(t, tripsCat, twoPairCat)
	require.Greater(t, twoPairCat, pairCat)
	require.Greater(t, pairCat, highCat)
}

func TestClassifyWheelIsLowestStraight(t *testing.T) {
	wheelCat, wheelTie := classifyCounts(countsFromRanks(0, 1, 2, 3, 12, 5, 7))
	sixHighCat, sixHighTie := classifyCounts(countsFromRanks(0, 1, 2, 3, 4, 7, 9))

	require.Equal(t, CategoryStraight, wheelCat)
	require.Equal(t, CategoryStraight, sixHighCat)
	require.Less(t, wheelTie, sixHighTie)
}

func TestClassifyTiebreaksFitInBudget(t *testing.T) {
	for _, fp := range legalFingerprints() {
		category, tiebreak := classifyCounts(fp)
		require.GreaterOrEqual(t, tiebreak, 0)
		require.Less(t, tiebreak, tiebreakMax)
		_ = category
	}
}

func TestFlushTableBeatsStraightOfSameRank(t *testing.T) {
	flushCat, _, ok := classifyFlush(0b0000000011111) // 2-3-4-5-6
	require.True(t, ok)
	require.Equal(t, CategoryStraightFlush, flushCat)

	straightCat, _ := classifyCounts(countsFromRanks(0, 1, 2, 3, 4))
	require.Equal(t, CategoryStraight, straightCat)
	require.Greater(t, flushCat, straightCat)
}

func TestBlobRoundTrip(t *testing.T) {
	ft := buildFlushTable()
	blob := EncodeBlob(&Tables{Rank: &RankTable{}, Flush: ft})
	decoded, err := DecodeBlob(blob)
	require.NoError(t, err)
	require.Equal(t, ft.scores, decoded.scores)

	_, err = DecodeBlob([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestLoadIsDeterministic(t *testing.T) {
	t1, err := Load()
	require.NoError(t, err)
	t2, err := Load()
	require.NoError(t, err)
	require.Same(t, t1, t2)
}
