package equity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/rangeequity/internal/card"
	"github.com/lox/rangeequity/internal/ranges"
)

func mustRange(t *testing.T, s string) ranges.HandRange {
	t.Helper()
	r, err := ranges.FromString(s)
	require.NoError(t, err)
	return r
}

func TestAAvsKKEquity(t *testing.T) {
	rs := []ranges.HandRange{mustRange(t, "AA"), mustRange(t, "KK")}
	res, err := CalcEquityWithSeed(rs, 0, 4, 50_000, 42)
	require.NoError(t, err)
	require.InDelta(t, 0.82, res.Equities[0], 0.03)
}

func TestRandomVsRandomIsRoughlyEven(t *testing.T) {
	rs := []ranges.HandRange{mustRange(t, "random"), mustRange(t, "random")}
	res, err := CalcEquityWithSeed(rs, 0, 4, 30_000, 7)
	require.NoError(t, err)
	require.InDelta(t, 0.5, res.Equities[0], 0.03)
	require.InDelta(t, 0.5, res.Equities[1], 0.03)
}

func TestSumInvariant(t *testing.T) {
	rs := []ranges.HandRange{mustRange(t, "AKs"), mustRange(t, "QQ"), mustRange(t, "76s")}
	res, err := CalcEquityWithSeed(rs, 0, 3, 20_000, 99)
	require.NoError(t, err)
	sum := 0.0
	for _, e := range res.Equities {
		sum += e
	}
	require.InDelta(t, 1.0, sum, 0.01)
}

func TestDeterministicForFixedSeedAndThreads(t *testing.T) {
	rs := []ranges.HandRange{mustRange(t, "AsKs"), mustRange(t, "QhQd")}
	board, err := card.GetCardMask("JsTs2c")
	require.NoError(t, err)

	r1, err := CalcEquityWithSeed(rs, board, 4, 20_000, 123)
	require.NoError(t, err)
	r2, err := CalcEquityWithSeed(rs, board, 4, 20_000, 123)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestFlopBoardEquity(t *testing.T) {
	rs := []ranges.HandRange{mustRange(t, "AsKs"), mustRange(t, "QhQd")}
	board, err := card.GetCardMask("JsTs2c")
	require.NoError(t, err)
	res, err := CalcEquityWithSeed(rs, board, 4, 40_000, 55)
	require.NoError(t, err)
	require.InDelta(t, 0.59, res.Equities[0], 0.04)
}

func TestImpossibleRangeAfterBlocking(t *testing.T) {
	rs := []ranges.HandRange{mustRange(t, "AsAh")}
	deadMask, err := card.GetCardMask("As")
	require.NoError(t, err)
	_, err = CalcEquity(rs, deadMask, 2, 1000)
	require.Error(t, err)
}

func TestRangeSurvivesPartialBlocking(t *testing.T) {
	rs := []ranges.HandRange{mustRange(t, "AA")}
	deadMask, err := card.GetCardMask("AsAh")
	require.NoError(t, err)
	_, err = CalcEquity(rs, deadMask, 2, 1000)
	require.NoError(t, err)
}

func TestTooManyPlayers(t *testing.T) {
	rs := make([]ranges.HandRange, 7)
	for i := range rs {
		rs[i] = mustRange(t, "random")
	}
	_, err := CalcEquity(rs, 0, 2, 1000)
	require.Error(t, err)
}
