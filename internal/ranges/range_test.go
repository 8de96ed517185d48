package ranges

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/rangeequity/internal/card"
)

func TestRandomRangeSize(t *testing.T) {
	r, err := FromString("random")
	require.NoError(t, err)
	require.Equal(t, 1326, r.Len())
	for _, c := range r.Combos() {
		require.Equal(t, 100, c.Weight)
	}
}

func TestComboCounts(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"AA", 6},
		{"AKs", 4},
		{"AKo", 12},
		{"AK", 16},
		{"22+", 78},
	}
	for _, tc := range cases {
		r, err := FromString(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, r.Len(), tc.in)
	}
}

func TestPairRangeInclusive(t *testing.T) {
	r, err := FromString("22-55")
	require.NoError(t, err)
	require.Equal(t, 4*6, r.Len())
}

func TestSuitedPlusRange(t *testing.T) {
	r, err := FromString("76s+")
	require.NoError(t, err)
	// 76s,87s,98s,T9s,JTs,QJs,KQs: 7 gap-1 pairs x 4 suited combos each.
	// Stops at KQs, not AKs, per spec.md's literal worked example.
	require.Equal(t, 7*4, r.Len())
}

func TestExplicitComboWithWeight(t *testing.T) {
	r, err := FromString("AsKh:75")
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	require.Equal(t, 75, r.Combos()[0].Weight)
}

func TestDuplicateComboLastWins(t *testing.T) {
	r, err := FromString("AsKh:10,AsKh:90")
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	require.Equal(t, 90, r.Combos()[0].Weight)
}

func TestDuplicateCardInComboIsError(t *testing.T) {
	_, err := FromString("AsAs")
	require.Error(t, err)
}

func TestInvalidSyntaxErrors(t *testing.T) {
	for _, bad := range []string{"", "Z9", "AsK", "AsKh:150", "22-"} {
		_, err := FromString(bad)
		require.Error(t, err, bad)
	}
}

func TestRenderIdempotence(t *testing.T) {
	for _, in := range []string{"AA", "AKs", "AKo", "22+", "AsKh:75"} {
		r1, err := FromString(in)
		require.NoError(t, err)
		r2, err := FromString(r1.String())
		require.NoError(t, err)
		require.Equal(t, r1, r2)
	}
}

func TestWithoutMask(t *testing.T) {
	r, err := FromString("AA")
	require.NoError(t, err)
	as, err := card.Parse("As")
	require.NoError(t, err)
	filtered := r.WithoutMask(as.Bit())
	require.Equal(t, 3, filtered.Len())
}
