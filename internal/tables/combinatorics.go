package tables

// Package-level combinatorial helpers used to turn a poker hand category's
// kickers into a compact, strictly monotonic tiebreak value. Each kicker set
// is a small subset of the 13 ranks; colexIndex assigns it a position in
// [0, C(n,k)) using the combinatorial number system, which has the property
// that ranking by this index agrees with ranking by "compare the largest
// differing kicker" — exactly how poker kickers are compared.

const maxN = 14

var binomTable [maxN][8]int

func init() {
	for n := 0; n < maxN; n++ {
		binomTable[n][0] = 1
		for k := 1; k < 8; k++ {
			if k > n {
				binomTable[n][k] = 0
				continue
			}
			if k == n {
				binomTable[n][k] = 1
				continue
			}
			binomTable[n][k] = binomTable[n-1][k-1] + binomTable[n-1][k]
		}
	}
}

func binom(n, k int) int {
	if k < 0 || n < 0 || k >= 8 || n >= maxN {
		return 0
	}
	return binomTable[n][k]
}

// colexIndex returns the combinatorial-number-system index of the subset
// vals (values need not be pre-sorted, but must be distinct).
func colexIndex(vals []int) int {
	sorted := append([]int(nil), vals...)
	insertionSortAsc(sorted)
	idx := 0
	for i, v := range sorted {
		idx += binom(v, i+1)
	}
	return idx
}

func insertionSortAsc(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}
