// Package index implements the optional hand indexer adjunct from spec
// §4.6: a bijection between suit-isomorphic hands and a dense integer range,
// commutative under suit relabeling. It depends only on internal/card and is
// never imported by the core evaluator or simulator packages.
package index

import "github.com/lox/rangeequity/internal/card"

// suitPermutations holds all 4! relabelings of the 4 suits.
var suitPermutations = permutations([]int{0, 1, 2, 3})

// Canonical returns the lexicographically smallest suit relabeling of cards,
// encoded as a sorted slice of (rank, suit) indices. Two card sets that are
// isomorphic under suit permutation always produce the same Canonical
// output, making it usable as a map key for a dense per-round index.
func Canonical(cards []card.Card) []card.Card {
	best := relabel(cards, suitPermutations[0])
	for _, perm := range suitPermutations[1:] {
		candidate := relabel(cards, perm)
		if less(candidate, best) {
			best = candidate
		}
	}
	return best
}

func relabel(cards []card.Card, perm []int) []card.Card {
	out := make([]card.Card, len(cards))
	for i, c := range cards {
		out[i] = card.New(c.Rank(), perm[c.Suit()])
	}
	insertionSort(out)
	return out
}

func less(a, b []card.Card) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func insertionSort(cs []card.Card) {
	for i := 1; i < len(cs); i++ {
		v := cs[i]
		j := i - 1
		for j >= 0 && cs[j] > v {
			cs[j+1] = cs[j]
			j--
		}
		cs[j+1] = v
	}
}

func permutations(xs []int) [][]int {
	if len(xs) <= 1 {
		cp := append([]int(nil), xs...)
		return [][]int{cp}
	}
	var out [][]int
	for i := range xs {
		rest := make([]int, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{xs[i]}, p...))
		}
	}
	return out
}

// Indexer assigns a dense, first-seen integer index to each distinct
// canonical hand it observes, satisfying the bijection contract from spec
// §4.6 once all canonical hands for a round have been registered.
type Indexer struct {
	seen map[string]int
	next int
}

// New returns an empty Indexer.
func New() *Indexer {
	return &Indexer{seen: map[string]int{}}
}

// IndexOf returns the dense index for cards' canonical form, assigning a new
// one on first sight.
func (idx *Indexer) IndexOf(cards []card.Card) int {
	key := string(canonicalKey(Canonical(cards)))
	if i, ok := idx.seen[key]; ok {
		return i
	}
	i := idx.next
	idx.seen[key] = i
	idx.next++
	return i
}

// Len reports how many distinct canonical hands have been indexed so far.
func (idx *Indexer) Len() int { return idx.next }

func canonicalKey(cards []card.Card) []byte {
	b := make([]byte, len(cards))
	for i, c := range cards {
		b[i] = byte(c)
	}
	return b
}
