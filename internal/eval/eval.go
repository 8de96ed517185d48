// Package eval implements the 7-card hand evaluator: a constant-time lookup
// that reduces any 0-to-7-card Hand to a single total-ordered 16-bit score,
// per spec §4.2.
package eval

import (
	"github.com/lox/rangeequity/internal/card"
	"github.com/lox/rangeequity/internal/tables"
)

// Evaluate returns h's score. Higher scores are stronger hands; scores are
// comparable across any two hands regardless of card count. Evaluation never
// allocates and never branches into a variable-length scan: both the rank
// and flush paths are dense table lookups.
func Evaluate(h card.Hand) (uint16, error) {
	t, err := tables.Load()
	if err != nil {
		return 0, err
	}

	rankScore := t.Rank.Lookup(h.Fingerprint())

	var flushScore uint16
	if suit, ok := h.FlushSuit(); ok {
		flushScore = t.Flush.Lookup(h.SuitedRankMask(suit))
	}

	if flushScore > rankScore {
		return flushScore, nil
	}
	return rankScore, nil
}

// MustEvaluate is Evaluate for callers that have already forced a table
// load (e.g. via an init-time warmup) and want to treat a load failure as a
// programming error rather than a per-call error return.
func MustEvaluate(h card.Hand) uint16 {
	score, err := Evaluate(h)
	if err != nil {
		panic(err)
	}
	return score
}
