package tables

import "fmt"

// RankTable is a dense, perfect-hash-indexed lookup from a 7-card-or-fewer
// rank-count fingerprint to its best non-flush score. It never participates
// in flush detection; FlushTable handles that separately and the evaluator
// takes the max of the two (spec §4.2).
type RankTable struct {
	hash   *perfectHash
	scores []uint16
}

// buildRankTable enumerates every legal fingerprint, classifies it, and packs
// the results behind a minimal perfect hash.
func buildRankTable() (*RankTable, error) {
	fps := legalFingerprints()
	keys := make([][]byte, len(fps))
	for i, counts := range fps {
		keys[i] = fingerprintKeyBytes(fingerprintKey(counts))
	}

	ph, err := buildPerfectHash(keys)
	if err != nil {
		return nil, fmt.Errorf("tables: build rank table: %w", err)
	}

	scores := make([]uint16, ph.Len())
	for i, counts := range fps {
		category, tiebreak := classifyCounts(counts)
		slot := ph.Index(keys[i])
		scores[slot] = PackScore(category, tiebreak)
	}

	return &RankTable{hash: ph, scores: scores}, nil
}

// Lookup returns the non-flush score for the rank-count fingerprint fp.
func (t *RankTable) Lookup(fp uint64) uint16 {
	slot := t.hash.Index(fingerprintKeyBytes(fp))
	return t.scores[slot]
}
