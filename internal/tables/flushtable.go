package tables

// FlushTable is a dense array over every 13-bit suited-rank mask (0..8191),
// giving the flush/straight-flush score for that mask, or 0 when fewer than
// 5 of the mask's bits are suited cards actually present. A plain array
// (not a perfect hash) suffices here: the key space is already only 8192
// entries, small enough to hold densely (spec §4.2).
type FlushTable struct {
	scores [1 << 13]uint16
}

func buildFlushTable() *FlushTable {
	t := &FlushTable{}
	for mask := 0; mask < (1 << 13); mask++ {
		category, tiebreak, ok := classifyFlush(uint16(mask))
		if !ok {
			continue
		}
		t.scores[mask] = PackScore(category, tiebreak)
	}
	return t
}

// Lookup returns the flush/straight-flush score for a suited-rank mask, or 0
// if the mask holds fewer than 5 bits.
func (t *FlushTable) Lookup(suitedMask uint16) uint16 {
	return t.scores[suitedMask]
}
