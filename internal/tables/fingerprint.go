package tables

import "encoding/binary"

// legalFingerprints enumerates every distinct 13-lane rank-count vector that
// can arise from 0..7 cards with each lane in 0..4: 76,155 vectors in all.
// Each is returned as its unpacked counts; fingerprintKey packs one into
// the lane layout the rank table is keyed by.
func legalFingerprints() [][13]int {
	var out [][13]int
	var counts [13]int
	var rec func(rank, remaining int)
	rec = func(rank, remaining int) {
		if rank == 13 {
			cp := counts
			out = append(out, cp)
			return
		}
		maxHere := 4
		if remaining < maxHere {
			maxHere = remaining
		}
		for c := 0; c <= maxHere; c++ {
			counts[rank] = c
			rec(rank+1, remaining-c)
		}
		counts[rank] = 0
	}
	rec(0, 7)
	return out
}

// fingerprintKey packs a rank-count vector into the same lane layout as
// card.Hand.Fingerprint; fingerprintKeyBytes serializes the result for the
// perfect hash.
func fingerprintKey(counts [13]int) uint64 {
	var key uint64
	for r, c := range counts {
		key |= uint64(c) << uint(4*r)
	}
	return key
}

func fingerprintKeyBytes(key uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, key)
	return b
}
