package tables

import (
	"fmt"

	chd "github.com/opencoff/go-chd"
)

// perfectHash wraps a github.com/opencoff/go-chd minimal perfect hash over a
// fixed key set, giving O(1) dense-array lookup for the ~76k legal rank-count
// fingerprints spec §4.2 calls for. The library has no call sites anywhere in
// the retrieval pack this module was grounded on, so this adapter is kept
// deliberately small and isolated: if go-chd's Builder/MPH surface differs
// from what's used here, only this file needs to change.
type perfectHash struct {
	mph  *chd.MPH
	size int
}

// buildPerfectHash constructs a minimal perfect hash over keys, which must be
// pairwise distinct. The returned hash maps each key to a unique slot in
// [0, len(keys)).
func buildPerfectHash(keys [][]byte) (*perfectHash, error) {
	b, err := chd.New(1.0, 4)
	if err != nil {
		return nil, fmt.Errorf("tables: chd.New: %w", err)
	}
	if err := b.Build(keys); err != nil {
		return nil, fmt.Errorf("tables: chd build: %w", err)
	}
	mph, err := b.Freeze()
	if err != nil {
		return nil, fmt.Errorf("tables: chd freeze: %w", err)
	}
	return &perfectHash{mph: mph, size: len(keys)}, nil
}

// Index returns the dense slot assigned to key. Callers must only query keys
// that were present in the build set; behavior on unknown keys is undefined
// (the hash is minimal-perfect only over its build set, not a general map).
func (p *perfectHash) Index(key []byte) uint32 {
	return uint32(p.mph.Find(key))
}

func (p *perfectHash) Len() int { return p.size }
