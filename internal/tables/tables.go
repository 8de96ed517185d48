// Package tables builds and serves the lookup tables behind the 7-card
// evaluator: a perfect-hash-indexed rank table for non-flush hands and a
// dense array keyed by suited-rank mask for flushes. Construction is driven
// in-process via sync.Once on first use; no prebuilt blob is loaded.
// cmd/gen-tables runs the same construction and writes the flush table as a
// blob (EncodeBlob/DecodeBlob), but Load does not read it.
package tables

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/lox/rangeequity/internal/errs"
)

const (
	blobMagic   uint32 = 0x504f4b52 // "POKR"
	blobVersion uint16 = 1
)

// Tables bundles the two lookup structures the evaluator needs.
type Tables struct {
	Rank  *RankTable
	Flush *FlushTable
}

var (
	once     sync.Once
	built    *Tables
	buildErr error
)

// Load returns the process-wide Tables, building them on first use. The
// build takes on the order of tens of milliseconds and is safe to call
// concurrently from multiple goroutines.
func Load() (*Tables, error) {
	once.Do(func() {
		rt, err := buildRankTable()
		if err != nil {
			buildErr = err
			return
		}
		built = &Tables{Rank: rt, Flush: buildFlushTable()}
	})
	return built, buildErr
}

// EncodeBlob serializes t into the on-disk format cmd/gen-tables writes:
// a fixed header followed by the flush table's 8192 uint16 entries. The
// rank table is perfect-hash-indexed and rebuilt in-process rather than
// serialized, since its hash function isn't stable across builds without
// also persisting the hash's internal seed tables; only the flush table
// (a plain dense array) round-trips through the blob format.
func EncodeBlob(t *Tables) []byte {
	flushLen := uint32(len(t.Flush.scores))
	buf := make([]byte, 4+2+4+4+int(flushLen)*2)

	binary.LittleEndian.PutUint32(buf[0:4], blobMagic)
	binary.LittleEndian.PutUint16(buf[4:6], blobVersion)
	binary.LittleEndian.PutUint32(buf[6:10], 0) // rank_table_len: unused, see EncodeBlob doc
	binary.LittleEndian.PutUint32(buf[10:14], flushLen)

	off := 14
	for _, s := range t.Flush.scores {
		binary.LittleEndian.PutUint16(buf[off:off+2], s)
		off += 2
	}
	return buf
}

// DecodeBlob parses a blob written by EncodeBlob, validating the header
// before trusting the payload.
func DecodeBlob(data []byte) (*FlushTable, error) {
	if len(data) < 14 {
		return nil, fmt.Errorf("%w: blob too short", errs.ErrTableLoadError)
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	version := binary.LittleEndian.Uint16(data[4:6])
	if magic != blobMagic {
		return nil, fmt.Errorf("%w: bad magic %#x", errs.ErrTableLoadError, magic)
	}
	if version != blobVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrTableLoadError, version)
	}
	flushLen := binary.LittleEndian.Uint32(data[10:14])
	if flushLen != 1<<13 {
		return nil, fmt.Errorf("%w: unexpected flush table length %d", errs.ErrTableLoadError, flushLen)
	}
	want := 14 + int(flushLen)*2
	if len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrTableLoadError, want, len(data))
	}

	ft := &FlushTable{}
	off := 14
	for i := range ft.scores {
		ft.scores[i] = binary.LittleEndian.Uint16(data[off : off+2])
		off += 2
	}
	return ft, nil
}
