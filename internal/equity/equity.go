// Package equity implements the range-vs-range Monte Carlo equity simulator
// described in spec §4.4-§4.6: weighted combo sampling, dead-card-aware
// rejection sampling, board completion, and a worker-pool fan-out that
// merges thread-local accumulators once per worker.
package equity

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/rangeequity/internal/card"
	"github.com/lox/rangeequity/internal/errs"
	"github.com/lox/rangeequity/internal/eval"
	"github.com/lox/rangeequity/internal/randutil"
	"github.com/lox/rangeequity/internal/ranges"
)

const (
	// maxRejectSamples bounds the retry budget R from spec §4.4, applied to
	// each player's draw within a trial.
	maxRejectSamples = 1000

	// chunkSize is the fixed per-iteration trial batch B from spec §4.5.
	chunkSize = 256

	// defaultSeed is used by CalcEquity, which (per spec §6) takes no seed
	// parameter. CalcEquityWithSeed exposes the seed explicitly for callers
	// that need the determinism property from spec §8.
	defaultSeed = 0x1b0a7e5eed
)

// Result holds the per-player equities from a completed simulation and the
// number of whole trials discarded by rejection sampling.
type Result struct {
	Equities       []float64
	RejectedTrials uint64
}

// CalcEquity runs a Monte Carlo equity simulation across nThreads workers,
// per spec §4.5. It is deterministic for a fixed (nThreads, nGames, ranges,
// deadMask) using the package's default seed; use CalcEquityWithSeed to
// control the seed explicitly.
func CalcEquity(rs []ranges.HandRange, deadMask uint64, nThreads uint32, nGames uint64) ([]float64, error) {
	res, err := CalcEquityWithSeed(rs, deadMask, nThreads, nGames, defaultSeed)
	if err != nil {
		return nil, err
	}
	return res.Equities, nil
}

// CalcEquityWithSeed is CalcEquity with an explicit base seed, each worker's
// RNG mixing that seed with its own index (spec §4.4, §5).
func CalcEquityWithSeed(rs []ranges.HandRange, deadMask uint64, nThreads uint32, nGames uint64, seed int64) (Result, error) {
	n := len(rs)
	if n < 1 || n > 6 {
		return Result{}, fmt.Errorf("%w: got %d ranges", errs.ErrTooManyPlayers, n)
	}
	if bits.OnesCount64(deadMask) > 5 {
		return Result{}, fmt.Errorf("%w: dead mask has more than 5 cards", errs.ErrInvalidBoard)
	}
	if nThreads < 1 {
		nThreads = 1
	}
	if nGames < 1 {
		nGames = 1
	}

	samplers := make([]*aliasSampler, n)
	for i, r := range rs {
		filtered := r.WithoutMask(deadMask)
		if filtered.Len() == 0 {
			return Result{}, fmt.Errorf("%w: player %d has no combos left after blocking", errs.ErrImpossibleRange, i)
		}
		samplers[i] = newAliasSampler(filtered)
	}

	knownBoard := card.Empty()
	for r := 0; r < card.NumRanks; r++ {
		for s := 0; s < card.NumSuits; s++ {
			c := card.New(r, s)
			if deadMask&c.Bit() != 0 {
				knownBoard = knownBoard.Add(c)
			}
		}
	}

	trialCounts := splitTrials(nGames, nThreads)

	var mu sync.Mutex
	totals := make([]float64, n)
	workerWins := make([][]float64, len(trialCounts))
	var handsPlayed uint64
	var rejectedTrials uint64

	g := new(errgroup.Group)
	for worker, count := range trialCounts {
		worker, count := worker, count
		if count == 0 {
			continue
		}
		g.Go(func() error {
			rng := randutil.New(int64(uint64(seed) + uint64(worker)*0x9e3779b97f4a7c15))
			wins, rejects, played := runWorker(samplers, deadMask, knownBoard, rng, count)

			mu.Lock()
			defer mu.Unlock()
			workerWins[worker] = wins
			handsPlayed += played
			rejectedTrials += rejects
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Sum in worker order, not completion order, so float rounding is the
	// same on every run.
	for _, wins := range workerWins {
		for i := range wins {
			totals[i] += wins[i]
		}
	}

	equities := make([]float64, n)
	for i := range equities {
		if handsPlayed == 0 {
			continue
		}
		equities[i] = totals[i] / float64(handsPlayed)
	}

	return Result{Equities: equities, RejectedTrials: rejectedTrials}, nil
}

// splitTrials divides nGames as evenly as possible across nThreads workers.
func splitTrials(nGames uint64, nThreads uint32) []uint64 {
	out := make([]uint64, nThreads)
	base := nGames / uint64(nThreads)
	rem := nGames % uint64(nThreads)
	for i := range out {
		out[i] = base
		if uint64(i) < rem {
			out[i]++
		}
	}
	return out
}

// runWorker accumulates wins+ties-weighted totals for trialCount trials,
// processed in fixed-size chunks (spec §4.5). It never merges into shared
// state itself; the caller does that once the worker returns.
func runWorker(samplers []*aliasSampler, deadMask uint64, knownBoard card.Hand, rng *rand.Rand, trialCount uint64) (wins []float64, rejectedTrials, handsPlayed uint64) {
	wins = make([]float64, len(samplers))

	remaining := trialCount
	for remaining > 0 {
		chunk := uint64(chunkSize)
		if remaining < chunk {
			chunk = remaining
		}
		for i := uint64(0); i < chunk; i++ {
			rejects := playTrial(samplers, deadMask, knownBoard, rng, wins)
			rejectedTrials += rejects
			handsPlayed++
		}
		remaining -= chunk
	}
	return wins, rejectedTrials, handsPlayed
}

// playTrial runs one full showdown trial, retrying from scratch whenever
// the rejection-sampling budget is exhausted. It returns how many whole
// trials were discarded before this one succeeded.
func playTrial(samplers []*aliasSampler, deadMask uint64, knownBoard card.Hand, rng *rand.Rand, wins []float64) (rejectedTrials uint64) {
	for {
		combos, committed, ok := sampleHoleCards(samplers, deadMask, rng)
		if !ok {
			rejectedTrials++
			continue
		}

		board := completeBoard(knownBoard, committed, rng)
		scores := make([]uint16, len(combos))
		best := uint16(0)
		for i, c := range combos {
			h := card.FromCards(c.A, c.B)
			h = h.Merge(board)
			score, err := eval.Evaluate(h)
			if err != nil {
				panic(err) // table corruption: spec §7 says terminate, not recover
			}
			scores[i] = score
			if score > best {
				best = score
			}
		}

		winners := 0
		for _, s := range scores {
			if s == best {
				winners++
			}
		}
		share := 1.0 / float64(winners)
		for i, s := range scores {
			if s == best {
				wins[i] += share
			}
		}
		return rejectedTrials
	}
}

// sampleHoleCards draws one combo per player, skipping any combo whose
// cards collide with already-committed cards, with a bounded per-player
// retry budget. On exhaustion the whole trial fails (ok=false) and must be
// discarded by the caller.
func sampleHoleCards(samplers []*aliasSampler, deadMask uint64, rng *rand.Rand) (combos []ranges.Combo, committed card.Hand, ok bool) {
	n := len(samplers)
	combos = make([]ranges.Combo, n)
	committedMask := deadMask

	order := rng.Perm(n)
	for _, p := range order {
		drew := false
		for attempt := 0; attempt < maxRejectSamples; attempt++ {
			idx := samplers[p].Draw(rng)
			c := samplers[p].combos[idx]
			if c.Mask()&committedMask != 0 {
				continue
			}
			combos[p] = c
			committedMask |= c.Mask()
			drew = true
			break
		}
		if !drew {
			return nil, card.Empty(), false
		}
	}

	h := card.Empty()
	for r := 0; r < card.NumRanks; r++ {
		for s := 0; s < card.NumSuits; s++ {
			c := card.New(r, s)
			if committedMask&c.Bit() != 0 {
				h = h.Add(c)
			}
		}
	}
	return combos, h, true
}

// completeBoard fills knownBoard (the pre-dealt community cards from
// dead_mask) out to 5 cards, drawing uniformly from whatever remains of the
// deck once committed (known board + all players' hole cards) is removed.
func completeBoard(knownBoard card.Hand, committed card.Hand, rng *rand.Rand) card.Hand {
	needed := 5 - knownBoard.Count()
	if needed <= 0 {
		return knownBoard
	}

	var avail []card.Card
	for r := 0; r < card.NumRanks; r++ {
		for s := 0; s < card.NumSuits; s++ {
			c := card.New(r, s)
			if !committed.Contains(c) {
				avail = append(avail, c)
			}
		}
	}
	rng.Shuffle(len(avail), func(i, j int) { avail[i], avail[j] = avail[j], avail[i] })

	board := knownBoard
	for i := 0; i < needed && i < len(avail); i++ {
		board = board.Add(avail[i])
	}
	return board
}
