package ranges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/rangeequity/internal/card"
	"github.com/lox/rangeequity/internal/errs"
)

const rankChars = "23456789TJQKA"

// FromString parses the range grammar from spec §4.3 into a normalized
// HandRange. "random" (case-insensitive) yields the full 1326-combo range at
// weight 100. Malformed input returns errs.ErrInvalidRangeSyntax.
func FromString(s string) (HandRange, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "random") {
		return fullRange(), nil
	}

	b := newBuilder()
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if err := parseToken(tok, b); err != nil {
			return HandRange{}, err
		}
	}
	r := b.build()
	if r.Len() == 0 {
		return HandRange{}, fmt.Errorf("%w: %q produced no combos", errs.ErrInvalidRangeSyntax, s)
	}
	return r, nil
}

func fullRange() HandRange {
	b := newBuilder()
	for r1 := 0; r1 < card.NumRanks; r1++ {
		for r2 := r1; r2 < card.NumRanks; r2++ {
			if r1 == r2 {
				addPair(b, r1, 100)
			} else {
				addNonpair(b, r2, r1, nil, 100)
			}
		}
	}
	return b.build()
}

func rankIndex(b byte) (int, bool) {
	for i := 0; i < len(rankChars); i++ {
		if rankChars[i] == b || (rankChars[i] >= 'A' && rankChars[i]+32 == b) {
			return i, true
		}
	}
	return 0, false
}

func parseToken(tok string, b *builder) error {
	if len(tok) < 2 {
		return fmt.Errorf("%w: token %q too short", errs.ErrInvalidRangeSyntax, tok)
	}

	r1, ok1 := rankIndex(tok[0])
	if !ok1 {
		return fmt.Errorf("%w: unknown rank in %q", errs.ErrInvalidRangeSyntax, tok)
	}

	if r2, ok2 := rankIndex(tok[1]); ok2 {
		return parseRankExpr(tok, r1, r2, b)
	}

	return parseExplicit(tok, b)
}

func parseExplicit(tok string, b *builder) error {
	weight := 100
	body := tok
	if idx := strings.IndexByte(tok, ':'); idx >= 0 {
		body = tok[:idx]
		w, err := strconv.Atoi(tok[idx+1:])
		if err != nil || w < 0 || w > 100 {
			return fmt.Errorf("%w: bad weight in %q", errs.ErrInvalidRangeSyntax, tok)
		}
		weight = w
	}
	if len(body) != 4 {
		return fmt.Errorf("%w: malformed combo %q", errs.ErrInvalidRangeSyntax, tok)
	}
	c1, err := card.Parse(body[:2])
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidRangeSyntax, err)
	}
	c2, err := card.Parse(body[2:])
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidRangeSyntax, err)
	}
	if c1 == c2 {
		return fmt.Errorf("%w: %q repeats a card", errs.ErrDuplicateCard, tok)
	}
	b.put(newCombo(c1, c2, weight))
	return nil
}

func parseRankExpr(tok string, r1, r2 int, b *builder) error {
	if r1 == r2 {
		return parsePairExpr(tok, r1, b)
	}
	hi, lo := r1, r2
	if lo > hi {
		hi, lo = lo, hi
	}
	return parseNonpairExpr(tok, hi, lo, b)
}

func parsePairExpr(tok string, rank int, b *builder) error {
	rest := tok[2:]
	switch {
	case rest == "":
		addPair(b, rank, 100)
	case rest == "+":
		for r := rank; r < card.NumRanks; r++ {
			addPair(b, r, 100)
		}
	case strings.HasPrefix(rest, "-"):
		endTok := rest[1:]
		if len(endTok) != 2 {
			return fmt.Errorf("%w: malformed pair range %q", errs.ErrInvalidRangeSyntax, tok)
		}
		endR1, ok1 := rankIndex(endTok[0])
		endR2, ok2 := rankIndex(endTok[1])
		if !ok1 || !ok2 || endR1 != endR2 {
			return fmt.Errorf("%w: malformed pair range %q", errs.ErrInvalidRangeSyntax, tok)
		}
		lo, hi := rank, endR1
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo; r <= hi; r++ {
			addPair(b, r, 100)
		}
	default:
		return fmt.Errorf("%w: malformed pair expr %q", errs.ErrInvalidRangeSyntax, tok)
	}
	return nil
}

// suitedness: nil = both, true-ptr = suited only, false-ptr = offsuit only.
func parseSuitedness(s string) (rest string, suited *bool, ok bool) {
	if s == "" {
		return s, nil, true
	}
	switch s[0] {
	case 's', 'S':
		v := true
		return s[1:], &v, true
	case 'o', 'O':
		v := false
		return s[1:], &v, true
	default:
		return s, nil, true
	}
}

func parseNonpairExpr(tok string, hi, lo int, b *builder) error {
	rest := tok[2:]
	rest, suited, _ := parseSuitedness(rest)

	switch {
	case rest == "":
		addNonpair(b, hi, lo, suited, 100)
	case rest == "+":
		// Unlike the pair case (22+ runs all the way to AA), a non-pair "+"
		// stops one rank below the top: 76s+ is 76s,87s,...,KQs, not
		// through AKs (spec §4.3's worked example).
		gap := hi - lo
		for h := hi; h < card.NumRanks-1; h++ {
			l := h - gap
			if l < 0 {
				break
			}
			addNonpair(b, h, l, suited, 100)
		}
	case strings.HasPrefix(rest, "-"):
		endTok := rest[1:]
		if len(endTok) < 2 {
			return fmt.Errorf("%w: malformed nonpair range %q", errs.ErrInvalidRangeSyntax, tok)
		}
		endR1, ok1 := rankIndex(endTok[0])
		endR2, ok2 := rankIndex(endTok[1])
		if !ok1 || !ok2 {
			return fmt.Errorf("%w: malformed nonpair range %q", errs.ErrInvalidRangeSyntax, tok)
		}
		endHi, endLo := endR1, endR2
		if endLo > endHi {
			endHi, endLo = endLo, endHi
		}
		if _, endSuited, _ := parseSuitedness(endTok[2:]); !sameSuitedness(suited, endSuited) {
			return fmt.Errorf("%w: mismatched suitedness in %q", errs.ErrInvalidRangeSyntax, tok)
		}
		if endHi != hi {
			return fmt.Errorf("%w: nonpair range %q must share a high card", errs.ErrInvalidRangeSyntax, tok)
		}
		from, to := lo, endLo
		if from > to {
			from, to = to, from
		}
		for l := from; l <= to; l++ {
			addNonpair(b, hi, l, suited, 100)
		}
	default:
		return fmt.Errorf("%w: malformed nonpair expr %q", errs.ErrInvalidRangeSyntax, tok)
	}
	return nil
}

func sameSuitedness(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func addPair(b *builder, rank int, weight int) {
	for s1 := 0; s1 < card.NumSuits; s1++ {
		for s2 := s1 + 1; s2 < card.NumSuits; s2++ {
			b.put(newCombo(card.New(rank, s1), card.New(rank, s2), weight))
		}
	}
}

// addNonpair adds combos for a hi/lo rank pair. suited == nil adds both
// suited and offsuit combos; a non-nil value restricts to just that kind.
func addNonpair(b *builder, hi, lo int, suited *bool, weight int) {
	for s1 := 0; s1 < card.NumSuits; s1++ {
		for s2 := 0; s2 < card.NumSuits; s2++ {
			isSuited := s1 == s2
			if suited != nil && *suited != isSuited {
				continue
			}
			b.put(newCombo(card.New(hi, s1), card.New(lo, s2), weight))
		}
	}
}
