// Package card implements the 52-card model shared by the evaluator, range
// parser, and equity simulator: a Card index, the additive Hand aggregate,
// and the textual card-mask parser described in spec §6.
package card

import (
	"fmt"

	"github.com/lox/rangeequity/internal/errs"
)

// Card is an index in 0..51. index = 4*rank + suit, ranks 0 (deuce)..12
// (ace), suits 0..3.
type Card uint8

const (
	NumRanks = 13
	NumSuits = 4
	NumCards = NumRanks * NumSuits
)

// Suit letters follow the range grammar's case-sensitive "cdhs" order.
const rankChars = "23456789TJQKA"
const suitChars = "cdhs"

// New builds a Card from a rank (0..12) and suit (0..3).
func New(rank, suit int) Card {
	return Card(4*rank + suit)
}

// Rank returns 0 (deuce) through 12 (ace).
func (c Card) Rank() int { return int(c) / NumSuits }

// Suit returns 0 through 3.
func (c Card) Suit() int { return int(c) % NumSuits }

// Bit returns the card's position in a 52-bit occupancy mask.
func (c Card) Bit() uint64 { return uint64(1) << uint(c) }

func (c Card) String() string {
	if int(c) >= NumCards {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// Parse reads a single two-character card token, e.g. "Td" or "as".
func Parse(tok string) (Card, error) {
	if len(tok) != 2 {
		return 0, fmt.Errorf("%w: card token %q must be 2 characters", errs.ErrInvalidBoard, tok)
	}
	rank, err := parseRank(tok[0])
	if err != nil {
		return 0, err
	}
	suit, err := parseSuit(tok[1])
	if err != nil {
		return 0, err
	}
	return New(rank, suit), nil
}

func parseRank(b byte) (int, error) {
	switch b {
	case '2':
		return 0, nil
	case '3':
		return 1, nil
	case '4':
		return 2, nil
	case '5':
		return 3, nil
	case '6':
		return 4, nil
	case '7':
		return 5, nil
	case '8':
		return 6, nil
	case '9':
		return 7, nil
	case 'T', 't':
		return 8, nil
	case 'J', 'j':
		return 9, nil
	case 'Q', 'q':
		return 10, nil
	case 'K', 'k':
		return 11, nil
	case 'A', 'a':
		return 12, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank %q", errs.ErrInvalidBoard, string(b))
	}
}

func parseSuit(b byte) (int, error) {
	switch b {
	case 'c':
		return 0, nil
	case 'd':
		return 1, nil
	case 'h':
		return 2, nil
	case 's':
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", errs.ErrInvalidBoard, string(b))
	}
}

// GetCardMask parses a concatenation of 2-char card tokens (e.g. "2h3d4c")
// into a 52-bit dead-card mask. An empty string yields 0. A card repeated in
// the string is an error.
func GetCardMask(s string) (uint64, error) {
	if len(s)%2 != 0 {
		return 0, fmt.Errorf("%w: card string %q has odd length", errs.ErrInvalidBoard, s)
	}
	var mask uint64
	for i := 0; i < len(s); i += 2 {
		c, err := Parse(s[i : i+2])
		if err != nil {
			return 0, err
		}
		if mask&c.Bit() != 0 {
			return 0, fmt.Errorf("%w: %s appears twice in %q", errs.ErrDuplicateCard, c, s)
		}
		mask |= c.Bit()
	}
	return mask, nil
}
