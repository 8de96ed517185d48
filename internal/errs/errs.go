// Package errs defines the typed error values returned at the module's API
// boundaries. The card, ranges and equity packages and tables.DecodeBlob
// return these, wrapped with context via fmt.Errorf's %w, rather than an
// ad-hoc string. Two failures fall outside this set: tables.Load (and so
// eval.Evaluate) passes on the perfect-hash builder's own error, and
// config.FromEnv returns plain parse errors.
package errs

import "errors"

// Sentinel errors surfaced by the range parser, sampler, and simulator.
// Callers match against these with errors.Is.
var (
	// ErrInvalidRangeSyntax is returned when a range string cannot be parsed.
	ErrInvalidRangeSyntax = errors.New("invalid range syntax")

	// ErrDuplicateCard is returned when a card appears more than once within
	// a combo, a board string, or any other structure requiring uniqueness.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrImpossibleRange is returned when removing dead-masked combos leaves
	// a range empty.
	ErrImpossibleRange = errors.New("range is empty after removing dead cards")

	// ErrTooManyPlayers is returned when more than six ranges are supplied.
	ErrTooManyPlayers = errors.New("too many players")

	// ErrInvalidBoard is returned for a malformed or oversized board.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrTableLoadError is returned when the embedded table blob fails its
	// magic/version check or is otherwise corrupt.
	ErrTableLoadError = errors.New("table load error")
)
