package solver

import "errors"

// ErrNotEnoughCards is returned when removing a card kind that is absent
// from a multiset, or removing more copies than are present.
var ErrNotEnoughCards = errors.New("solver: not enough cards")

// ErrDeckTooLarge is returned when a draw enumeration is attempted over a
// pile whose total size exceeds the bound at which the uint64 binomial
// arithmetic in ForEachDraw stops being exact.
var ErrDeckTooLarge = errors.New("solver: deck exceeds maximum supported size")

// ErrInvalidState is returned when constructing a State that violates one
// of its invariants (e.g. a negative action budget).
var ErrInvalidState = errors.New("solver: invalid state")

// maxDeckSize is the largest pile size for which C(T, n) fits exactly in a
// uint64 using the incremental-product technique in ForEachDraw.
const maxDeckSize = 62
