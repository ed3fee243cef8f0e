package solver

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// CardCount pairs a CardKind with a count, used to build a Cards multiset.
type CardCount struct {
	Kind  CardKind
	Count int
}

// Cards is an unordered multiset of CardKind values, backed by a
// fixed-width array indexed by each kind's registry index. This makes
// Cards a plain comparable value: two Cards built from different orderings
// of the same (kind, count) pairs compare equal with == and hash equal.
//
// Invariants: a kind is absent exactly when its index holds zero (removing
// the last copy leaves exactly zero), Size reports the sum of counts, and
// equality/hash never depend on the order pairs were added in.
type Cards struct {
	counts [MaxCardKinds]uint16
}

// NewCards builds a Cards multiset from a list of (kind, count) pairs.
// A pair with Count == 0 is a no-op.
func NewCards(pairs ...CardCount) Cards {
	var c Cards
	for _, p := range pairs {
		c = c.Add(p.Kind, p.Count)
	}
	return c
}

// CountOf returns the number of the given kind present in the multiset.
func (c Cards) CountOf(kind CardKind) int {
	return int(c.counts[kind.index])
}

// Size returns the total number of cards in the multiset.
func (c Cards) Size() int {
	total := 0
	for _, n := range c.counts {
		total += int(n)
	}
	return total
}

// IsEmpty reports whether the multiset holds no cards.
func (c Cards) IsEmpty() bool {
	return c.Size() == 0
}

// Equal reports whether two multisets hold the same kind -> count mapping.
// Cards is a plain array-backed value, so this is equivalent to c == other,
// but is provided for readability at call sites.
func (c Cards) Equal(other Cards) bool {
	return c == other
}

// Add returns a new Cards with n additional copies of kind. n == 0 is a
// no-op; n must be non-negative.
func (c Cards) Add(kind CardKind, n int) Cards {
	if n == 0 {
		return c
	}
	c.counts[kind.index] += uint16(n)
	return c
}

// Remove returns a new Cards with one copy of kind removed. It returns
// ErrNotEnoughCards if kind is absent.
func (c Cards) Remove(kind CardKind) (Cards, error) {
	return c.RemoveN(kind, 1)
}

// RemoveN returns a new Cards with n copies of kind removed. It returns
// ErrNotEnoughCards if fewer than n copies are present.
func (c Cards) RemoveN(kind CardKind, n int) (Cards, error) {
	if int(c.counts[kind.index]) < n {
		return c, fmt.Errorf("%w: cannot remove %d %s, have %d", ErrNotEnoughCards, n, kind.id, c.counts[kind.index])
	}
	c.counts[kind.index] -= uint16(n)
	return c, nil
}

// RemoveAll returns a new Cards with every copy of kind removed. It
// returns ErrNotEnoughCards if kind is absent.
func (c Cards) RemoveAll(kind CardKind) (Cards, error) {
	if c.counts[kind.index] == 0 {
		return c, fmt.Errorf("%w: %s not present", ErrNotEnoughCards, kind.id)
	}
	c.counts[kind.index] = 0
	return c, nil
}

// Plus returns the concatenation of two multisets (their counts summed
// kind-wise).
func (c Cards) Plus(other Cards) Cards {
	var result Cards
	for i := range c.counts {
		result.counts[i] = c.counts[i] + other.counts[i]
	}
	return result
}

// distinctIndices returns the registry indices present in c with a
// positive count, in ascending index order. The order is arbitrary but
// consistent within and across calls, satisfying ForEachDraw's ordering
// contract; it is never load-bearing for the reported probabilities.
func (c Cards) distinctIndices() []int {
	var idx []int
	for i, n := range c.counts {
		if n > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// Distinct returns the CardKinds present in the multiset, ordered by
// SortOrder ascending.
func (c Cards) Distinct() []CardKind {
	kinds := registeredKinds() // already SortOrder-ordered
	var result []CardKind
	for _, k := range kinds {
		if c.counts[k.index] > 0 {
			result = append(result, k)
		}
	}
	return result
}

// Hash returns an order-invariant hash of the multiset: the XOR of a
// per-entry hash of each (kind, count) pair, so the result does not depend
// on map/array iteration order.
func (c Cards) Hash() uint64 {
	var h uint64
	for i, n := range c.counts {
		if n == 0 {
			continue
		}
		he := fnv.New64a()
		fmt.Fprintf(he, "%d:%d", i, n)
		h ^= he.Sum64()
	}
	return h
}

// String returns a concatenation of kind letters, one per card, in
// registry (SortOrder) order — the order is implementation-defined per the
// ForEachDraw contract but kept consistent for readability.
func (c Cards) String() string {
	var sb strings.Builder
	for _, k := range c.Distinct() {
		sb.WriteString(strings.Repeat(k.Letter, c.CountOf(k)))
	}
	return sb.String()
}

// ToConsoleString renders the multiset as letters grouped by kind, ordered
// by SortOrder ascending, each group wrapped in ANSI SGR color escapes. An
// empty multiset renders as a dim "<no cards>".
func (c Cards) ToConsoleString() string {
	if c.IsEmpty() {
		return "\x1b[90m<no cards>\x1b[0m"
	}

	var sb strings.Builder
	for _, k := range c.Distinct() {
		fmt.Fprintf(&sb, "\x1b[%dm%s\x1b[0m", k.Color, strings.Repeat(k.Letter, c.CountOf(k)))
	}
	return sb.String()
}

// DrawRandom draws n cards uniformly at random without replacement,
// returning the resulting (remaining, drawn) pair. It samples from the
// same distribution ForEachDraw enumerates exhaustively, but is for
// simulation use, not for the exact solver.
func (c Cards) DrawRandom(n int) (remaining, drawn Cards) {
	pool := make([]CardKind, 0, c.Size())
	kinds := registeredKinds()
	for _, k := range kinds {
		for i := 0; i < c.CountOf(k); i++ {
			pool = append(pool, k)
		}
	}
	if n > len(pool) {
		n = len(pool)
	}

	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	remaining = c
	for i := 0; i < n; i++ {
		drawn = drawn.Add(pool[i], 1)
		remaining, _ = remaining.RemoveN(pool[i], 1)
	}
	return remaining, drawn
}

// DrawOutcome is one distinguishable result of drawing n cards from a
// multiset: the pile left behind, the cards drawn, and the exact
// probability of that outcome under uniform-without-replacement sampling.
type DrawOutcome struct {
	Remaining   Cards
	Drawn       Cards
	Probability float64
}

// ForEachDraw invokes f once per distinguishable outcome of drawing n
// cards uniformly at random without replacement from c, weighted by the
// exact multivariate hypergeometric probability of that outcome. The
// reported probabilities sum to 1.
//
// Special cases: an empty pile with n > 0 yields a single no-op outcome
// (nothing to draw); n >= Size() draws the whole pile deterministically;
// n <= 0 draws nothing deterministically. Otherwise ForEachDraw enumerates
// every combination of per-kind draw counts that sums to n.
//
// ForEachDraw returns ErrDeckTooLarge if c holds more than maxDeckSize
// cards, since at that size the uint64 binomial-coefficient arithmetic
// below stops being exact.
func (c Cards) ForEachDraw(n int, f func(outcome DrawOutcome)) error {
	total := c.Size()
	if total > maxDeckSize {
		return fmt.Errorf("%w: %d cards exceeds limit of %d", ErrDeckTooLarge, total, maxDeckSize)
	}

	if total == 0 {
		f(DrawOutcome{Remaining: Cards{}, Drawn: Cards{}, Probability: 1})
		return nil
	}
	if n <= 0 {
		f(DrawOutcome{Remaining: c, Drawn: Cards{}, Probability: 1})
		return nil
	}
	if n >= total {
		f(DrawOutcome{Remaining: Cards{}, Drawn: c, Probability: 1})
		return nil
	}

	indices := c.distinctIndices()
	denom := binomial(uint64(total), uint64(n))
	drawn := make([]int, len(indices))

	var recurse func(pos, remainingToDraw int)
	recurse = func(pos, remainingToDraw int) {
		if pos == len(indices) {
			if remainingToDraw != 0 {
				return
			}
			var remaining, drawnCards Cards
			num := uint64(1)
			for i, idx := range indices {
				p := int(c.counts[idx])
				d := drawn[i]
				num *= binomial(uint64(p), uint64(d))
				remaining.counts[idx] = uint16(p - d)
				drawnCards.counts[idx] = uint16(d)
			}
			f(DrawOutcome{
				Remaining:   remaining,
				Drawn:       drawnCards,
				Probability: float64(num) / float64(denom),
			})
			return
		}

		idx := indices[pos]
		p := int(c.counts[idx])
		maxD := p
		if remainingToDraw < maxD {
			maxD = remainingToDraw
		}
		for d := 0; d <= maxD; d++ {
			drawn[pos] = d
			recurse(pos+1, remainingToDraw-d)
		}
	}
	recurse(0, n)

	return nil
}

// binomial computes C(n, k) exactly in uint64, using the symmetric
// identity C(n,k) = C(n,n-k) and the incremental product
// c <- c*(n-i)/(i+1), which is always an exact division because the
// running product is itself a binomial coefficient of the enumerated
// prefix.
func binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := uint64(1)
	for i := uint64(0); i < k; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}
