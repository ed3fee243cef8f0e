package solver

// State aggregates the remaining action budget, the player's hand, the
// draw pile, and the outstanding requirements. State is a plain comparable
// value (Cards is array-backed, Requirements is a flat struct of ints), so
// it can be used directly as a key in the Solver's memoization map —
// equality and hashing are component-wise by construction.
type State struct {
	Actions      int
	Hand         Cards
	DrawPile     Cards
	Requirements Requirements
}

// NewState constructs a State, rejecting a negative action budget with
// ErrInvalidState. Hand and DrawPile can only ever contain registered
// CardKinds, since Cards.Add only accepts CardKind values obtained from
// RegisterCardKind.
func NewState(actions int, hand, drawPile Cards, requirements Requirements) (State, error) {
	if actions < 0 {
		return State{}, ErrInvalidState
	}
	return State{
		Actions:      actions,
		Hand:         hand,
		DrawPile:     drawPile,
		Requirements: requirements,
	}, nil
}

// Equal reports component-wise equality. State is a plain comparable
// struct, so this is equivalent to s == other.
func (s State) Equal(other State) bool {
	return s == other
}

// Hash combines sub-hashes of every field. Field order is fixed (unlike
// Cards' entries), so a sequential FNV-style mix is sufficient; it need
// not be commutative.
func (s State) Hash() uint64 {
	h := uint64(14695981039346656037)
	h = mixHash(h, uint64(s.Actions))
	h = mixHash(h, s.Hand.Hash())
	h = mixHash(h, s.DrawPile.Hash())
	h = mixHash(h, s.Requirements.Hash())
	return h
}

func mixHash(h, v uint64) uint64 {
	h ^= v
	h *= 1099511628211
	return h
}
