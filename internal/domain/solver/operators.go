package solver

import "fmt"

// Operator is the transition-operator contract: given the Solver (so it
// can recurse into successor states) and the State the card is played
// from, return the completion probability assuming this card is played
// now and every subsequent play is optimal. Operators must never mutate
// the input State; each builds a fresh successor.
type Operator func(s *Solver, state State) float64

// Registry maps CardKind identity to its transition Operator. The set of
// operators is open: callers can build their own Registry and register
// additional kinds implementing the Operator contract without editing this
// package.
type Registry struct {
	ops map[CardKind]Operator
}

// NewRegistry returns an empty operator registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[CardKind]Operator)}
}

// Register associates kind with its transition operator, overwriting any
// previous registration for that kind.
func (r *Registry) Register(kind CardKind, op Operator) {
	r.ops[kind] = op
}

// Operator returns the transition operator registered for kind, if any.
func (r *Registry) Operator(kind CardKind) (Operator, bool) {
	op, ok := r.ops[kind]
	return op, ok
}

// simpleOperator builds an Operator for a card that costs one action, has
// no draw effect, and applies effect to the Requirements. It is the shape
// shared by Shield, Damage, Miss, and Crew.
func simpleOperator(kind CardKind, effect func(Requirements) Requirements) Operator {
	return func(s *Solver, state State) float64 {
		hand, err := state.Hand.Remove(kind)
		if err != nil {
			panic(fmt.Sprintf("solver: operator for %s invoked on a hand without it: %v", kind, err))
		}
		next := State{
			Actions:      state.Actions - 1,
			Hand:         hand,
			DrawPile:     state.DrawPile,
			Requirements: effect(state.Requirements),
		}
		return s.CompletionProbability(next)
	}
}

// reactorOperator pays one action and immediately grants two back (a net
// gain of one action), then reduces the reactors requirement by one.
func reactorOperator(s *Solver, state State) float64 {
	hand, err := state.Hand.Remove(Reactor)
	if err != nil {
		panic(fmt.Sprintf("solver: reactor operator invoked on a hand without it: %v", err))
	}
	next := State{
		Actions:      state.Actions - 1 + 2,
		Hand:         hand,
		DrawPile:     state.DrawPile,
		Requirements: state.Requirements.SubReactors(1),
	}
	return s.CompletionProbability(next)
}

// thrusterOperator pays one action, reduces the thrusters requirement by
// one, and draws two cards from the pile. The successor is decomposed as
// a probability-weighted sum over every distinguishable draw outcome.
func thrusterOperator(s *Solver, state State) float64 {
	hand, err := state.Hand.Remove(Thruster)
	if err != nil {
		panic(fmt.Sprintf("solver: thruster operator invoked on a hand without it: %v", err))
	}
	actionsAfterPlay := state.Actions - 1
	requirementsAfterPlay := state.Requirements.SubThrusters(1)

	total := 0.0
	err = state.DrawPile.ForEachDraw(2, func(outcome DrawOutcome) {
		next := State{
			Actions:      actionsAfterPlay,
			Hand:         hand.Plus(outcome.Drawn),
			DrawPile:     outcome.Remaining,
			Requirements: requirementsAfterPlay,
		}
		total += outcome.Probability * s.CompletionProbability(next)
	})
	if err != nil {
		panic(fmt.Sprintf("solver: thruster draw enumeration failed: %v", err))
	}
	return total
}

// DefaultRegistry returns a Registry with the canonical operators for
// Reactor, Thruster, Shield, Damage, Miss, and Crew wired per the
// transition-operator table.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Reactor, reactorOperator)
	r.Register(Thruster, thrusterOperator)
	r.Register(Shield, simpleOperator(Shield, func(req Requirements) Requirements { return req.SubShields(1) }))
	r.Register(Damage, simpleOperator(Damage, func(req Requirements) Requirements { return req.SubDamage(1) }))
	r.Register(Miss, simpleOperator(Miss, func(req Requirements) Requirements { return req }))
	r.Register(Crew, simpleOperator(Crew, func(req Requirements) Requirements { return req.SubCrew(1) }))
	return r
}
