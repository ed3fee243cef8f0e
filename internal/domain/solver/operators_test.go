package solver_test

import (
	"testing"

	"cardsolver/internal/domain/solver"
)

func TestOperatorsNeverMutateInput(t *testing.T) {
	registry := solver.DefaultRegistry()
	s := solver.NewSolver(registry)

	hand := solver.NewCards(solver.CardCount{Kind: solver.Damage, Count: 1})
	pile := solver.NewCards()
	reqs := solver.Requirements{Damage: 1}
	before := mustState(t, 1, hand, pile, reqs)

	op, ok := registry.Operator(solver.Damage)
	if !ok {
		t.Fatalf("expected Damage to have a registered operator")
	}
	_ = op(s, before)

	after := mustState(t, 1, hand, pile, reqs)
	if before != after {
		t.Fatalf("operator invocation mutated its input state")
	}
}

func TestUnregisteredOperatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a hand kind with no registered operator")
		}
	}()

	empty := solver.NewRegistry()
	s := solver.NewSolver(empty)
	hand := solver.NewCards(solver.CardCount{Kind: solver.Damage, Count: 1})
	st := mustState(t, 1, hand, solver.NewCards(), solver.Requirements{Damage: 1})
	s.CompletionProbability(st)
}
