package solver_test

import (
	"testing"

	"cardsolver/internal/domain/solver"
)

func TestRequirementsSaturatingSubtraction(t *testing.T) {
	r := solver.Requirements{Damage: 3}
	if got := r.SubDamage(5); got.Damage != 0 {
		t.Fatalf("expected saturating subtraction to floor at 0, got %d", got.Damage)
	}
}

func TestRequirementsSubIdempotence(t *testing.T) {
	for k := 0; k <= 3; k++ {
		for m := 0; m <= 3; m++ {
			r := solver.Requirements{Damage: 5}
			step := r.SubDamage(k).SubDamage(m)
			combined := r.SubDamage(k + m)
			if step != combined {
				t.Fatalf("sub(%d).sub(%d) = %+v, want sub(%d) = %+v", k, m, step, k+m, combined)
			}
		}
	}
}

func TestRequirementsIsEmpty(t *testing.T) {
	if !(solver.Requirements{}).IsEmpty() {
		t.Fatalf("expected zero-value Requirements to be empty")
	}
	if (solver.Requirements{Crew: 1}).IsEmpty() {
		t.Fatalf("expected non-zero crew to make Requirements non-empty")
	}
}

func TestRequirementsString(t *testing.T) {
	r := solver.Requirements{Reactors: 1, Damage: 2}
	if got, want := r.String(false), "R×1, D×2"; got != want {
		t.Fatalf("String(false) = %q, want %q", got, want)
	}
}
