package solver_test

import (
	"math"
	"sync"
	"testing"

	"cardsolver/internal/domain/solver"
)

// recordingLogger implements logger.RunLogger by recording every call,
// keyed by the terminal-event StateID, so tests can assert coverage of
// distinct terminal states without depending on log-message wording.
type recordingLogger struct {
	mu          sync.Mutex
	terminalIDs map[string]int
	completions int
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{terminalIDs: make(map[string]int)}
}

func (r *recordingLogger) Log(runID, stateID, kind, eventType string, details map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch eventType {
	case "RequirementsSatisfied", "ActionsExhausted":
		r.terminalIDs[stateID]++
	case "RunComplete":
		r.completions++
	}
}

func (r *recordingLogger) Close() {}

func mustState(t *testing.T, actions int, hand, pile solver.Cards, reqs solver.Requirements) solver.State {
	t.Helper()
	st, err := solver.NewState(actions, hand, pile, reqs)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return st
}

func newSolver() *solver.Solver {
	return solver.NewSolver(solver.DefaultRegistry())
}

func TestAllZeroRequirements(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(solver.CardCount{Kind: solver.Miss, Count: 1})
	st := mustState(t, 3, hand, solver.NewCards(), solver.Requirements{})

	if got := s.CompletionProbability(st); got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
}

func TestNoActionsNonEmptyRequirements(t *testing.T) {
	s := newSolver()
	st := mustState(t, 0, solver.NewCards(), solver.NewCards(), solver.Requirements{Reactors: 1})

	if got := s.CompletionProbability(st); got != 0.0 {
		t.Fatalf("got %v, want 0.0", got)
	}
}

func TestExactSinglePlayWin(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(solver.CardCount{Kind: solver.Damage, Count: 1})
	st := mustState(t, 1, hand, solver.NewCards(), solver.Requirements{Damage: 1})

	if got := s.CompletionProbability(st); got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
}

func TestInsufficientHandNoDraw(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(solver.CardCount{Kind: solver.Damage, Count: 1})
	st := mustState(t, 1, hand, solver.NewCards(), solver.Requirements{Damage: 2})

	if got := s.CompletionProbability(st); got != 0.0 {
		t.Fatalf("got %v, want 0.0", got)
	}
}

func TestReactorNetGain(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(
		solver.CardCount{Kind: solver.Reactor, Count: 1},
		solver.CardCount{Kind: solver.Damage, Count: 2},
	)
	st := mustState(t, 1, hand, solver.NewCards(), solver.Requirements{Reactors: 1, Damage: 2})

	if got := s.CompletionProbability(st); got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
}

func TestThrusterDeterministicDraw(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(solver.CardCount{Kind: solver.Thruster, Count: 1})
	pile := solver.NewCards(
		solver.CardCount{Kind: solver.Damage, Count: 1},
		solver.CardCount{Kind: solver.Miss, Count: 1},
	)
	st := mustState(t, 2, hand, pile, solver.Requirements{Thrusters: 1, Damage: 1})

	if got := s.CompletionProbability(st); got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
}

func TestThrusterProbabilisticDraw(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(solver.CardCount{Kind: solver.Thruster, Count: 1})
	pile := solver.NewCards(
		solver.CardCount{Kind: solver.Damage, Count: 1},
		solver.CardCount{Kind: solver.Miss, Count: 2},
	)
	st := mustState(t, 2, hand, pile, solver.Requirements{Thrusters: 1, Damage: 1})

	got := s.CompletionProbability(st)
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCrewCompletion(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(solver.CardCount{Kind: solver.Crew, Count: 1})
	st := mustState(t, 1, hand, solver.NewCards(), solver.Requirements{Crew: 1})

	if got := s.CompletionProbability(st); got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
}

func TestEmptyHandReturnsZero(t *testing.T) {
	s := newSolver()
	st := mustState(t, 3, solver.NewCards(), solver.NewCards(), solver.Requirements{Damage: 1})

	if got := s.CompletionProbability(st); got != 0.0 {
		t.Fatalf("got %v, want 0.0", got)
	}
}

func TestProbabilityBounds(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(
		solver.CardCount{Kind: solver.Thruster, Count: 1},
		solver.CardCount{Kind: solver.Reactor, Count: 1},
	)
	pile := solver.NewCards(
		solver.CardCount{Kind: solver.Damage, Count: 2},
		solver.CardCount{Kind: solver.Miss, Count: 2},
	)
	st := mustState(t, 3, hand, pile, solver.Requirements{Damage: 2, Reactors: 1})

	got := s.CompletionProbability(st)
	if got < 0 || got > 1 {
		t.Fatalf("completion probability %v out of [0,1]", got)
	}
}

func TestMonotonicityInActions(t *testing.T) {
	hand := solver.NewCards(solver.CardCount{Kind: solver.Thruster, Count: 1})
	pile := solver.NewCards(
		solver.CardCount{Kind: solver.Damage, Count: 1},
		solver.CardCount{Kind: solver.Miss, Count: 2},
	)
	reqs := solver.Requirements{Thrusters: 1, Damage: 1}

	prev := -1.0
	for actions := 0; actions <= 4; actions++ {
		s := newSolver()
		st := mustState(t, actions, hand, pile, reqs)
		got := s.CompletionProbability(st)
		if got < prev-1e-12 {
			t.Fatalf("actions=%d: probability %v decreased from %v", actions, got, prev)
		}
		prev = got
	}
}

func TestMonotonicityInHand(t *testing.T) {
	pile := solver.NewCards()
	reqs := solver.Requirements{Damage: 2}

	small := newSolver()
	smallHand := solver.NewCards(solver.CardCount{Kind: solver.Damage, Count: 1})
	smallResult := small.CompletionProbability(mustState(t, 2, smallHand, pile, reqs))

	big := newSolver()
	bigHand := solver.NewCards(solver.CardCount{Kind: solver.Damage, Count: 2})
	bigResult := big.CompletionProbability(mustState(t, 2, bigHand, pile, reqs))

	if bigResult < smallResult-1e-12 {
		t.Fatalf("adding a card to the hand decreased probability: %v -> %v", smallResult, bigResult)
	}
}

func TestMemoizationReusesCache(t *testing.T) {
	s := newSolver()
	hand := solver.NewCards(solver.CardCount{Kind: solver.Damage, Count: 1})
	st := mustState(t, 1, hand, solver.NewCards(), solver.Requirements{Damage: 1})

	first := s.CompletionProbability(st)
	exploredAfterFirst := s.ExploredCount()

	second := s.CompletionProbability(st)
	if second != first {
		t.Fatalf("second query returned %v, want bit-identical %v", second, first)
	}
	if s.ExploredCount() != exploredAfterFirst+1 {
		t.Fatalf("expected exactly one additional explore (the cache-hit call itself), got %d more",
			s.ExploredCount()-exploredAfterFirst)
	}
}

func TestLoggerObservabilityMatchesNopLoggerProbability(t *testing.T) {
	hand := solver.NewCards(solver.CardCount{Kind: solver.Thruster, Count: 1})
	pile := solver.NewCards(
		solver.CardCount{Kind: solver.Damage, Count: 1},
		solver.CardCount{Kind: solver.Miss, Count: 2},
	)
	st := mustState(t, 2, hand, pile, solver.Requirements{Thrusters: 1, Damage: 1})

	rec := newRecordingLogger()
	logged := solver.NewSolver(solver.DefaultRegistry(), solver.WithLogger(rec, "test-run"))
	got := logged.Solve(st)

	plain := newSolver()
	want := plain.Solve(st)

	if got != want {
		t.Fatalf("attaching a logger changed the solved probability: got %v, want %v (NopLogger run)", got, want)
	}

	if len(rec.terminalIDs) == 0 {
		t.Fatal("expected at least one logged terminal-state event, got none")
	}
	for id, count := range rec.terminalIDs {
		if count < 1 {
			t.Errorf("terminal state %s logged %d times, want at least 1", id, count)
		}
	}
	if rec.completions != 1 {
		t.Fatalf("expected exactly one RunComplete event from Solve, got %d", rec.completions)
	}
}

func TestNegativeActionsRejected(t *testing.T) {
	_, err := solver.NewState(-1, solver.NewCards(), solver.NewCards(), solver.Requirements{})
	if err == nil {
		t.Fatalf("expected ErrInvalidState for a negative action budget")
	}
}
