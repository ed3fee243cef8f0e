// Package solver implements the exact probabilistic card-contract solver:
// given a State (action budget, hand, draw pile, requirements) and a
// registry of card-kind transition operators, it computes the supremum
// over all playable cards of the probability of eventually satisfying
// every requirement.
package solver

import (
	"fmt"

	"cardsolver/internal/domain/logger"
)

// Solver holds the memoization cache and operator registry for one
// solve-session. It is single-threaded and not safe for concurrent use;
// concurrent solves require independent Solver instances.
type Solver struct {
	registry *Registry
	cache    map[State]float64
	explored int

	log   logger.RunLogger
	runID string
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a RunLogger that receives one event per terminal
// base-case resolution and one on solve completion. It never affects the
// probability a Solver returns. A nil log keeps the NopLogger default.
func WithLogger(log logger.RunLogger, runID string) Option {
	return func(s *Solver) {
		if log == nil {
			log = logger.NopLogger{}
		}
		s.log = log
		s.runID = runID
	}
}

// NewSolver constructs a Solver with the given operator registry and an
// empty memoization cache.
func NewSolver(registry *Registry, opts ...Option) *Solver {
	s := &Solver{
		registry: registry,
		cache:    make(map[State]float64),
		log:      logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExploredCount returns the total number of CompletionProbability calls
// made so far, including cache hits.
func (s *Solver) ExploredCount() int {
	return s.explored
}

// CacheSize returns the number of distinct States memoized so far.
func (s *Solver) CacheSize() int {
	return len(s.cache)
}

// CompletionProbability returns the maximum achievable probability of
// reaching empty requirements before the action budget is exhausted,
// assuming every play from state onward is optimal.
func (s *Solver) CompletionProbability(state State) float64 {
	s.explored++

	if state.Requirements.IsEmpty() {
		s.logEvent(state, "", "RequirementsSatisfied", nil)
		return 1
	}
	if state.Actions == 0 {
		s.logEvent(state, "", "ActionsExhausted", nil)
		return 0
	}
	if cached, ok := s.cache[state]; ok {
		return cached
	}

	best := 0.0
	for _, kind := range state.Hand.Distinct() {
		op, ok := s.registry.Operator(kind)
		if !ok {
			panic(fmt.Sprintf("solver: no operator registered for card kind %s", kind))
		}
		if p := op(s, state); p > best {
			best = p
		}
	}

	s.cache[state] = best
	return best
}

func (s *Solver) logEvent(state State, kind, eventType string, details map[string]interface{}) {
	if _, ok := s.log.(logger.NopLogger); ok {
		return
	}
	stateID := fmt.Sprintf("%x", state.Hash())
	s.log.Log(s.runID, stateID, kind, eventType, details)
}

// Solve runs the exact solver to completion and, if a logger was attached
// via WithLogger, emits a final run-complete summary event.
func (s *Solver) Solve(state State) float64 {
	result := s.CompletionProbability(state)
	s.logEvent(state, "", "RunComplete", map[string]interface{}{
		"probability": result,
		"explored":    s.explored,
		"cacheSize":   len(s.cache),
	})
	return result
}
