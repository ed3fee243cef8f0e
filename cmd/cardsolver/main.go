// Command cardsolver drives the exact probabilistic solver against a
// deck preset and a requirement target, and prints the exact completion
// probability alongside a random-play Monte Carlo estimate for
// comparison. The exact answer always comes from the Solver; the Monte
// Carlo estimate is a separate, independent approximation used only to
// sanity-check the solver's output, the way the teacher project contrasts
// an exact hit-risk calculation with a sampled one.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"cardsolver/internal/config"
	"cardsolver/internal/domain/logger"
	"cardsolver/internal/domain/solver"
	"cardsolver/internal/infrastructure/logging"
)

func main() {
	actions := flag.Int("actions", 5, "action budget")
	preset := flag.String("preset", "default", "deck preset: default, with-crew")
	hand := flag.String("hand", "", "comma-separated kind=count pairs drawn into the starting hand, e.g. damage=1,reactor=1")
	reactors := flag.Int("reactors", 0, "required reactors")
	thrusters := flag.Int("thrusters", 0, "required thrusters")
	shields := flag.Int("shields", 0, "required shields")
	damage := flag.Int("damage", 0, "required damage")
	crew := flag.Int("crew", 0, "required crew")
	logPath := flag.String("log", "", "optional CSV log path for solver-run events")
	samples := flag.Int("samples", 2000, "number of random-play trials for the Monte Carlo comparison estimate; 0 disables it")
	flag.Parse()

	cfg := config.RunConfig{
		Actions: *actions,
		Preset:  *preset,
		Requirements: solver.Requirements{
			Reactors:  *reactors,
			Thrusters: *thrusters,
			Shields:   *shields,
			Damage:    *damage,
			Crew:      *crew,
		},
		LogPath: *logPath,
	}

	if err := run(cfg, *hand, *samples); err != nil {
		fmt.Fprintln(os.Stderr, "cardsolver:", err)
		os.Exit(1)
	}
}

func run(cfg config.RunConfig, handSpec string, samples int) error {
	deck := cfg.Deck()
	hand, pile, err := splitHand(deck, handSpec)
	if err != nil {
		return fmt.Errorf("parsing -hand: %w", err)
	}

	state, err := solver.NewState(cfg.Actions, hand, pile, cfg.Requirements)
	if err != nil {
		return fmt.Errorf("building state: %w", err)
	}

	var runLogger logger.RunLogger = logger.NopLogger{}
	if cfg.LogPath != "" {
		csvLogger, err := logging.NewCSVLogger(cfg.LogPath)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer csvLogger.Close()
		runLogger = csvLogger
	}

	s := solver.NewSolver(solver.DefaultRegistry(), solver.WithLogger(runLogger, uuid.NewString()))
	exact := s.Solve(state)

	fmt.Printf("hand:         %s\n", hand.ToConsoleString())
	fmt.Printf("draw pile:    %s\n", pile.ToConsoleString())
	fmt.Printf("requirements: %s\n", cfg.Requirements.String(true))
	fmt.Printf("actions:      %d\n", cfg.Actions)
	fmt.Printf("exact completion probability: %.4f\n", exact)
	fmt.Printf("explored %d states (%d memoized)\n", s.ExploredCount(), s.CacheSize())

	if samples > 0 {
		estimate := monteCarloEstimate(state, samples)
		fmt.Printf("random-play estimate (%d trials): %.4f\n", samples, estimate)
	}

	return nil
}

// splitHand draws the kind=count pairs named in spec out of deck into the
// starting hand; everything left becomes the draw pile.
func splitHand(deck solver.Cards, spec string) (hand, pile solver.Cards, err error) {
	pile = deck
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return hand, pile, nil
	}

	for _, term := range strings.Split(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		parts := strings.SplitN(term, "=", 2)
		if len(parts) != 2 {
			return solver.Cards{}, solver.Cards{}, fmt.Errorf("invalid term %q, want kind=count", term)
		}
		kind, ok := kindByName(parts[0])
		if !ok {
			return solver.Cards{}, solver.Cards{}, fmt.Errorf("unknown card kind %q", parts[0])
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return solver.Cards{}, solver.Cards{}, fmt.Errorf("invalid count in %q: %w", term, err)
		}
		pile, err = pile.RemoveN(kind, n)
		if err != nil {
			return solver.Cards{}, solver.Cards{}, fmt.Errorf("drawing %d %s into hand: %w", n, parts[0], err)
		}
		hand = hand.Add(kind, n)
	}
	return hand, pile, nil
}

func kindByName(name string) (solver.CardKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reactor":
		return solver.Reactor, true
	case "thruster":
		return solver.Thruster, true
	case "shield":
		return solver.Shield, true
	case "damage":
		return solver.Damage, true
	case "miss":
		return solver.Miss, true
	case "crew":
		return solver.Crew, true
	default:
		return solver.CardKind{}, false
	}
}

// effects mirrors the solver registry's per-kind requirement reduction,
// duplicated here deliberately: the Monte Carlo estimate is meant to be an
// independent check on the exact solver, not a wrapper around it.
var effects = map[solver.CardKind]func(solver.Requirements) solver.Requirements{
	solver.Shield: func(r solver.Requirements) solver.Requirements { return r.SubShields(1) },
	solver.Damage: func(r solver.Requirements) solver.Requirements { return r.SubDamage(1) },
	solver.Crew:   func(r solver.Requirements) solver.Requirements { return r.SubCrew(1) },
	solver.Miss:   func(r solver.Requirements) solver.Requirements { return r },
}

// monteCarloEstimate runs trials of a simple random-play strategy (no
// lookahead: each step picks uniformly among the distinct card kinds in
// hand, regardless of how many copies of each are held) and
// reports the fraction of trials that satisfy every requirement before
// the action budget runs out.
func monteCarloEstimate(start solver.State, trials int) float64 {
	successes := 0
	for i := 0; i < trials; i++ {
		if simulateOnce(start) {
			successes++
		}
	}
	return float64(successes) / float64(trials)
}

func simulateOnce(state solver.State) bool {
	actions, hand, pile, reqs := state.Actions, state.Hand, state.DrawPile, state.Requirements

	for !reqs.IsEmpty() && actions > 0 {
		choices := hand.Distinct()
		if len(choices) == 0 {
			return false
		}
		kind := choices[rand.Intn(len(choices))]
		hand, _ = hand.Remove(kind)
		actions--

		switch kind {
		case solver.Reactor:
			actions += 2
			reqs = reqs.SubReactors(1)
		case solver.Thruster:
			var drawn solver.Cards
			pile, drawn = pile.DrawRandom(2)
			hand = hand.Plus(drawn)
			reqs = reqs.SubThrusters(1)
		default:
			if effect, ok := effects[kind]; ok {
				reqs = effect(reqs)
			}
		}
	}

	return reqs.IsEmpty()
}
