// Package config defines the plain configuration struct for one solve run
// of the cardsolver CLI driver.
package config

import "cardsolver/internal/domain/solver"

// RunConfig configures a single solve: the action budget, which deck
// preset to draw from, the requirement targets to satisfy, and an
// optional CSV log path.
type RunConfig struct {
	Actions      int
	Preset       string
	Requirements solver.Requirements
	LogPath      string
}

// DefaultRunConfig returns a RunConfig using the default deck preset, a
// budget of 5 actions, and an all-zero requirement target.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Actions:      5,
		Preset:       "default",
		Requirements: solver.Requirements{},
	}
}

// Deck resolves the configured preset name to a starting draw pile.
// Unknown preset names fall back to "default".
func (c RunConfig) Deck() solver.Cards {
	switch c.Preset {
	case "with-crew":
		return solver.DefaultDeckWithCrew()
	default:
		return solver.DefaultDeck()
	}
}
