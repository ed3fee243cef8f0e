package solver

// DefaultDeck returns the preset deck named in the contract: 3 Reactor,
// 2 Thruster, 2 Shield, 2 Damage, 1 Miss.
func DefaultDeck() Cards {
	return NewCards(
		CardCount{Kind: Reactor, Count: 3},
		CardCount{Kind: Thruster, Count: 2},
		CardCount{Kind: Shield, Count: 2},
		CardCount{Kind: Damage, Count: 2},
		CardCount{Kind: Miss, Count: 1},
	)
}

// DefaultDeckWithCrew returns DefaultDeck with one Crew card added, so
// every Requirements axis has at least one registered card that reduces
// it.
func DefaultDeckWithCrew() Cards {
	return DefaultDeck().Add(Crew, 1)
}
