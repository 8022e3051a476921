package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

// Strategy picks one card out of a non-empty list of playable cards.
type Strategy interface {
	Choose(playableCards []card.Card) card.Card
}

type naiveStrategy struct{}

// Naive always plays the first playable card.
func Naive() Strategy {
	return naiveStrategy{}
}

func (naiveStrategy) Choose(playableCards []card.Card) card.Card {
	return playableCards[0]
}

type randomStrategy struct {
	random game.Random
}

func RandomChoice(random game.Random) Strategy {
	return randomStrategy{random: random}
}

func (s randomStrategy) Choose(playableCards []card.Card) card.Card {
	return playableCards[s.random.Intn(len(playableCards))]
}
