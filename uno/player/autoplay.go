package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

// Turn is the outcome of one Continue step.
type Turn struct {
	PlayerName string
	Card       card.Card
	Played     bool
	Drew       bool
	Won        bool
}

// Continue moves the game on by one step for the current player: a playable
// card chosen by strategy is played, otherwise a card is drawn. A player who
// draws keeps the turn and continues again on the next step.
func Continue(g *game.Game, strategy Strategy) (Turn, error) {
	current := g.CurrentPlayer()
	turn := Turn{PlayerName: current.Name}

	playableCards, err := g.PlayableCards()
	if err != nil {
		return turn, err
	}
	if len(playableCards) == 0 {
		turn.Drew, err = g.DrawCardForCurrentPlayer()
		return turn, err
	}

	turn.Card = strategy.Choose(playableCards)
	turn.Played, turn.Won, err = g.Play(turn.Card, current)
	return turn, err
}
