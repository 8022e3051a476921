package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may go on a pile whose active color
// and value are currentColor and currentValue.
func Playable(candidateCard card.Card, currentColor color.Color, currentValue card.Value) bool {
	return candidateCard.Color() == color.Special ||
		candidateCard.Color() == currentColor ||
		candidateCard.Value() == currentValue
}

func GetPlayableCards(player *Player, currentColor color.Color, currentValue card.Value) []card.Card {
	return player.Hand.PlayableCards(currentColor, currentValue)
}

func IsActionCard(c card.Card) bool {
	return c.IsAction()
}
