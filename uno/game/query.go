package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

func CurrentCard(pile *Pile) (card.Card, bool) {
	return pile.Top()
}

// CurrentValue returns the value of the pile's top card, or "" for an empty
// pile.
func CurrentValue(pile *Pile) card.Value {
	top, ok := pile.Top()
	if !ok {
		return ""
	}
	return top.Value()
}

func (g *Game) CurrentCard() (card.Card, bool) {
	return CurrentCard(g.discardPile)
}

func (g *Game) CurrentValue() card.Value {
	return CurrentValue(g.discardPile)
}

func (g *Game) CurrentPlayer() *Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.currentPlayerIndex]
}

// CurrentColor is the color set by the last discard or wild, falling back to
// the color of the card on top of the pile.
func (g *Game) CurrentColor() (color.Color, error) {
	if g.currentColor != "" {
		return g.currentColor, nil
	}
	top, ok := g.discardPile.Top()
	if !ok {
		return "", consts.ErrorsGameNotStarted
	}
	return top.Color(), nil
}

func (g *Game) SetCurrentColor(c color.Color) {
	g.currentColor = c
}

// PlayableCards lists what the current player may play right now.
func (g *Game) PlayableCards() ([]card.Card, error) {
	currentColor, err := g.CurrentColor()
	if err != nil {
		return nil, err
	}
	return GetPlayableCards(g.CurrentPlayer(), currentColor, g.CurrentValue()), nil
}
