package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// DrawCardsFromDeck pops amount cards off the deck. An empty deck is refilled
// from the discard pile, top card excepted. When neither has cards left the
// draw stops short.
func (g *Game) DrawCardsFromDeck(amount int) []card.Card {
	if amount <= 0 {
		return nil
	}
	drawnCards := make([]card.Card, 0, amount)
	for len(drawnCards) < amount {
		if g.deck.Empty() && !g.reshuffleDiscardPile() {
			log.Errorf("game %s: no cards left to draw, drew %d of %d\n", g.id, len(drawnCards), amount)
			break
		}
		drawnCard, _ := g.deck.Draw()
		drawnCards = append(drawnCards, drawnCard)
	}
	return drawnCards
}

func (g *Game) reshuffleDiscardPile() bool {
	cards := g.discardPile.RemoveAllButLast()
	if len(cards) == 0 {
		return false
	}
	ShuffleCards(cards, g.random)
	g.SetDeck(cards)
	log.Infof("game %s: discard pile reshuffled into a new deck of %d cards\n", g.id, len(cards))
	g.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{
		DeckSize: len(cards),
	})
	return true
}

// DiscardCard puts c on top of the pile and makes its color current, clearing
// any color picked for an earlier wild.
func (g *Game) DiscardCard(c card.Card) {
	g.discardPile.Add(c)
	g.SetCurrentColor(c.Color())
}

// PlayCard moves c from the player's hand to the discard pile. It returns
// false, changing nothing, when the player does not hold c.
func (g *Game) PlayCard(c card.Card, player *Player) bool {
	if !player.Hand.Remove(c) {
		return false
	}
	g.DiscardCard(c)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name,
		Card:       c,
		CardsLeft:  player.Hand.Size(),
	})
	return true
}

// Play plays c for player and resolves its effect. won is true when the card
// emptied the player's hand, in which case no effect is applied and the game
// is over.
func (g *Game) Play(c card.Card, player *Player) (played bool, won bool, err error) {
	if !g.PlayCard(c, player) {
		return false, false, nil
	}
	if player.Hand.Empty() {
		log.Infof("game %s: %s wins\n", g.id, player.Name)
		return true, true, nil
	}
	if IsActionCard(c) {
		return true, false, g.ApplySpecialAction()
	}
	g.ApplyAction()
	return true, false, nil
}

func (g *Game) SetNextPlayerIndex(increment int) {
	g.currentPlayerIndex = NextPlayerIndex(g.currentPlayerIndex, g.direction, len(g.players), increment)
}

func (g *Game) ReverseDirection() {
	g.direction = -g.direction
	g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
		Direction: g.direction,
	})
}

// IsFirstTurn reports whether only the opening card has been discarded.
func (g *Game) IsFirstTurn() bool {
	return g.discardPile.Len() == 1
}

// ApplyAction resolves a plain card: the turn passes to the next player.
func (g *Game) ApplyAction() {
	g.SetNextPlayerIndex(1)
}

// ApplySpecialAction resolves the card on top of the discard pile. On the
// opening card nobody has played yet, so the turn is not passed before
// drawing or after picking a color, and the color is picked by nobody.
func (g *Game) ApplySpecialAction() error {
	currentCard, ok := g.CurrentCard()
	if !ok {
		return consts.ErrorsGameNotStarted
	}
	firstTurn := g.IsFirstTurn()
	playedBy := ""
	if current := g.CurrentPlayer(); current != nil && !firstTurn {
		playedBy = current.Name
	}
	for _, cardAction := range currentCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.PassTurnAction:
			if !firstTurn {
				g.SetNextPlayerIndex(1)
			}
		case action.SkipTurnAction:
			g.SetNextPlayerIndex(2)
		case action.ReverseTurnsAction:
			g.ReverseDirection()
			g.SetNextPlayerIndex(1)
		case action.DrawCardsAction:
			player := g.CurrentPlayer()
			g.addCards(player, g.DrawCardsFromDeck(cardAction.Amount()))
		case action.PickColorAction:
			g.pickRandomColor(playedBy)
		}
	}
	return nil
}

// DrawCardForCurrentPlayer gives the current player one card from the deck,
// but only when nothing in their hand is playable.
func (g *Game) DrawCardForCurrentPlayer() (bool, error) {
	currentColor, err := g.CurrentColor()
	if err != nil {
		return false, err
	}
	player := g.CurrentPlayer()
	playableCards := GetPlayableCards(player, currentColor, g.CurrentValue())
	if len(playableCards) > 0 {
		return false, nil
	}
	drawnCards := g.DrawCardsFromDeck(1)
	g.addCards(player, drawnCards)
	return len(drawnCards) > 0, nil
}

// ChangeToRandomColor picks a color on behalf of the current player.
func (g *Game) ChangeToRandomColor() {
	name := ""
	if player := g.CurrentPlayer(); player != nil {
		name = player.Name
	}
	g.pickRandomColor(name)
}

func (g *Game) pickRandomColor(playerName string) {
	newColor := color.Colors[g.random.Intn(len(color.Colors))]
	g.SetCurrentColor(newColor)
	g.events.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: playerName,
		Color:      newColor,
	})
}
