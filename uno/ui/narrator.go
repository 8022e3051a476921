package ui

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// Narrator prints what happens at the table. The cards a computer draws are
// announced by count only.
type Narrator struct{}

func NewNarrator() *Narrator {
	return &Narrator{}
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card, payload.CardsLeft))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	if payload.PlayerName == "" {
		Print(msg.Message.OpeningColorPicked(payload.Color))
		return
	}
	Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Human {
		Print(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *Narrator) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	Print(msg.Message.TurnOrderReversed())
}

func (n *Narrator) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	Print(msg.Message.DeckReshuffled(payload.DeckSize))
}
