package event

import "github.com/ratel-online/uno/uno/card"

// CardsDrawnPayload carries the drawn cards themselves; listeners rendering
// for someone other than PlayerName should only show the count.
type CardsDrawnPayload struct {
	PlayerName string
	Human      bool
	Cards      []card.Card
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
