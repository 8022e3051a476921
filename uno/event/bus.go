package event

// Bus holds the emitters of a single game. Listeners registered on one game
// never hear about another.
type Bus struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	CardsDrawn        *cardsDrawnEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	DeckReshuffled    *deckReshuffledEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		DeckReshuffled:    &deckReshuffledEmitter{},
	}
}

// Listener receives every event of a game.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	ColorPickedListener
	CardsDrawnListener
	TurnOrderReversedListener
	DeckReshuffledListener
}

func (b *Bus) AddListener(listener Listener) {
	b.FirstCardPlayed.AddListener(listener)
	b.CardPlayed.AddListener(listener)
	b.ColorPicked.AddListener(listener)
	b.CardsDrawn.AddListener(listener)
	b.TurnOrderReversed.AddListener(listener)
	b.DeckReshuffled.AddListener(listener)
}
