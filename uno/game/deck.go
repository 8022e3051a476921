package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const standardDeckSize = 108

// Deck is a draw stack: the last card is the top and is drawn first.
type Deck struct {
	cards []card.Card
}

// NewDeck returns the standard deck, unshuffled.
func NewDeck() *Deck {
	return NewDeckOf(StandardCards())
}

func NewDeckOf(cards []card.Card) *Deck {
	return &Deck{cards: cards}
}

func (d *Deck) Draw() (card.Card, bool) {
	size := len(d.cards)
	if size == 0 {
		return card.Card{}, false
	}
	top := d.cards[size-1]
	d.cards = d.cards[:size-1]
	return top, true
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Shuffle(random Random) {
	ShuffleCards(d.cards, random)
}

// StandardCards builds the 108 card population in a fixed order: each color's
// numbers and actions, then the specials.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, standardDeckSize)
	for _, cardColor := range color.Colors {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createSpecialCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.New(cardColor, card.Zero)}

	for _, number := range card.Numbers[1:] {
		numberCard := card.New(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	for _, value := range card.Actions {
		actionCard := card.New(cardColor, value)
		cards = append(cards, actionCard, actionCard)
	}

	return cards
}

func createSpecialCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		for _, value := range card.Specials {
			cards = append(cards, card.New(color.Special, value))
		}
	}
	return cards
}
