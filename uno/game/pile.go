package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. Its last card is the active one.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// RemoveAllButLast takes every card under the top one out of the pile.
func (p *Pile) RemoveAllButLast() []card.Card {
	pileSize := len(p.cards)
	if pileSize <= 1 {
		return nil
	}
	removed := make([]card.Card, pileSize-1)
	copy(removed, p.cards[:pileSize-1])
	top := p.cards[pileSize-1]
	p.cards = append(p.cards[:0], top)
	return removed
}
