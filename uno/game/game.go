package game

import (
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Game struct {
	id                 uuid.UUID
	players            []*Player
	deck               *Deck
	discardPile        *Pile
	currentPlayerIndex int
	direction          int
	// currentColor overrides the color of the discard pile's top card when
	// set. The empty color means no override.
	currentColor color.Color
	random       Random
	events       *event.Bus
}

type Option func(*Game)

func WithRandom(random Random) Option {
	return func(g *Game) {
		g.random = random
	}
}

func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

func WithEvents(events *event.Bus) Option {
	return func(g *Game) {
		g.events = events
	}
}

// NewGame seats players around deck. Nothing is shuffled or dealt until Start.
func NewGame(players []*Player, deck *Deck, opts ...Option) *Game {
	if deck == nil {
		deck = NewDeckOf(nil)
	}
	g := &Game{
		id:                 uuid.New(),
		players:            players,
		deck:               deck,
		discardPile:        NewPile(),
		currentPlayerIndex: 0,
		direction:          consts.Forward,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.random == nil {
		g.random = NewRandom(0)
	}
	if g.events == nil {
		g.events = event.NewBus()
	}
	return g
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) DiscardPile() *Pile {
	return g.discardPile
}

func (g *Game) CurrentPlayerIndex() int {
	return g.currentPlayerIndex
}

func (g *Game) Direction() int {
	return g.direction
}

func (g *Game) Events() *event.Bus {
	return g.events
}

// SetDeck replaces the draw stack with cards.
func (g *Game) SetDeck(cards []card.Card) {
	g.deck = NewDeckOf(cards)
}

// Start shuffles the deck, deals every player their starting hand and turns
// over the opening card. The opening card's effect is not applied here; call
// ApplySpecialAction for that.
func (g *Game) Start() error {
	if len(g.players) == 0 {
		return consts.ErrorsGamePlayersInvalid
	}
	g.deck.Shuffle(g.random)
	g.DealStartingCards()
	g.PlayFirstCard()
	log.Infof("game %s started with %d players, %d cards left in deck\n", g.id, len(g.players), g.deck.Len())
	return nil
}

func (g *Game) DealStartingCards() {
	for _, player := range g.players {
		g.addCards(player, g.DrawCardsFromDeck(consts.InitialHandSize))
	}
}

func (g *Game) PlayFirstCard() {
	cards := g.DrawCardsFromDeck(1)
	if len(cards) == 0 {
		return
	}
	g.DiscardCard(cards[0])
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: cards[0],
	})
}

func (g *Game) addCards(player *Player, cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	player.Hand.Add(cards...)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name,
		Human:      player.Human,
		Cards:      cards,
	})
}
