package msg

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card, hand []card.Card) string {
	return Sprintlns([]string{
		Sprintf("%s, none of your cards match %s!", playerName, lastPlayedCard),
		Sprintf("Your hand is %s", hand),
	})
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color.Paint(color.String()))
}

func (m MessageWriter) OpeningColorPicked(color color.Color) string {
	return Sprintfln("The color is %s!", color.Paint(color.String()))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card, cardsLeft int) string {
	if cardsLeft == 1 {
		return Sprintfln("%s played %s! UNO!", playerName, card)
	}
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) DeckReshuffled(deckSize int) string {
	return Sprintfln("The discard pile was shuffled into a new deck of %d cards!", deckSize)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}
