package msg_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestPlayerDrewCards(t *testing.T) {
	scenarios := []struct {
		description string
		cards       []card.Card
		expected    string
	}{
		{
			description: "one_card",
			cards:       []card.Card{card.New(color.Red, card.One)},
			expected:    "Computer 0 drew a card!\n",
		},
		{
			description: "several_cards",
			cards: []card.Card{
				card.New(color.Red, card.One),
				card.New(color.Blue, card.Two),
				card.New(color.Special, card.Wild),
				card.New(color.Green, card.Skip),
			},
			expected: "Computer 0 drew 4 cards!\n",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, msg.Message.PlayerDrewCards("Computer 0", scenario.cards))
		})
	}
}

func TestPlayerPlayedCard(t *testing.T) {
	played := card.New(color.Special, card.Wild)
	require.Equal(t, "Alice played "+played.String()+"!\n", msg.Message.PlayerPlayedCard("Alice", played, 3))
	require.Equal(t, "Alice played "+played.String()+"! UNO!\n", msg.Message.PlayerPlayedCard("Alice", played, 1))
}

func TestPlainMessages(t *testing.T) {
	require.Equal(t, "Turn order has been reversed!\n", msg.Message.TurnOrderReversed())
	require.Equal(t, "Bob wins!\n", msg.Message.WinnerFound("Bob"))
	require.Equal(t, "The discard pile was shuffled into a new deck of 12 cards!\n", msg.Message.DeckReshuffled(12))
}

func TestSprintlns(t *testing.T) {
	require.Equal(t, "a\nb\n", msg.Sprintlns([]string{"a", "b"}))
}
