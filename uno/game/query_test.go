package game_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func TestCurrentCardAndValue(t *testing.T) {
	pile := game.NewPile()
	_, ok := game.CurrentCard(pile)
	require.False(t, ok)
	require.Equal(t, card.Value(""), game.CurrentValue(pile))

	pile.Add(card.New(color.Red, card.Five))
	pile.Add(card.New(color.Green, card.Skip))
	top, ok := game.CurrentCard(pile)
	require.True(t, ok)
	require.Equal(t, card.New(color.Green, card.Skip), top)
	require.Equal(t, card.Skip, game.CurrentValue(pile))
}

func TestCurrentColor(t *testing.T) {
	t.Run("falls_back_to_the_top_card", func(t *testing.T) {
		g := game.NewGame(nil, nil)
		g.DiscardPile().Add(card.New(color.Red, card.Five))
		g.DiscardPile().Add(card.New(color.Green, card.Skip))
		g.DiscardPile().Add(card.New(color.Blue, card.Two))

		currentColor, err := g.CurrentColor()
		require.NoError(t, err)
		require.Equal(t, color.Blue, currentColor)
		require.Equal(t, card.Two, g.CurrentValue())
	})

	t.Run("prefers_the_picked_color", func(t *testing.T) {
		g := game.NewGame(nil, nil)
		g.DiscardCard(card.New(color.Special, card.Wild))
		g.SetCurrentColor(color.Yellow)

		currentColor, err := g.CurrentColor()
		require.NoError(t, err)
		require.Equal(t, color.Yellow, currentColor)
	})

	t.Run("fails_on_an_empty_table", func(t *testing.T) {
		g := game.NewGame(nil, nil)
		_, err := g.CurrentColor()
		require.Equal(t, consts.ErrorsGameNotStarted, err)
		require.Equal(t, card.Value(""), g.CurrentValue())
	})
}

func TestCurrentPlayer(t *testing.T) {
	players := player.CreatePlayers("Human", 2)
	g := game.NewGame(players, nil)
	require.Same(t, players[0], g.CurrentPlayer())

	g.SetNextPlayerIndex(1)
	require.Same(t, players[1], g.CurrentPlayer())

	g.ReverseDirection()
	g.SetNextPlayerIndex(2)
	require.Same(t, players[2], g.CurrentPlayer())
}

func TestGamePlayableCards(t *testing.T) {
	g := riggedGame(t, card.New(color.Red, card.Three), 1)
	current := g.CurrentPlayer()
	current.Hand.Add(
		card.New(color.Blue, card.Three),
		card.New(color.Green, card.Eight),
		card.New(color.Special, card.Wild),
	)

	playableCards, err := g.PlayableCards()
	require.NoError(t, err)
	require.Len(t, playableCards, 9)
	require.Contains(t, playableCards, card.New(color.Blue, card.Three))
	require.Contains(t, playableCards, card.New(color.Special, card.Wild))
	require.NotContains(t, playableCards, card.New(color.Green, card.Eight))

	g.SetCurrentColor(color.Green)
	playableCards, err = g.PlayableCards()
	require.NoError(t, err)
	require.ElementsMatch(t, []card.Card{
		card.New(color.Blue, card.Three),
		card.New(color.Green, card.Eight),
		card.New(color.Special, card.Wild),
	}, playableCards)
}
