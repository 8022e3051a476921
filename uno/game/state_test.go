package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func TestExtractState(t *testing.T) {
	g := riggedGame(t, card.New(color.Green, card.Four), 2)
	g.SetNextPlayerIndex(1)
	viewer := g.Players()[0]

	state := g.ExtractState(viewer)
	require.Equal(t, card.New(color.Green, card.Four), state.LastPlayedCard)
	require.Equal(t, color.Green, state.CurrentColor)
	require.Equal(t, "Computer 0", state.CurrentPlayerName)
	require.Equal(t, []string{"Human", "Computer 0", "Computer 1"}, state.PlayerSequence)
	require.Equal(t, map[string]int{"Human": 7, "Computer 0": 7, "Computer 1": 7}, state.PlayerHandCounts)
	require.Equal(t, 1, state.Direction)
	require.Equal(t, reserveSize, state.DeckSize)
	require.Equal(t, viewer.Hand.Cards(), state.ViewerHand)

	rendered := state.String()
	require.Contains(t, rendered, "> Computer 0 (7 card(s))")
	require.Contains(t, rendered, "Turn order ->")
	require.Contains(t, rendered, "Deck: 8 card(s)")
}

func TestExtractStateOfAnEmptyTable(t *testing.T) {
	g := game.NewGame(player.CreatePlayers("Human", 1), nil)
	g.ReverseDirection()

	state := g.ExtractState(nil)
	require.Equal(t, card.Card{}, state.LastPlayedCard)
	require.Equal(t, color.Color(""), state.CurrentColor)
	require.Equal(t, "Human", state.CurrentPlayerName)
	require.Nil(t, state.ViewerHand)
	require.Contains(t, state.String(), "Turn order <-")
}
