package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// State is what one player may see of the table.
type State struct {
	LastPlayedCard    card.Card
	CurrentColor      color.Color
	CurrentPlayerName string
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	Direction         int
	DeckSize          int
	ViewerHand        []card.Card
}

func (g *Game) ExtractState(viewer *Player) State {
	playerSequence := make([]string, 0, len(g.players))
	playerHandCounts := make(map[string]int, len(g.players))
	for _, player := range g.players {
		playerSequence = append(playerSequence, player.Name)
		playerHandCounts[player.Name] = player.Hand.Size()
	}

	lastPlayedCard, _ := g.CurrentCard()
	currentColor, _ := g.CurrentColor()
	currentPlayerName := ""
	if current := g.CurrentPlayer(); current != nil {
		currentPlayerName = current.Name
	}
	var viewerHand []card.Card
	if viewer != nil {
		viewerHand = viewer.Hand.Cards()
	}

	return State{
		LastPlayedCard:    lastPlayedCard,
		CurrentColor:      currentColor,
		CurrentPlayerName: currentPlayerName,
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		Direction:         g.direction,
		DeckSize:          g.deck.Len(),
		ViewerHand:        viewerHand,
	}
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
	lines = append(lines, fmt.Sprintf("Current color: %s", s.CurrentColor.Paint(string(s.CurrentColor))))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		if playerName == s.CurrentPlayerName {
			playerStatus = "> " + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	arrow := "->"
	if s.Direction < 0 {
		arrow = "<-"
	}
	lines = append(lines, fmt.Sprintf("Turn order %s %s", arrow, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s)", s.DeckSize))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.ViewerHand))

	return strings.Join(lines, "\n")
}
