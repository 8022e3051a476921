package player

import (
	"fmt"

	"github.com/ratel-online/uno/uno/game"
)

func New(name string, human bool) *game.Player {
	return &game.Player{
		Name:  name,
		Human: human,
		Hand:  game.NewHand(),
	}
}

func NewComputer(name string) *game.Player {
	return New(name, false)
}

// CreatePlayers seats the human first, followed by numberOfComputers
// computer players named "Computer 0", "Computer 1" and so on.
func CreatePlayers(humanPlayerName string, numberOfComputers int) []*game.Player {
	players := make([]*game.Player, 0, numberOfComputers+1)
	players = append(players, New(humanPlayerName, true))
	for i := 0; i < numberOfComputers; i++ {
		players = append(players, NewComputer(fmt.Sprintf("Computer %d", i)))
	}
	return players
}
