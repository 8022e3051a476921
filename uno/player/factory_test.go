package player_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayers(t *testing.T) {
	scenarios := []struct {
		description       string
		numberOfComputers int
		expectedNames     []string
	}{
		{
			description:       "human_only",
			numberOfComputers: 0,
			expectedNames:     []string{"Alice"},
		},
		{
			description:       "human_and_three_computers",
			numberOfComputers: 3,
			expectedNames:     []string{"Alice", "Computer 0", "Computer 1", "Computer 2"},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			players := player.CreatePlayers("Alice", scenario.numberOfComputers)
			require.Len(t, players, len(scenario.expectedNames))
			for i, p := range players {
				require.Equal(t, scenario.expectedNames[i], p.Name)
				require.Equal(t, i == 0, p.Human)
				require.True(t, p.Hand.Empty())
			}
		})
	}
}

func TestNewComputer(t *testing.T) {
	p := player.NewComputer("Bot")
	require.Equal(t, "Bot", p.Name)
	require.False(t, p.Human)
	require.NotNil(t, p.Hand)
}
