package game

// NextPlayerIndex moves index by direction*increment seats and wraps the
// result into [0, totalPlayers).
func NextPlayerIndex(index, direction, totalPlayers, increment int) int {
	if totalPlayers <= 0 {
		return 0
	}
	index += direction * increment
	for index < 0 {
		index += totalPlayers
	}
	for index >= totalPlayers {
		index -= totalPlayers
	}
	return index
}
