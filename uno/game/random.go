package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/uno/card"
)

// Random is the source of every random choice a game makes. *rand.Rand
// satisfies it.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded source, or a time-seeded one when seed is zero.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ShuffleCards is an in-place Fisher-Yates shuffle.
func ShuffleCards(cards []card.Card, random Random) {
	for i := len(cards) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
