package game

// Player is a seat at the table. The uno/player package builds them.
type Player struct {
	Name  string
	Human bool
	Hand  *Hand
}

func (p *Player) String() string {
	return p.Name
}
