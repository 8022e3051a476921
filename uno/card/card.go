package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Value string

const (
	Zero  Value = "0"
	One   Value = "1"
	Two   Value = "2"
	Three Value = "3"
	Four  Value = "4"
	Five  Value = "5"
	Six   Value = "6"
	Seven Value = "7"
	Eight Value = "8"
	Nine  Value = "9"

	Skip    Value = "Skip"
	DrawTwo Value = "Draw Two"
	Reverse Value = "Reverse"

	Wild         Value = "Wild"
	WildDrawFour Value = "Wild Draw Four"
)

var (
	Numbers  = []Value{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}
	Actions  = []Value{Skip, DrawTwo, Reverse}
	Specials = []Value{Wild, WildDrawFour}
)

// Card is immutable. Cards with the same color and value are interchangeable,
// so Card is compared by value.
type Card struct {
	color color.Color
	value Value
}

func New(color color.Color, value Value) Card {
	return Card{
		color: color,
		value: value,
	}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) IsSpecial() bool {
	return c.value == Wild || c.value == WildDrawFour
}

// IsAction reports whether playing c has an effect beyond passing the turn.
func (c Card) IsAction() bool {
	switch c.value {
	case Skip, DrawTwo, Reverse, Wild, WildDrawFour:
		return true
	}
	return false
}

func (c Card) Actions() []action.Action {
	switch c.value {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewPassTurnAction(),
			action.NewDrawCardsAction(2),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewPassTurnAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPassTurnAction(),
			action.NewDrawCardsAction(4),
			action.NewPickColorAction(),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	switch c.value {
	case Skip:
		return c.color.Paint("(/)")
	case DrawTwo:
		return c.color.Paint("+2!")
	case Reverse:
		return c.color.Paint("<=>")
	case Wild:
		return c.color.Paint("(*)")
	case WildDrawFour:
		return c.color.Paint("+4!")
	default:
		return c.color.Paintf("[%s]", string(c.value))
	}
}

// Label is the uncolored form used in logs.
func (c Card) Label() string {
	return fmt.Sprintf("%s %s", c.color, c.value)
}
