package consts

import "time"

const (
	InitialHandSize = 7

	MinComputerPlayers = 1
	MaxComputerPlayers = 9

	// Forward and Backward are the two turn directions.
	Forward  = 1
	Backward = -1

	DefaultPrintDelay = 1 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsGamePlayersInvalid = NewErr(2, true, "Game players invalid. ")
	ErrorsGameNotStarted     = NewErr(2, true, "Game not started. ")
	ErrorsGameNotFound       = NewErr(3, true, "Game not found. ")
	ErrorsGameStalled        = NewErr(4, true, "Nobody can play or draw, game over. ")
)
