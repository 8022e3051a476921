package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	ui.Delay = cfg.Delay
	ui.Print(msg.Message.Welcome())

	playerName := cfg.PlayerName
	if playerName == "" {
		playerName = ui.PromptString("What's your name?")
	}
	numberOfComputers := cfg.NumberOfComputers
	if numberOfComputers == 0 {
		numberOfComputers = ui.PromptIntegerInRange(
			consts.MinComputerPlayers,
			consts.MaxComputerPlayers,
			fmt.Sprintf("How many computer players (%d-%d)?", consts.MinComputerPlayers, consts.MaxComputerPlayers),
		)
	}

	random := game.NewRandom(cfg.Seed)
	session, err := service.CreateSession(playerName, numberOfComputers, game.WithRandom(random))
	if err != nil {
		log.Error(err)
		return
	}
	defer service.RemoveSession(session.ID())

	g := session.Game
	g.Events().AddListener(ui.NewNarrator())
	if err := g.Start(); err != nil {
		log.Error(err)
		return
	}
	if err := g.ApplySpecialAction(); err != nil {
		log.Error(err)
		return
	}
	if err := play(g, player.RandomChoice(random)); err != nil {
		log.Error(err)
	}
}

// play runs turns until somebody empties their hand. A full round in which
// nobody can play or draw ends the game with consts.ErrorsGameStalled.
func play(g *game.Game, strategy player.Strategy) error {
	passes := 0
	for {
		current := g.CurrentPlayer()
		var won, moved bool
		var err error
		if current.Human {
			won, moved, err = humanTurn(g, current)
		} else {
			var turn player.Turn
			turn, err = player.Continue(g, strategy)
			won, moved = turn.Won, turn.Played || turn.Drew
		}
		if err != nil {
			return err
		}
		if won {
			ui.Print(msg.Message.WinnerFound(current.Name))
			return nil
		}
		if moved {
			passes = 0
			continue
		}
		// Nothing playable and nothing left to draw.
		passes++
		if passes >= len(g.Players()) {
			return consts.ErrorsGameStalled
		}
		g.ApplyAction()
	}
}

func humanTurn(g *game.Game, human *game.Player) (won bool, moved bool, err error) {
	ui.Print(msg.Message.HumanPlayerTurnStarted(human.Name))
	ui.Println(g.ExtractState(human))

	playableCards, err := g.PlayableCards()
	if err != nil {
		return false, false, err
	}
	if len(playableCards) == 0 {
		lastPlayedCard, _ := g.CurrentCard()
		ui.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(human.Name, lastPlayedCard, human.Hand.Cards()))
		drew, drawErr := g.DrawCardForCurrentPlayer()
		return false, drew, drawErr
	}

	selectedCard := ui.PromptCardSelection(playableCards)
	played, won, err := g.Play(selectedCard, human)
	return won, played, err
}
