package service

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
)

var sessions = hashmap.New()

// Session is one local game held by the registry.
type Session struct {
	Game      *game.Game
	Human     *game.Player
	CreatedAt time.Time
}

func (s *Session) ID() uuid.UUID {
	return s.Game.ID()
}

// CreateSession seats a human and numberOfComputers computer players around a
// fresh standard deck. The game is registered but not started.
func CreateSession(humanName string, numberOfComputers int, opts ...game.Option) (*Session, error) {
	if numberOfComputers < consts.MinComputerPlayers || numberOfComputers > consts.MaxComputerPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	players := player.CreatePlayers(humanName, numberOfComputers)
	session := &Session{
		Game:      game.NewGame(players, game.NewDeck(), opts...),
		Human:     players[0],
		CreatedAt: time.Now(),
	}
	sessions.Set(session.ID().String(), session)
	log.Infof("session %s created for %s with %d computer players\n", session.ID(), humanName, numberOfComputers)
	return session, nil
}

func GetSession(id uuid.UUID) (*Session, error) {
	if v, ok := sessions.Get(id.String()); ok {
		return v.(*Session), nil
	}
	return nil, consts.ErrorsGameNotFound
}

func RemoveSession(id uuid.UUID) {
	if _, ok := sessions.Get(id.String()); !ok {
		return
	}
	sessions.Del(id.String())
	log.Infof("session %s removed\n", id)
}

// GetSessions lists the registered sessions, oldest first.
func GetSessions() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}
