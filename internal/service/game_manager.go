// service/game_manager.go
package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MatchFoundEvent is what a queued player learns once paired.
type MatchFoundEvent struct {
	GameID string      `json:"game_id"`
	Color  model.Color `json:"color"`
}

type GameManager struct {
	games        map[string]*Session
	queue        *model.Queue
	matches      map[string]MatchFoundEvent // playerID -> match
	boardOptions []model.BoardOption
	logger       *log.Logger
	newID        func() string
	mu           sync.RWMutex
}

func NewGameManager(logger *log.Logger, opts ...model.BoardOption) *GameManager {
	return &GameManager{
		games:        make(map[string]*Session),
		queue:        model.NewQueue(),
		matches:      make(map[string]MatchFoundEvent),
		boardOptions: opts,
		logger:       logger,
		newID:        func() string { return uuid.New().String() },
	}
}

// RunMatchmaking pairs queued players every interval until ctx is done.
func (gm *GameManager) RunMatchmaking(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.matchPending()
		}
	}
}

// matchPending turns every pair of queued players into a game.
func (gm *GameManager) matchPending() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	paired := 0
	for {
		first, second, ok := gm.queue.GetNextPair()
		if !ok {
			return paired
		}

		gameID := gm.newID()
		session := NewSession(gameID, gm.logger, gm.boardOptions...)
		firstColor, err := session.AddPlayer(first.PlayerID)
		if err != nil {
			gm.logger.Printf("matchmaking: adding %s to %s: %v", first.PlayerID, gameID, err)
			continue
		}
		secondColor, err := session.AddPlayer(second.PlayerID)
		if err != nil {
			gm.logger.Printf("matchmaking: adding %s to %s: %v", second.PlayerID, gameID, err)
			continue
		}
		gm.games[gameID] = session
		gm.matches[first.PlayerID] = MatchFoundEvent{GameID: gameID, Color: firstColor}
		gm.matches[second.PlayerID] = MatchFoundEvent{GameID: gameID, Color: secondColor}
		gm.logger.Printf("matchmaking: paired %s and %s in game %s", first.PlayerID, second.PlayerID, gameID)
		paired++
	}
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	// A fresh request replaces any match the player has not picked up.
	delete(gm.matches, playerID)
	return gm.queue.AddPlayer(playerID)
}

// MatchStatus reports the match that was found for playerID, if any.
func (gm *GameManager) MatchStatus(playerID string) (MatchFoundEvent, bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	event, ok := gm.matches[playerID]
	return event, ok
}

func (gm *GameManager) IsQueued(playerID string) bool {
	return gm.queue.Contains(playerID)
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = NewSession(gameID, gm.logger, gm.boardOptions...)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// GameIDs lists every hosted game in sorted order.
func (gm *GameManager) GameIDs() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := maps.Keys(gm.games)
	slices.Sort(ids)
	return ids
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return model.White, err
	}
	return session.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.State(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, req model.MoveRequest) (model.GameState, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.MakeMove(playerID, req)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) (Conn, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Conn) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID, conn)
}
