package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/ws"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// lockedConn serialises writes to one connection. A websocket allows a
// single writer at a time, and both broadcasts and the connection's own read
// loop write to it.
type lockedConn struct {
	mu   sync.Mutex
	conn Conn
}

func (c *lockedConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *lockedConn) Close() error {
	return c.conn.Close()
}

// The connections watching a specific game
type sessionConnections struct {
	connections map[string]*lockedConn // playerID -> connection
	mu          sync.RWMutex
}

// Session owns one game and its observers. The mutex serialises every touch
// of the board, including the evaluator's speculative moves.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *model.Game
	white       model.Player
	black       model.Player
	connections *sessionConnections
	logger      *log.Logger
}

func NewSession(id string, logger *log.Logger, opts ...model.BoardOption) *Session {
	return &Session{
		ID:          id,
		game:        model.NewGame(opts...),
		connections: &sessionConnections{connections: make(map[string]*lockedConn)},
		logger:      logger,
	}
}

// AddPlayer seats a player, White first. Rejoining returns the same colour.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color, ok := s.colorOf(playerID); ok {
		return color, nil
	}
	if s.white.ID == "" {
		s.white = model.Player{ID: playerID, Color: model.White}
		return model.White, nil
	}
	if s.black.ID == "" {
		s.black = model.Player{ID: playerID, Color: model.Black}
		return model.Black, nil
	}
	return model.White, ErrGameFull
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	if playerID == "" {
		return model.White, false
	}
	for _, p := range []model.Player{s.white, s.black} {
		if p.ID == playerID {
			return p.Color, true
		}
	}
	return model.White, false
}

func (s *Session) IsPlayerInGame(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.colorOf(playerID)
	return ok
}

func (s *Session) canSpectate() bool {
	return s.white.ID == "" || s.black.ID == ""
}

// MakeMove plays a move for playerID and broadcasts the new state.
func (s *Session) MakeMove(playerID string, req model.MoveRequest) (model.GameState, error) {
	s.mu.Lock()
	color, ok := s.colorOf(playerID)
	if !ok {
		s.mu.Unlock()
		return model.GameState{}, ErrPlayerNotInGame
	}
	if color != s.game.ToMove() && !s.game.Status().Terminal() {
		s.mu.Unlock()
		return model.GameState{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, s.game.ToMove())
	}
	move, err := s.game.Submit(req)
	if err != nil {
		s.mu.Unlock()
		return model.GameState{}, err
	}
	s.logger.Printf("game %s: %s played %s%s, status %s", s.ID, color, req.From, move.Dest(), s.game.Status())
	state := s.snapshot()
	s.mu.Unlock()

	s.broadcast(state)
	return state, nil
}

func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *Session) snapshot() model.GameState {
	state := s.game.Snapshot()
	state.Players.White.ID = s.white.ID
	state.Players.White.Joined = s.white.ID != ""
	state.Players.Black.ID = s.black.ID
	state.Players.Black.Joined = s.black.ID != ""
	return state
}

// RegisterConnection adds conn to the game's observers and sends it the
// current state. Every later write to conn must go through the returned Conn.
func (s *Session) RegisterConnection(playerID string, conn Conn) (Conn, error) {
	s.mu.Lock()
	_, isPlayer := s.colorOf(playerID)
	isAuthorized := isPlayer || s.canSpectate()
	state := s.snapshot()
	s.mu.Unlock()

	if !isAuthorized {
		return nil, ErrPlayerNotInGame
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the new one.
		s.connections.mu.Unlock()
		return nil, ErrConnectionExists
	}
	locked := &lockedConn{conn: conn}
	s.connections.connections[playerID] = locked
	s.connections.mu.Unlock()
	s.logger.Printf("game %s: registered connection for player %s", s.ID, playerID)

	s.send(playerID, locked, state)
	return locked, nil
}

// UnregisterConnection drops playerID's connection if it is still conn.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && (current.conn == conn || Conn(current) == conn) {
		delete(s.connections.connections, playerID)
		s.logger.Printf("game %s: unregistered connection for player %s", s.ID, playerID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

func (s *Session) broadcast(state model.GameState) {
	s.connections.mu.RLock()
	active := make(map[string]*lockedConn, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		active[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range active {
		s.send(playerID, conn, state)
	}
}

func (s *Session) send(playerID string, conn *lockedConn, state model.GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		s.logger.Printf("game %s: failed to marshal state: %v", s.ID, err)
		return
	}
	if err := conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}); err != nil {
		s.logger.Printf("game %s: failed to send state to player %s: %v", s.ID, playerID, err)
		s.UnregisterConnection(playerID, conn)
		conn.Close()
	}
}
