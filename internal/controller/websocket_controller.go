package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/benbeisheim/chessrules/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
	logger      *log.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *log.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)

	out, err := wsc.gameService.RegisterConnection(gameID, playerID, c)
	if err != nil {
		wsc.logger.Printf("game %s: failed to register connection for %s: %v", gameID, playerID, err)
		if errors.Is(err, service.ErrConnectionExists) {
			c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
			)
		}
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			wsc.logger.Printf("game %s: read error for %s: %v", gameID, playerID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			out.WriteJSON(ws.NewError(fmt.Sprintf("%v: %v", model.ErrMalformedInput, err)))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			out.WriteJSON(ws.NewError(err.Error()))
		}
	}
}

// handleMessage applies one client message. The resulting state reaches the
// client through the session broadcast.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("%w: %v", model.ErrMalformedInput, err)
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, req)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
