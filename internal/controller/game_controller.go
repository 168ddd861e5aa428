package controller

import (
	"errors"
	"log"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
	logger      *log.Logger
}

func NewGameController(gameService *service.GameService, logger *log.Logger) *GameController {
	return &GameController{gameService: gameService, logger: logger}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrMalformedInput):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrPlayerNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrInvalidSelection),
		errors.Is(err, model.ErrInvalidMove),
		errors.Is(err, model.ErrGameOver),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrGameFull),
		errors.Is(err, model.ErrAlreadyQueued):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		gc.logger.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return gc.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return gc.fail(c, errors.Join(model.ErrMalformedInput, err))
	}

	gameState, err := gc.gameService.HandleMove(gameID, playerID, req)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return gc.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	event, ok := gc.gameService.MatchStatus(playerID)
	if !ok {
		status := "idle"
		if gc.gameService.IsQueued(playerID) {
			status = "queued"
		}
		return c.JSON(fiber.Map{
			"status": status,
		})
	}
	return c.JSON(fiber.Map{
		"status":  "matched",
		"game_id": event.GameID,
		"color":   event.Color,
	})
}
