package controller

import (
	"log"
	"strings"

	"github.com/benbeisheim/chessrules/internal/middleware"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/exp/slices"
)

// NewApp wires the REST and websocket routes for gameService.
func NewApp(gameService *service.GameService, allowOrigins []string, logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: !slices.Contains(allowOrigins, "*"),
	}))
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		logger.Printf("%s %s -> %d", c.Method(), c.Path(), c.Response().StatusCode())
		return err
	})

	gameController := NewGameController(gameService, logger)
	wsController := NewWebSocketController(gameService, logger)

	app.Use("/ws", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(gameService.HasGame), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         allowOrigins,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Get("/", gameController.ListGames)
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Get("/matchmaking/status", gameController.MatchmakingStatus)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)

	return app
}
