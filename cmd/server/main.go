package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/chessrules/internal/config"
	"github.com/benbeisheim/chessrules/internal/controller"
	"github.com/benbeisheim/chessrules/internal/service"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "[chess] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	gameManager := service.NewGameManager(logger, cfg.BoardOptions()...)
	gameService := service.NewGameService(gameManager)
	go gameManager.RunMatchmaking(ctx, cfg.MatchInterval)

	app := controller.NewApp(gameService, cfg.AllowOrigins, logger)

	go func() {
		<-ctx.Done()
		logger.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("listening on %s (path blocking: %t)", cfg.Addr, cfg.PathBlocking)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
