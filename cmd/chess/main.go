// Command chess plays a two-player game in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/benbeisheim/chessrules/internal/config"
	"github.com/benbeisheim/chessrules/internal/console"
	"github.com/benbeisheim/chessrules/internal/model"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := model.NewGame(cfg.BoardOptions()...)
	_, err = game.Play(ctx, console.NewPrompter(os.Stdin, os.Stdout), console.NewRenderer(os.Stdout))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
