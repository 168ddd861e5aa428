// Package console is the terminal front end: it prompts for the four
// coordinates of a move and prints the board after every committed move.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benbeisheim/chessrules/internal/model"
)

var prompts = [4]string{
	"Enter source row: ",
	"Enter source column: ",
	"Enter destination row: ",
	"Enter destination column: ",
}

// Prompter reads moves line by line, one coordinate per line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) NextMove(ctx context.Context, toMove model.Color) (model.MoveRequest, error) {
	fmt.Fprintf(p.out, "%s's turn.\n", toMove)

	var coords [4]int
	for i, prompt := range prompts {
		if err := ctx.Err(); err != nil {
			return model.MoveRequest{}, err
		}
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return model.MoveRequest{}, err
			}
			return model.MoveRequest{}, io.EOF
		}
		n, err := ParseCoordinate(p.in.Text())
		if err != nil {
			return model.MoveRequest{}, err
		}
		coords[i] = n
	}

	return model.MoveRequest{
		From: model.Square{Row: coords[0], Col: coords[1]},
		To:   model.Square{Row: coords[2], Col: coords[3]},
	}, nil
}

// ParseCoordinate accepts a single integer in [0,7].
func ParseCoordinate(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", model.ErrMalformedInput, s)
	}
	if n < 0 || n > 7 {
		return 0, fmt.Errorf("%w: %d is outside 0-7", model.ErrMalformedInput, n)
	}
	return n, nil
}

type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) ShowBoard(b *model.Board, toMove model.Color) {
	fmt.Fprintln(r.out, b.String())
	for _, c := range []model.Color{toMove, toMove.Opponent()} {
		if b.IsInCheck(c) {
			fmt.Fprintf(r.out, "%s is in check.\n", c)
		}
	}
}

func (r *Renderer) Reject(err error) {
	fmt.Fprintln(r.out, err)
}

func (r *Renderer) Announce(o model.Outcome) {
	fmt.Fprintln(r.out, o)
}
