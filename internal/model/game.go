package model

import (
	"context"
	"errors"
	"fmt"
)

type Status int

const (
	StatusAwaitingMove Status = iota
	StatusMoveApplied
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusAwaitingMove:
		return "awaiting_move"
	case StatusMoveApplied:
		return "move_applied"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

type Outcome struct {
	Status Status
	Winner Color
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusCheckmate:
		return fmt.Sprintf("%s wins by checkmate", o.Winner)
	case StatusStalemate:
		return "stalemate"
	}
	return "in progress"
}

// MoveSource supplies the next move for the side to move. Returning an error
// wrapping ErrMalformedInput asks for a re-prompt; any other error ends play.
type MoveSource interface {
	NextMove(ctx context.Context, toMove Color) (MoveRequest, error)
}

type Display interface {
	ShowBoard(b *Board, toMove Color)
	Reject(err error)
	Announce(o Outcome)
}

// Game alternates the players over one board. It is not safe for concurrent
// use.
type Game struct {
	board   *Board
	toMove  Color
	status  Status
	outcome Outcome
	history []Ply
}

func NewGame(opts ...BoardOption) *Game {
	return NewGameFromBoard(NewBoard(opts...), White)
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(b *Board, toMove Color) *Game {
	g := &Game{
		board:   b,
		toMove:  toMove,
		status:  StatusAwaitingMove,
		history: make([]Ply, 0),
	}
	g.evaluateTermination(toMove)
	return g
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) ToMove() Color { return g.toMove }

func (g *Game) Status() Status { return g.status }

func (g *Game) Outcome() Outcome { return g.outcome }

func (g *Game) IsCheck() bool { return g.board.IsInCheck(g.toMove) }

func (g *Game) History() []Ply {
	return append([]Ply(nil), g.history...)
}

// FullMove is the FEN full-move counter for the current position.
func (g *Game) FullMove() int {
	return len(g.history)/2 + 1
}

// Submit plays one turn for the side to move. On error nothing changes.
func (g *Game) Submit(req MoveRequest) (Move, error) {
	if g.status.Terminal() {
		return Move{}, ErrGameOver
	}
	if !req.From.InBounds() || !req.To.InBounds() {
		return Move{}, fmt.Errorf("%w: squares must be within 0-7", ErrMalformedInput)
	}

	piece := g.board.Get(req.From.Row, req.From.Col)
	if piece == nil {
		return Move{}, fmt.Errorf("%w: no piece at %s", ErrInvalidSelection, req.From)
	}
	if piece.Color != g.toMove {
		return Move{}, fmt.Errorf("%w: piece at %s belongs to %s", ErrInvalidSelection, req.From, piece.Color)
	}

	move := Move{Piece: piece, DestRow: req.To.Row, DestCol: req.To.Col}
	if !g.board.IsValidMove(piece, move.DestRow, move.DestCol) {
		return Move{}, fmt.Errorf("%w: %s cannot reach %s", ErrInvalidMove, piece.Kind, req.To)
	}
	if g.board.LeavesKingInCheck(piece, move.DestRow, move.DestCol) {
		return Move{}, fmt.Errorf("%w: %s to %s leaves the king in check", ErrInvalidMove, piece.Kind, req.To)
	}

	captured := g.board.ApplyMove(piece, move.DestRow, move.DestCol)
	g.history = append(g.history, newPly(piece, req.From, captured))
	g.status = StatusMoveApplied

	if !g.evaluateTermination(g.toMove.Opponent()) {
		g.toMove = g.toMove.Opponent()
		g.status = StatusAwaitingMove
	}
	return move, nil
}

// evaluateTermination looks at both sides, not only the one about to move.
// A side to move that is not in check but whose every valid move would leave
// its king in check has nothing Submit accepts, so that is a stalemate too.
func (g *Game) evaluateTermination(next Color) bool {
	switch {
	case g.board.IsCheckmate(White):
		g.outcome = Outcome{Status: StatusCheckmate, Winner: Black}
	case g.board.IsCheckmate(Black):
		g.outcome = Outcome{Status: StatusCheckmate, Winner: White}
	case g.board.IsStalemate(White), g.board.IsStalemate(Black):
		g.outcome = Outcome{Status: StatusStalemate}
	case len(g.board.LegalMoves(next)) == 0:
		g.outcome = Outcome{Status: StatusStalemate}
	default:
		g.outcome = Outcome{Status: StatusAwaitingMove}
		return false
	}
	g.status = g.outcome.Status
	return true
}

// Play runs turns until the game ends, the source fails or ctx is done.
func (g *Game) Play(ctx context.Context, src MoveSource, disp Display) (Outcome, error) {
	disp.ShowBoard(g.board, g.toMove)
	for !g.status.Terminal() {
		if err := ctx.Err(); err != nil {
			return g.outcome, err
		}
		req, err := src.NextMove(ctx, g.toMove)
		if err != nil {
			if errors.Is(err, ErrMalformedInput) {
				disp.Reject(err)
				continue
			}
			return g.outcome, err
		}
		if _, err := g.Submit(req); err != nil {
			if IsRecoverable(err) {
				disp.Reject(err)
				continue
			}
			return g.outcome, err
		}
		disp.ShowBoard(g.board, g.toMove)
	}
	disp.Announce(g.outcome)
	return g.outcome, nil
}
