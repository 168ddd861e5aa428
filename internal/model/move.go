package model

import "fmt"

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) InBounds() bool {
	return inBounds(s.Row, s.Col)
}

// String renders the square in algebraic form, e.g. row 0 col 4 is "e1".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}

// MoveRequest is what a move source hands the coordinator: the four
// coordinates typed or sent by a player.
type MoveRequest struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

type Move struct {
	Piece   *Piece
	DestRow int
	DestCol int
}

func (m Move) Dest() Square {
	return Square{Row: m.DestRow, Col: m.DestCol}
}

// Ply is a committed move as recorded in the game history.
type Ply struct {
	Color         Color     `json:"color"`
	Piece         PieceKind `json:"piece"`
	From          Square    `json:"from"`
	To            Square    `json:"to"`
	CapturedPiece *Piece    `json:"capturedPiece"`
	Notation      string    `json:"notation"`
}

func newPly(p *Piece, from Square, captured *Piece) Ply {
	ply := Ply{
		Color: p.Color,
		Piece: p.Kind,
		From:  from,
		To:    Square{Row: p.Row, Col: p.Col},
	}
	if captured != nil {
		cp := *captured
		ply.CapturedPiece = &cp
	}
	ply.Notation = ply.notation()
	return ply
}

func (p Ply) notation() string {
	prefix := p.Piece.getPieceNotation()
	if p.Piece == Pawn {
		prefix = ""
	}
	capture := ""
	if p.CapturedPiece != nil {
		capture = "x"
		if p.Piece == Pawn {
			prefix = fmt.Sprintf("%c", 'a'+p.From.Col)
		}
	}
	return fmt.Sprintf("%s%s%s", prefix, capture, p.To)
}

// undoRecord is everything needed to take back one ApplyMove.
type undoRecord struct {
	piece    *Piece
	fromRow  int
	fromCol  int
	captured *Piece
}

// tryMove applies a speculative move. The returned record must be passed to
// undo, normally with defer, before the board is used again.
func (b *Board) tryMove(p *Piece, row, col int) undoRecord {
	rec := undoRecord{piece: p, fromRow: p.Row, fromCol: p.Col}
	rec.captured = b.ApplyMove(p, row, col)
	return rec
}

func (b *Board) undo(rec undoRecord) {
	row, col := rec.piece.Row, rec.piece.Col
	b.cells[row][col] = rec.captured
	if rec.captured != nil {
		rec.captured.Row, rec.captured.Col = row, col
	}
	b.cells[rec.fromRow][rec.fromCol] = rec.piece
	rec.piece.Row, rec.piece.Col = rec.fromRow, rec.fromCol
}
