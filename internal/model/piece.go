package model

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	}
	return "UNKNOWN"
}

// MarshalText keeps the lowercase names the web client already uses.
func (c Color) MarshalText() ([]byte, error) {
	switch c {
	case White:
		return []byte("white"), nil
	case Black:
		return []byte("black"), nil
	}
	return nil, ErrUnknownColor
}

type PieceKind string

func (k PieceKind) getPieceNotation() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

type Piece struct {
	Kind  PieceKind `json:"type"`
	Color Color     `json:"color"`
	Row   int       `json:"row"`
	Col   int       `json:"col"`
}

func NewPiece(kind PieceKind, color Color, row, col int) *Piece {
	return &Piece{Kind: kind, Color: color, Row: row, Col: col}
}

// Symbol is the FEN letter for the piece: uppercase for white, lowercase for black.
func (p *Piece) Symbol() string {
	s := p.Kind.getPieceNotation()
	if p.Color == Black {
		return string(s[0] + ('a' - 'A'))
	}
	return s
}

// CanMove reports whether the piece's movement pattern reaches (row, col).
// Occupancy of the destination is the board's concern, except for the pawn's
// diagonal capture which needs an occupied destination.
func (p *Piece) CanMove(b *Board, row, col int) bool {
	dr := row - p.Row
	dc := col - p.Col
	adr, adc := abs(dr), abs(dc)

	// Standing still matches the queen, rook and bishop patterns. IsValidMove
	// never offers it since the piece occupies its own square.
	switch p.Kind {
	case King:
		return max(adr, adc) == 1
	case Queen:
		return (adr == adc || dr == 0 || dc == 0) && b.pathClear(p.Row, p.Col, row, col)
	case Rook:
		return (dr == 0 || dc == 0) && b.pathClear(p.Row, p.Col, row, col)
	case Bishop:
		return adr == adc && b.pathClear(p.Row, p.Col, row, col)
	case Knight:
		return (adr == 2 && adc == 1) || (adr == 1 && adc == 2)
	case Pawn:
		return p.canPawnMove(b, dr, adc, row, col)
	}
	return false
}

func (p *Piece) canPawnMove(b *Board, dr, adc, row, col int) bool {
	forward, home := 1, 1
	if p.Color == Black {
		forward, home = -1, 6
	}
	switch {
	case dr == forward && adc == 0:
		return !b.PathBlocking() || b.Get(row, col) == nil
	case p.Row == home && dr == 2*forward && adc == 0:
		return b.pathClear(p.Row, p.Col, row, col) && (!b.PathBlocking() || b.Get(row, col) == nil)
	case dr == forward && adc == 1:
		return b.Get(row, col) != nil
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
