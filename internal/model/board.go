package model

import "strings"

const boardSize = 8

type Board struct {
	cells        [boardSize][boardSize]*Piece
	pathBlocking bool
}

type BoardOption func(*Board)

// WithPathBlocking makes rooks, bishops, queens and the pawn double step
// require every square between source and destination to be empty, and stops
// pawns pushing onto an occupied square.
func WithPathBlocking() BoardOption {
	return func(b *Board) {
		b.pathBlocking = true
	}
}

func NewEmptyBoard(opts ...BoardOption) *Board {
	b := &Board{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var backRank = [boardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position. Row 0 is White's home rank.
func NewBoard(opts ...BoardOption) *Board {
	b := NewEmptyBoard(opts...)
	for col, kind := range backRank {
		b.Place(NewPiece(kind, White, 0, col))
		b.Place(NewPiece(Pawn, White, 1, col))
		b.Place(NewPiece(Pawn, Black, 6, col))
		b.Place(NewPiece(kind, Black, 7, col))
	}
	return b
}

func (b *Board) PathBlocking() bool {
	return b != nil && b.pathBlocking
}

func inBounds(row, col int) bool {
	return row >= 0 && row < boardSize && col >= 0 && col < boardSize
}

func (b *Board) Get(row, col int) *Piece {
	if b == nil || !inBounds(row, col) {
		return nil
	}
	return b.cells[row][col]
}

// Set writes a cell without touching the piece's own Row/Col.
func (b *Board) Set(row, col int, p *Piece) {
	if !inBounds(row, col) {
		return
	}
	b.cells[row][col] = p
}

func (b *Board) Place(p *Piece) {
	b.Set(p.Row, p.Col, p)
}

// IsValidMove checks the destination's occupant and the piece's pattern. It
// does not look at whether the mover's king is left in check.
func (b *Board) IsValidMove(p *Piece, row, col int) bool {
	if p == nil || !inBounds(row, col) {
		return false
	}
	if dest := b.cells[row][col]; dest != nil && dest.Color == p.Color {
		return false
	}
	return p.CanMove(b, row, col)
}

// ApplyMove moves p to (row, col) without validation and returns whatever
// piece was captured there.
func (b *Board) ApplyMove(p *Piece, row, col int) *Piece {
	captured := b.cells[row][col]
	b.cells[p.Row][p.Col] = nil
	b.cells[row][col] = p
	p.Row, p.Col = row, col
	return captured
}

func (b *Board) pathClear(fromRow, fromCol, toRow, toCol int) bool {
	if !b.PathBlocking() {
		return true
	}
	stepR, stepC := sign(toRow-fromRow), sign(toCol-fromCol)
	r, c := fromRow+stepR, fromCol+stepC
	for r != toRow || c != toCol {
		if b.cells[r][c] != nil {
			return false
		}
		r, c = r+stepR, c+stepC
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Pieces lists the pieces of one colour in row-major order.
func (b *Board) Pieces(color Color) []*Piece {
	pieces := []*Piece{}
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.cells[row][col]; p != nil && p.Color == color {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// King returns the first king of color in row-major order, or nil. A board
// with two kings of one colour is malformed and only the first is seen.
func (b *Board) King(color Color) *Piece {
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.cells[row][col]; p != nil && p.Kind == King && p.Color == color {
				return p
			}
		}
	}
	return nil
}

// Clone deep-copies the board, pieces included.
func (b *Board) Clone() *Board {
	clone := &Board{pathBlocking: b.pathBlocking}
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.cells[row][col]; p != nil {
				cp := *p
				clone.cells[row][col] = &cp
			}
		}
	}
	return clone
}

// Grid returns row-indexed copies of the cells for serialisation.
func (b *Board) Grid() [][]*Piece {
	grid := make([][]*Piece, 0, boardSize)
	for row := 0; row < boardSize; row++ {
		line := make([]*Piece, boardSize)
		for col := 0; col < boardSize; col++ {
			if p := b.cells[row][col]; p != nil {
				cp := *p
				line[col] = &cp
			}
		}
		grid = append(grid, line)
	}
	return grid
}

// String draws the board with Black's home rank on top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := boardSize - 1; row >= 0; row-- {
		sb.WriteByte(byte('0' + row))
		for col := 0; col < boardSize; col++ {
			sb.WriteByte(' ')
			if p := b.cells[row][col]; p != nil {
				sb.WriteString(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	return sb.String()
}
