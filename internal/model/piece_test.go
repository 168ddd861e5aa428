package model

import (
	"fmt"
	"testing"
)

func expectedPattern(kind PieceKind, color Color, row, dr, dc int, occupied bool) bool {
	adr, adc := abs(dr), abs(dc)
	switch kind {
	case King:
		return max(adr, adc) == 1
	case Queen:
		return adr == adc || dr == 0 || dc == 0
	case Rook:
		return dr == 0 || dc == 0
	case Bishop:
		return adr == adc
	case Knight:
		return (adr == 2 && adc == 1) || (adr == 1 && adc == 2)
	case Pawn:
		forward, home := 1, 1
		if color == Black {
			forward, home = -1, 6
		}
		return (dr == forward && dc == 0) ||
			(row == home && dr == 2*forward && dc == 0) ||
			(dr == forward && adc == 1 && occupied)
	}
	return false
}

func TestCanMovePatternTable(t *testing.T) {
	kinds := []PieceKind{King, Queen, Rook, Bishop, Knight, Pawn}
	origins := []struct {
		color Color
		row   int
		col   int
	}{
		{White, 1, 3},
		{White, 4, 4},
		{Black, 6, 3},
		{Black, 3, 4},
	}

	for _, kind := range kinds {
		for _, origin := range origins {
			name := fmt.Sprintf("%s/%s/%d,%d", kind, origin.color, origin.row, origin.col)
			t.Run(name, func(t *testing.T) {
				b := NewEmptyBoard()
				p := NewPiece(kind, origin.color, origin.row, origin.col)
				b.Place(p)
				for dr := -7; dr <= 7; dr++ {
					for dc := -7; dc <= 7; dc++ {
						want := expectedPattern(kind, origin.color, origin.row, dr, dc, false)
						if got := p.CanMove(b, origin.row+dr, origin.col+dc); got != want {
							t.Errorf("delta (%d,%d): got %v, want %v", dr, dc, got, want)
						}
					}
				}
			})
		}
	}
}

func TestPawnDiagonalNeedsOccupiedDestination(t *testing.T) {
	tests := []struct {
		name   string
		pawn   *Piece
		target Square
	}{
		{"white capture left", NewPiece(Pawn, White, 3, 3), Square{Row: 4, Col: 2}},
		{"white capture right", NewPiece(Pawn, White, 3, 3), Square{Row: 4, Col: 4}},
		{"black capture left", NewPiece(Pawn, Black, 4, 3), Square{Row: 3, Col: 2}},
		{"black capture right", NewPiece(Pawn, Black, 4, 3), Square{Row: 3, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEmptyBoard()
			b.Place(tt.pawn)
			if tt.pawn.CanMove(b, tt.target.Row, tt.target.Col) {
				t.Fatalf("diagonal onto empty %s should not be a pattern move", tt.target)
			}
			b.Place(NewPiece(Knight, tt.pawn.Color.Opponent(), tt.target.Row, tt.target.Col))
			if !tt.pawn.CanMove(b, tt.target.Row, tt.target.Col) {
				t.Fatalf("diagonal onto occupied %s should be a pattern move", tt.target)
			}
		})
	}
}

func TestSlidersIgnoreObstructionByDefault(t *testing.T) {
	b := NewBoard()
	rook := b.Get(0, 0)
	if !rook.CanMove(b, 5, 0) {
		t.Fatalf("rook a1 should reach a6 through its own pawn without path blocking")
	}
	bishop := b.Get(0, 2)
	if !bishop.CanMove(b, 5, 7) {
		t.Fatalf("bishop c1 should reach h6 through its own pawn without path blocking")
	}
}

func TestPathBlocking(t *testing.T) {
	b := NewBoard(WithPathBlocking())
	tests := []struct {
		name string
		from Square
		to   Square
		want bool
	}{
		{"rook behind pawn", Square{0, 0}, Square{5, 0}, false},
		{"bishop behind pawn", Square{0, 2}, Square{5, 7}, false},
		{"queen behind pawn", Square{0, 3}, Square{4, 3}, false},
		{"knight jumps", Square{0, 1}, Square{2, 2}, true},
		{"pawn double step", Square{1, 4}, Square{3, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := b.Get(tt.from.Row, tt.from.Col)
			if got := p.CanMove(b, tt.to.Row, tt.to.Col); got != tt.want {
				t.Fatalf("CanMove %s->%s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}

	t.Run("pawn double step through a piece", func(t *testing.T) {
		b := NewBoard(WithPathBlocking())
		b.Place(NewPiece(Knight, Black, 2, 4))
		if b.Get(1, 4).CanMove(b, 3, 4) {
			t.Fatalf("pawn e2 should not jump over e3")
		}
	})
}

func TestPieceSymbol(t *testing.T) {
	if got := NewPiece(Knight, White, 0, 0).Symbol(); got != "N" {
		t.Fatalf("white knight symbol = %q", got)
	}
	if got := NewPiece(Queen, Black, 0, 0).Symbol(); got != "q" {
		t.Fatalf("black queen symbol = %q", got)
	}
	if got := NewPiece(Pawn, Black, 0, 0).Symbol(); got != "p" {
		t.Fatalf("black pawn symbol = %q", got)
	}
}

func TestZeroDisplacement(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want bool
	}{
		{King, false},
		{Queen, true},
		{Rook, true},
		{Bishop, true},
		{Knight, false},
		{Pawn, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			for _, opts := range [][]BoardOption{nil, {WithPathBlocking()}} {
				b := NewEmptyBoard(opts...)
				p := NewPiece(tt.kind, White, 3, 3)
				b.Place(p)
				if got := p.CanMove(b, 3, 3); got != tt.want {
					t.Fatalf("CanMove onto own square = %v, want %v", got, tt.want)
				}
				if b.IsValidMove(p, 3, 3) {
					t.Fatalf("IsValidMove onto own square should be false")
				}
			}
		})
	}
}
