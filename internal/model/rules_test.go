package model

import (
	"testing"
)

var foolsMate = []MoveRequest{
	{From: Square{Row: 1, Col: 5}, To: Square{Row: 2, Col: 5}}, // f2f3
	{From: Square{Row: 6, Col: 4}, To: Square{Row: 4, Col: 4}}, // e7e5
	{From: Square{Row: 1, Col: 6}, To: Square{Row: 3, Col: 6}}, // g2g4
	{From: Square{Row: 7, Col: 3}, To: Square{Row: 3, Col: 7}}, // d8h4
}

func playOnBoard(t *testing.T, b *Board, moves []MoveRequest) {
	t.Helper()
	for _, m := range moves {
		p := b.Get(m.From.Row, m.From.Col)
		if !b.IsValidMove(p, m.To.Row, m.To.Col) {
			t.Fatalf("%s%s is not a valid move", m.From, m.To)
		}
		b.ApplyMove(p, m.To.Row, m.To.Col)
	}
}

// boxedKing has the white king on d7 walled in by its own pawns, none of
// which can move, and a distant black king.
func boxedKing(opts ...BoardOption) *Board {
	b := NewEmptyBoard(opts...)
	b.Place(NewPiece(King, White, 6, 3))
	for _, sq := range []Square{{7, 2}, {7, 3}, {7, 4}, {6, 2}, {6, 4}, {5, 2}, {5, 3}, {5, 4}} {
		b.Place(NewPiece(Pawn, White, sq.Row, sq.Col))
	}
	b.Place(NewPiece(King, Black, 0, 7))
	return b
}

func TestFoolsMateWithPathBlocking(t *testing.T) {
	b := NewBoard(WithPathBlocking())
	playOnBoard(t, b, foolsMate)

	if !b.IsInCheck(White) {
		t.Fatalf("expected White to be in check")
	}
	if !b.IsCheckmate(White) {
		t.Fatalf("expected checkmate for White")
	}
	if b.IsCheckmate(Black) {
		t.Fatalf("Black is not mated")
	}
	if b.IsStalemate(White) {
		t.Fatalf("mate is not stalemate")
	}
	if n := len(b.LegalMoves(White)); n != 0 {
		t.Fatalf("White has %d legal moves in a mate", n)
	}
}

func TestFoolsMatePatternOnly(t *testing.T) {
	b := NewBoard()
	playOnBoard(t, b, foolsMate)

	if !b.IsInCheck(White) {
		t.Fatalf("expected White to be in check")
	}
	// Without obstruction the h1 rook reaches h4 through its own pawn.
	if b.IsCheckmate(White) {
		t.Fatalf("pattern-only rules let Rxh4 escape, expected no mate")
	}
	rook := b.Get(0, 7)
	if !b.IsValidMove(rook, 3, 7) || b.LeavesKingInCheck(rook, 3, 7) {
		t.Fatalf("expected Rh1xh4 to resolve the check")
	}
	if b.IsCheckmate(Black) {
		t.Fatalf("Black is not mated")
	}
}

func TestBoxedKingIsStalemate(t *testing.T) {
	for name, opts := range map[string][]BoardOption{
		"pattern only":  nil,
		"path blocking": {WithPathBlocking()},
	} {
		t.Run(name, func(t *testing.T) {
			b := boxedKing(opts...)
			if b.IsInCheck(White) {
				t.Fatalf("boxed king is not in check")
			}
			if b.IsCheckmate(White) {
				t.Fatalf("boxed king is not mated")
			}
			if !b.IsStalemate(White) {
				t.Fatalf("expected stalemate for White")
			}
			if b.IsStalemate(Black) {
				t.Fatalf("black king can move, no stalemate")
			}
		})
	}
}

func TestLoneKingHasMoves(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(NewPiece(King, White, 3, 3))

	if b.IsInCheck(White) || b.IsCheckmate(White) {
		t.Fatalf("lone king is neither in check nor mated")
	}
	if b.IsStalemate(White) {
		t.Fatalf("lone king on an empty board has moves")
	}
}

func TestMissingKing(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(NewPiece(Rook, Black, 0, 0))
	b.Place(NewPiece(Rook, White, 7, 7))

	if b.IsInCheck(White) {
		t.Fatalf("no king means no check")
	}
	if b.IsCheckmate(White) {
		t.Fatalf("no king means no checkmate")
	}
}

func TestDuplicateKingsUseFirstInRowMajorOrder(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(NewPiece(King, White, 0, 0))
	b.Place(NewPiece(King, White, 5, 5))
	b.Place(NewPiece(Rook, Black, 5, 7))

	// Only the king on 0,0 is considered; the rook attacks the other one.
	if b.IsInCheck(White) {
		t.Fatalf("expected the first king found to decide check")
	}
	if got := b.King(White); got.Row != 0 || got.Col != 0 {
		t.Fatalf("King() = %d,%d, want 0,0", got.Row, got.Col)
	}
}

func TestCheckmateIsSimpleBackRankMate(t *testing.T) {
	b := NewEmptyBoard(WithPathBlocking())
	b.Place(NewPiece(King, Black, 7, 6))
	b.Place(NewPiece(Pawn, Black, 6, 5))
	b.Place(NewPiece(Pawn, Black, 6, 6))
	b.Place(NewPiece(Pawn, Black, 6, 7))
	b.Place(NewPiece(Rook, White, 7, 0))
	b.Place(NewPiece(King, White, 0, 6))

	if !b.IsCheckmate(Black) {
		t.Fatalf("expected back rank mate")
	}

	// A defender that can capture the rook breaks the mate.
	b.Place(NewPiece(Rook, Black, 2, 0))
	if b.IsCheckmate(Black) {
		t.Fatalf("Rxa8 is available, expected no mate")
	}
}

func TestEvaluatorIsIdempotent(t *testing.T) {
	b := NewBoard(WithPathBlocking())
	playOnBoard(t, b, foolsMate)
	cellsBefore, _ := snapshot(b)

	for _, color := range []Color{White, Black} {
		check1, mate1, stale1 := b.IsInCheck(color), b.IsCheckmate(color), b.IsStalemate(color)
		check2, mate2, stale2 := b.IsInCheck(color), b.IsCheckmate(color), b.IsStalemate(color)
		if check1 != check2 || mate1 != mate2 || stale1 != stale2 {
			t.Fatalf("%s: evaluator answers changed between calls", color)
		}
		b.LegalMoves(color)
	}

	if cellsAfter, _ := snapshot(b); cellsAfter != cellsBefore {
		t.Fatalf("evaluator calls changed the board")
	}
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.Get(row, col); p != nil && (p.Row != row || p.Col != col) {
				t.Fatalf("piece at %d,%d records %d,%d", row, col, p.Row, p.Col)
			}
		}
	}
}

func TestLegalMovesStartingPosition(t *testing.T) {
	b := NewBoard(WithPathBlocking())
	if got := len(b.LegalMoves(White)); got != 20 {
		t.Fatalf("White has %d legal moves at the start, want 20", got)
	}
	if got := len(b.LegalMoves(Black)); got != 20 {
		t.Fatalf("Black has %d legal moves at the start, want 20", got)
	}
}
