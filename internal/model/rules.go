package model

// IsInCheck reports whether any opposing piece's pattern reaches color's
// king. A side with no king is never in check.
func (b *Board) IsInCheck(color Color) bool {
	king := b.King(color)
	if king == nil {
		return false
	}
	for _, p := range b.Pieces(color.Opponent()) {
		if p.CanMove(b, king.Row, king.Col) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether color is in check and every valid move of
// every own piece still leaves it in check.
func (b *Board) IsCheckmate(color Color) bool {
	if b.King(color) == nil || !b.IsInCheck(color) {
		return false
	}
	for _, p := range b.Pieces(color) {
		for row := 0; row < boardSize; row++ {
			for col := 0; col < boardSize; col++ {
				if b.IsValidMove(p, row, col) && !b.LeavesKingInCheck(p, row, col) {
					return false
				}
			}
		}
	}
	return true
}

// IsStalemate reports whether color is not in check and has no valid move
// at all.
func (b *Board) IsStalemate(color Color) bool {
	if b.IsInCheck(color) {
		return false
	}
	for _, p := range b.Pieces(color) {
		for row := 0; row < boardSize; row++ {
			for col := 0; col < boardSize; col++ {
				if b.IsValidMove(p, row, col) {
					return false
				}
			}
		}
	}
	return true
}

// LeavesKingInCheck plays p to (row, col) on the board, tests the mover's
// king and takes the move back. The board is restored on every return path.
func (b *Board) LeavesKingInCheck(p *Piece, row, col int) bool {
	rec := b.tryMove(p, row, col)
	defer b.undo(rec)
	return b.IsInCheck(p.Color)
}

// LegalMoves lists the valid moves of color that do not leave its own king
// in check, in row-major order of piece then destination.
func (b *Board) LegalMoves(color Color) []Move {
	moves := []Move{}
	for _, p := range b.Pieces(color) {
		for row := 0; row < boardSize; row++ {
			for col := 0; col < boardSize; col++ {
				if b.IsValidMove(p, row, col) && !b.LeavesKingInCheck(p, row, col) {
					moves = append(moves, Move{Piece: p, DestRow: row, DestCol: col})
				}
			}
		}
	}
	return moves
}
