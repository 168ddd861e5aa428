package model

import (
	"fmt"
	"strings"
)

// Placement returns the piece-placement field of a FEN record.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := boardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < boardSize; col++ {
			p := b.cells[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN returns a full FEN record. Castling and en passant are not modelled so
// those fields are always "-".
func (b *Board) FEN(toMove Color, fullMove int) string {
	side := "w"
	if toMove == Black {
		side = "b"
	}
	if fullMove < 1 {
		fullMove = 1
	}
	return fmt.Sprintf("%s %s - - 0 %d", b.Placement(), side, fullMove)
}
