package model

// GameState is the serialisable view of a game sent to web clients.
type GameState struct {
	Board       [][]*Piece    `json:"board"`
	ToMove      Color         `json:"toMove"`
	Status      Status        `json:"status"`
	Winner      *Color        `json:"winner"` // nil unless checkmate
	Result      string        `json:"result"`
	IsCheck     bool          `json:"isCheck"`
	FEN         string        `json:"fen"`
	LegalMoves  []MoveRequest `json:"legalMoves"`
	LastMove    *MoveRequest  `json:"lastMove"`
	MoveHistory []Ply         `json:"moveHistory"`
	Players     struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// Snapshot copies everything a client needs; the result shares no memory
// with the game.
func (g *Game) Snapshot() GameState {
	state := GameState{
		Board:       g.board.Grid(),
		ToMove:      g.toMove,
		Status:      g.status,
		Result:      g.outcome.String(),
		IsCheck:     g.IsCheck(),
		FEN:         g.board.FEN(g.toMove, g.FullMove()),
		LegalMoves:  make([]MoveRequest, 0),
		MoveHistory: g.History(),
	}
	if g.status == StatusCheckmate {
		winner := g.outcome.Winner
		state.Winner = &winner
	}
	if !g.status.Terminal() {
		for _, m := range g.board.LegalMoves(g.toMove) {
			state.LegalMoves = append(state.LegalMoves, MoveRequest{
				From: Square{Row: m.Piece.Row, Col: m.Piece.Col},
				To:   m.Dest(),
			})
		}
	}
	if n := len(g.history); n > 0 {
		last := MoveRequest{From: g.history[n-1].From, To: g.history[n-1].To}
		state.LastMove = &last
	}
	state.Players.White = ClientPlayer{Color: White}
	state.Players.Black = ClientPlayer{Color: Black}
	return state
}
