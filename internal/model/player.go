package model

// Player is a seat in a hosted game, keyed by the id the client sends in
// X-Player-ID.
type Player struct {
	ID    string
	Color Color
}

type ClientPlayer struct {
	ID     string `json:"name"`
	Color  Color  `json:"color"`
	Joined bool   `json:"joined"`
}
