package service

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameExists       = errors.New("game already exists")
	ErrGameFull         = errors.New("game is full")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrPlayerNotInGame  = errors.New("player not in game")
	ErrConnectionExists = errors.New("connection already exists")
)
