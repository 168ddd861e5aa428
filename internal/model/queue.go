package model

import (
	"errors"
	"sync"
	"time"
)

var ErrAlreadyQueued = errors.New("player already in queue")

type QueuedPlayer struct {
	PlayerID string
	JoinedAt time.Time
}

// Queue holds players waiting for an opponent, oldest first.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
	now     func() time.Time
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
		now:     time.Now,
	}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return ErrAlreadyQueued
		}
	}

	q.players = append(q.players, QueuedPlayer{
		PlayerID: playerID,
		JoinedAt: q.now(),
	})
	return nil
}

// GetNextPair pops the two players who have waited longest.
func (q *Queue) GetNextPair() (QueuedPlayer, QueuedPlayer, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return QueuedPlayer{}, QueuedPlayer{}, false
	}
	first, second := q.players[0], q.players[1]
	q.players = q.players[2:]
	return first, second, true
}

func (q *Queue) Contains(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
