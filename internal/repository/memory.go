package repository

import (
	"context"
	"sync"

	"xogame/internal/entity"
)

// The memory repositories back the default "memory" storage driver, so the
// game runs without a Redis nearby. They satisfy the same interfaces as the
// Redis-backed ones; the data dies with the process.

type memoryGame struct {
	mu      sync.Mutex
	games   map[string]entity.Game
	current string
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return &entity.Game{}, ErrGameNotFound
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.games, id)

	return nil
}

func (that *memoryGame) SetCurrent(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.current = id

	return nil
}

func (that *memoryGame) GetCurrent(_ context.Context) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.current == "" {
		return "", ErrGameNotFound
	}

	return that.current, nil
}

type memoryPlayer struct {
	mu      sync.Mutex
	players map[string]entity.Player
}

func NewMemoryPlayerRepository() PlayerRepository {
	return &memoryPlayer{
		players: make(map[string]entity.Player),
	}
}

func (that *memoryPlayer) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.players[player.ID] = *player

	return nil
}

func (that *memoryPlayer) GetByID(_ context.Context, id string) (*entity.Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player, ok := that.players[id]
	if !ok {
		return &entity.Player{}, ErrPlayerNotFound
	}

	return &player, nil
}
