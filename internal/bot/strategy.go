package bot

import (
	"errors"
	"fmt"
	"math/rand"

	"xogame/internal/entity"
)

const (
	DifficultyEasy       = "easy"
	DifficultyNormal     = "normal"
	DifficultyImpossible = "impossible"
)

var (
	ErrBotNotFound       = errors.New("bot player not found")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Strategy - picks a cell for the bot's mark on the given game.
type Strategy interface {
	ChooseCell(game *entity.Game, mark string) (int, error)
}

// ForDifficulty - returns the strategy behind a difficulty name.
func ForDifficulty(difficulty string) (Strategy, error) {
	switch difficulty {
	case DifficultyEasy:
		return &randomStrategy{}, nil
	case DifficultyNormal:
		return &normalStrategy{}, nil
	case DifficultyImpossible:
		return &minimaxStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}

// randomStrategy - uniform choice over the empty cells.
type randomStrategy struct{}

func (that *randomStrategy) ChooseCell(game *entity.Game, _ string) (int, error) {
	availableCells := game.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return availableCells[rand.Intn(len(availableCells))], nil //nolint:gosec // gameplay randomness
}
