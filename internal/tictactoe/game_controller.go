package tictactoe

import (
	"fmt"

	"xogame/internal/apperror"
	"xogame/internal/entity"
)

// MakeTurn - places the player's mark on the given cell. A rejected turn
// leaves the game exactly as it was.
func MakeTurn(gameInstance *entity.Game, player string, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = player
	updateGameStatus(gameInstance, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, playerTurn string, cell int) error {
	if cell < 0 || cell >= len(gameInstance.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Turn != playerTurn {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player string) {
	switch winner := entity.CheckBoardWinner(gameInstance.Board); winner {
	case entity.PlayerX, entity.PlayerO:
		gameInstance.Winner = winner
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.EmptyCell
	case entity.PlayerTie:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.EmptyCell
	default:
		gameInstance.Turn = ToggleMark(player)
	}
}

func ToggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
