package bot

import (
	"math/rand"

	"xogame/internal/entity"
	"xogame/internal/tictactoe"
)

const winScore = 10

// openingCells - center and corners, the only opening moves that do not
// concede an advantage.
var openingCells = []int{4, 0, 2, 6, 8}

// minimaxStrategy - plays the full minimax line from the first move and
// therefore never loses.
type minimaxStrategy struct{}

func (that *minimaxStrategy) ChooseCell(game *entity.Game, mark string) (int, error) {
	if len(game.EmptyCells()) == 0 {
		return 0, ErrNoAvailableMoves
	}

	board := game.Board
	_, cell := search(&board, mark, tictactoe.ToggleMark(mark), true)

	return cell, nil
}

// normalStrategy - opens on the center or a corner, then switches to minimax.
type normalStrategy struct {
	minimaxStrategy
}

func (that *normalStrategy) ChooseCell(game *entity.Game, mark string) (int, error) {
	availableCells := game.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if len(availableCells) >= 8 {
		openings := make([]int, 0, len(openingCells))
		for _, cell := range openingCells {
			if game.Board[cell] == entity.EmptyCell {
				openings = append(openings, cell)
			}
		}

		if len(openings) > 0 {
			return openings[rand.Intn(len(openings))], nil //nolint:gosec // gameplay randomness
		}
	}

	return that.minimaxStrategy.ChooseCell(game, mark)
}

// search - scores the position for the bot: +winScore for a bot win,
// -winScore for an opponent win, 0 for a tie. Probed moves are undone
// before returning, so the caller's board is never changed.
func search(board *[9]string, botMark, oppMark string, botToMove bool) (int, int) {
	switch entity.CheckBoardWinner(*board) {
	case botMark:
		return winScore, -1
	case oppMark:
		return -winScore, -1
	case entity.PlayerTie:
		return 0, -1
	}

	mark := oppMark
	bestScore := winScore + 1
	if botToMove {
		mark = botMark
		bestScore = -(winScore + 1)
	}

	bestCell := -1
	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = mark
		score, _ := search(board, botMark, oppMark, !botToMove)
		board[i] = entity.EmptyCell

		if (botToMove && score > bestScore) || (!botToMove && score < bestScore) {
			bestScore = score
			bestCell = i
		}
	}

	return bestScore, bestCell
}
