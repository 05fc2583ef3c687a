package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xogame/internal/apperror"
	"xogame/internal/entity"
)

func newOngoingGame() *entity.Game {
	game := entity.NewGame("123", entity.VsFriendType)
	game.Status = entity.StatusOngoing

	return game
}

func TestMakeTurn(t *testing.T) {
	t.Run("Successful turn switches the mark", func(t *testing.T) {
		// Given: a new ongoing game
		game := newOngoingGame()

		// When: player X takes the center
		err := MakeTurn(game, entity.PlayerX, 4)
		require.NoError(t, err)

		// Then: only the center holds X, the round continues, O is on turn
		expectedGame := &entity.Game{
			ID:     "123",
			Board:  [9]string{"", "", "", "", entity.PlayerX, "", "", "", ""},
			Turn:   entity.PlayerO,
			Winner: "",
			Status: entity.StatusOngoing,
			Type:   entity.VsFriendType,
			Round:  1,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where cell 0 is occupied by player X
		game := newOngoingGame()
		err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		snapshot := *game

		// When: player O tries to move to the same cell
		err = MakeTurn(game, entity.PlayerO, 0)

		// Then: an ErrCellOccupied error must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		require.Equal(t, &snapshot, game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where it is player X's turn
		game := newOngoingGame()
		snapshot := *game

		// When: player O tries to make a move
		err := MakeTurn(game, entity.PlayerO, 1)

		// Then: an ErrNotYourTurn error must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// Then: the game state remains unchanged
		require.Equal(t, &snapshot, game)
	})

	t.Run("Error on invalid cell index greater than range", func(t *testing.T) {
		// Given: a new ongoing game
		game := newOngoingGame()

		// When: an invalid cell index is passed
		err := MakeTurn(game, entity.PlayerX, 20)

		// Then: an ErrInvalidCell error must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on negative cell index", func(t *testing.T) {
		// Given: a new ongoing game
		game := newOngoingGame()

		// When: a negative cell index is passed
		err := MakeTurn(game, entity.PlayerX, -1)

		// Then: an ErrInvalidCell error must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move after the game finished", func(t *testing.T) {
		// Given: a game player X already won
		game := &entity.Game{
			Board:  [9]string{entity.PlayerX, entity.PlayerX, entity.PlayerX, "", entity.PlayerO, "", "", entity.PlayerO, ""},
			Status: entity.StatusFinished,
			Turn:   entity.PlayerO,
		}

		// When: player O tries to move after the game is over
		err := MakeTurn(game, entity.PlayerO, 3)

		// Then: an ErrGameFinished error must be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the round", func(t *testing.T) {
		// Given: X holds two of the top row and O is elsewhere
		game := newOngoingGame()
		game.Board = [9]string{entity.PlayerX, entity.PlayerX, "", entity.PlayerO, entity.PlayerO, "", "", "", ""}

		// When: X completes the top row
		err := MakeTurn(game, entity.PlayerX, 2)
		require.NoError(t, err)

		// Then: the round is finished with X as the winner and no one on turn
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, entity.EmptyCell, game.Turn)
	})

	t.Run("Filling the last cell without a line is a tie", func(t *testing.T) {
		// Given: eight cells played with no three-in-a-row
		game := newOngoingGame()
		game.Board = [9]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.EmptyCell,
		}

		// When: X fills the last cell
		err := MakeTurn(game, entity.PlayerX, 8)
		require.NoError(t, err)

		// Then: the round is finished as a tie
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerTie, game.Winner)
	})
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, entity.PlayerO, ToggleMark(entity.PlayerX))
	assert.Equal(t, entity.PlayerX, ToggleMark(entity.PlayerO))
}
