package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xogame/internal/entity"
	"xogame/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a game with ID and status
	game := &entity.Game{
		ID:     "123",
		Status: entity.StatusWaiting,
	}

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game with players and a board
		game := entity.NewGame("123", entity.VsBotType)
		game.Status = entity.StatusOngoing
		game.Board[4] = entity.PlayerX
		game.Players = []*entity.Player{
			{ID: "p1", Name: "Alex", Kind: entity.HumanKind, Mark: entity.PlayerX, GameID: "123"},
			{ID: "p2", Name: "Computer", Kind: entity.BotKind, Mark: entity.PlayerO, GameID: "123"},
		}

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored game
	game := &entity.Game{
		ID:     "123",
		Status: entity.StatusFinished,
	}

	err := gameRepo.CreateOrUpdate(ctx, game)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = gameRepo.DeleteByID(ctx, game.ID)

	// Then: no error should be returned and the game is gone
	require.NoError(t, err)

	_, err = gameRepo.GetByID(ctx, game.ID)
	require.Error(t, err)
	assert.Equal(t, ErrGameNotFound, err)
}

func TestGameRepository_Current(t *testing.T) {
	t.Run("SetCurrent and GetCurrent round-trip", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a game marked as current
		err := gameRepo.SetCurrent(ctx, "123")
		require.NoError(t, err)

		// When: GetCurrent is called
		id, err := gameRepo.GetCurrent(ctx)

		// Then: the marked ID comes back
		require.NoError(t, err)
		assert.Equal(t, "123", id)
	})

	t.Run("Clearing the marker makes GetCurrent fail", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a marker that is set and then cleared
		require.NoError(t, gameRepo.SetCurrent(ctx, "123"))
		require.NoError(t, gameRepo.SetCurrent(ctx, ""))

		// When: GetCurrent is called
		_, err := gameRepo.GetCurrent(ctx)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("GetCurrent without a marker", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetCurrent is called on a clean storage
		_, err := gameRepo.GetCurrent(ctx)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
