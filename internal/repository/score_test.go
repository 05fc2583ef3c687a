package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xogame/internal/entity"
	"xogame/internal/repository/storage"
)

func newScoreRepo(t *testing.T) (context.Context, ScoreRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	require.NoError(t, sqliteStorage.Init(ctx))

	return ctx, NewScoreRepository(sqliteStorage.Connection)
}

func TestScoreRepository_SaveSeries(t *testing.T) {
	ctx, scoreRepo := newScoreRepo(t)

	// Given: a finished series
	series := &entity.Series{
		GameID:       "123",
		Champion:     "Alex",
		RunnerUp:     "Computer",
		ChampionWins: 3,
		RunnerUpWins: 1,
		Rounds:       5,
		Type:         entity.VsBotType,
		FinishedAt:   time.Now().UTC(),
	}

	// When: SaveSeries is called
	err := scoreRepo.SaveSeries(ctx, series)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestScoreRepository_RecentSeries(t *testing.T) {
	t.Run("Returns newest series first, capped by limit", func(t *testing.T) {
		ctx, scoreRepo := newScoreRepo(t)

		// Given: three archived series finished an hour apart
		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		for i, champion := range []string{"Alex", "Kim", "Sam"} {
			series := &entity.Series{
				GameID:       "g" + champion,
				Champion:     champion,
				RunnerUp:     "Computer",
				ChampionWins: 3,
				Rounds:       3,
				Type:         entity.VsBotType,
				FinishedAt:   base.Add(time.Duration(i) * time.Hour),
			}
			require.NoError(t, scoreRepo.SaveSeries(ctx, series))
		}

		// When: asking for the two most recent
		recent, err := scoreRepo.RecentSeries(ctx, 2)

		// Then: the two newest come back, newest first
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "Sam", recent[0].Champion)
		assert.Equal(t, "Kim", recent[1].Champion)
	})

	t.Run("Returns nothing from an empty archive", func(t *testing.T) {
		ctx, scoreRepo := newScoreRepo(t)

		// When: asking for recent series
		recent, err := scoreRepo.RecentSeries(ctx, 10)

		// Then: the result is empty and no error is returned
		require.NoError(t, err)
		assert.Empty(t, recent)
	})
}
