package repository

import (
	"context"
	"database/sql"
	"fmt"

	"xogame/internal/entity"
)

type ScoreRepository interface {
	SaveSeries(ctx context.Context, series *entity.Series) error
	RecentSeries(ctx context.Context, limit int) ([]*entity.Series, error)
}

type dbScore struct {
	conn *sql.DB
}

func NewScoreRepository(conn *sql.DB) ScoreRepository {
	return &dbScore{
		conn: conn,
	}
}

func (that *dbScore) SaveSeries(ctx context.Context, series *entity.Series) error {
	query := `INSERT INTO series
		(game_id, champion, runner_up, champion_wins, runner_up_wins, rounds, game_type, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		series.GameID,
		series.Champion,
		series.RunnerUp,
		series.ChampionWins,
		series.RunnerUpWins,
		series.Rounds,
		series.Type,
		series.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save series: %w", err)
	}

	return nil
}

func (that *dbScore) RecentSeries(ctx context.Context, limit int) ([]*entity.Series, error) {
	query := `SELECT game_id, champion, runner_up, champion_wins, runner_up_wins, rounds, game_type, finished_at
		FROM series ORDER BY finished_at DESC, id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}
	defer rows.Close()

	var result []*entity.Series
	for rows.Next() {
		series := &entity.Series{}
		if err = rows.Scan(
			&series.GameID,
			&series.Champion,
			&series.RunnerUp,
			&series.ChampionWins,
			&series.RunnerUpWins,
			&series.Rounds,
			&series.Type,
			&series.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan series: %w", err)
		}

		result = append(result, series)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate series: %w", err)
	}

	return result, nil
}
