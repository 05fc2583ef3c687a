package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"xogame/internal/apperror"
	"xogame/internal/bot"
	"xogame/internal/entity"
	"xogame/internal/pkg"
	"xogame/internal/repository"
	"xogame/internal/tictactoe"
)

var (
	ErrNotEnoughPlayers = errors.New("not enough player names")
	ErrRoundNotFinished = errors.New("round is not finished")
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	SetCurrent(ctx context.Context, id string) error
	GetCurrent(ctx context.Context) (string, error)
}

type scoreRepo interface {
	SaveSeries(ctx context.Context, series *entity.Series) error
	RecentSeries(ctx context.Context, limit int) ([]*entity.Series, error)
}

// GameManager - drives a series of rounds: creating games, applying turns,
// asking the bot to reply, carrying the score and archiving the outcome.
type GameManager struct {
	logger *slog.Logger

	playerRepo playerRepo
	gameRepo   gameRepo
	scoreRepo  scoreRepo

	// winsTarget is the lead one side needs to take the series.
	winsTarget int
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, scoreRepo scoreRepo, winsTarget int) *GameManager {
	return &GameManager{
		logger: logger,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		scoreRepo:  scoreRepo,

		winsTarget: winsTarget,
	}
}

func (that *GameManager) WinsTarget() int {
	return that.winsTarget
}

// NewSeries - creates an ongoing game with marks drawn at random. For a
// bot game names carries the single human name; for a friend game, both.
func (that *GameManager) NewSeries(ctx context.Context, gameType, difficulty string, names []string) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID(), gameType)

	var opponent *entity.Player

	switch gameType {
	case entity.VsBotType:
		if len(names) < 1 {
			return nil, ErrNotEnoughPlayers
		}

		// fail fast on a difficulty the strategy factory does not know
		if _, err := bot.ForDifficulty(difficulty); err != nil {
			return nil, fmt.Errorf("failed to pick bot strategy: %w", err)
		}

		game.Difficulty = difficulty
		opponent = &entity.Player{
			ID:   pkg.GeneratePlayerID(),
			Name: BotName(difficulty),
			Kind: entity.BotKind,
		}
	case entity.VsFriendType:
		if len(names) < 2 {
			return nil, ErrNotEnoughPlayers
		}

		opponent = &entity.Player{
			ID:   pkg.GeneratePlayerID(),
			Name: names[1],
			Kind: entity.HumanKind,
		}
	default:
		return nil, fmt.Errorf("unknown game type: %q", gameType)
	}

	firstPlayer := &entity.Player{
		ID:   pkg.GeneratePlayerID(),
		Name: names[0],
		Kind: entity.HumanKind,
	}

	markOne, markTwo := entity.GetRandomMarks()
	firstPlayer.Mark = markOne
	opponent.Mark = markTwo

	firstPlayer.GameID = game.ID
	opponent.GameID = game.ID

	game.Players = []*entity.Player{firstPlayer, opponent}
	game.Status = entity.StatusOngoing

	for _, player := range game.Players {
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err := that.gameRepo.SetCurrent(ctx, game.ID); err != nil {
		return nil, fmt.Errorf("failed to mark current game: %w", err)
	}

	return game, nil
}

// MakeTurn - applies a human turn. Validation errors come back unwrapped
// enough for the caller to match the apperror sentinels and re-prompt.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, mark string, cell int) error {
	if err := tictactoe.MakeTurn(game, mark, cell); err != nil {
		return err
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// BotTurn - lets the bot pick and play a cell, returning the cell it chose.
func (that *GameManager) BotTurn(ctx context.Context, game *entity.Game) (int, error) {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return 0, bot.ErrBotNotFound
	}

	strategy, err := bot.ForDifficulty(game.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("failed to pick bot strategy: %w", err)
	}

	cell, err := strategy.ChooseCell(game, botPlayer.Mark)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose a cell: %w", err)
	}

	if err = tictactoe.MakeTurn(game, botPlayer.Mark, cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return 0, fmt.Errorf("failed to update game: %w", err)
	}

	return cell, nil
}

// FinishRound - settles a finished round: scores the winner, and either
// archives the whole series (true) or resets the board for the next round
// with freshly drawn marks (false).
func (that *GameManager) FinishRound(ctx context.Context, game *entity.Game) (bool, error) {
	if !game.IsFinished() {
		return false, ErrRoundNotFinished
	}

	if winner := game.PlayerByMark(game.Winner); winner != nil {
		winner.Wins++
	}

	if that.seriesDecided(game) {
		if err := that.archiveSeries(ctx, game); err != nil {
			return false, fmt.Errorf("failed to archive series: %w", err)
		}

		that.cleanupGame(ctx, game)

		return true, nil
	}

	markOne, markTwo := entity.GetRandomMarks()
	game.Players[0].Mark = markOne
	game.Players[1].Mark = markTwo

	game.StartNextRound()

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return false, fmt.Errorf("failed to update game: %w", err)
	}

	return false, nil
}

// Suspend - saves the game so a later `resume` picks it up.
func (that *GameManager) Suspend(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	if err := that.gameRepo.SetCurrent(ctx, game.ID); err != nil {
		return fmt.Errorf("failed to mark current game: %w", err)
	}

	return nil
}

// Resume - reloads the suspended game, if any.
func (that *GameManager) Resume(ctx context.Context) (*entity.Game, error) {
	id, err := that.gameRepo.GetCurrent(ctx)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, apperror.ErrNoActiveGames
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get current game: %w", err)
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, apperror.ErrNoActiveGames
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// Abandon - drops the series without archiving it (a resignation).
func (that *GameManager) Abandon(ctx context.Context, game *entity.Game) {
	that.cleanupGame(ctx, game)
}

func (that *GameManager) RecentSeries(ctx context.Context, limit int) ([]*entity.Series, error) {
	series, err := that.scoreRepo.RecentSeries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent series: %w", err)
	}

	return series, nil
}

func (that *GameManager) seriesDecided(game *entity.Game) bool {
	lead := game.Players[0].Wins - game.Players[1].Wins
	if lead < 0 {
		lead = -lead
	}

	return lead >= that.winsTarget
}

func (that *GameManager) archiveSeries(ctx context.Context, game *entity.Game) error {
	champion, runnerUp := game.Players[0], game.Players[1]
	if runnerUp.Wins > champion.Wins {
		champion, runnerUp = runnerUp, champion
	}

	series := &entity.Series{
		GameID:       game.ID,
		Champion:     champion.Name,
		RunnerUp:     runnerUp.Name,
		ChampionWins: champion.Wins,
		RunnerUpWins: runnerUp.Wins,
		Rounds:       game.Round,
		Type:         game.Type,
		FinishedAt:   time.Now().UTC(),
	}

	if err := that.scoreRepo.SaveSeries(ctx, series); err != nil {
		return fmt.Errorf("failed to save series: %w", err)
	}

	return nil
}

func (that *GameManager) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	if err := that.gameRepo.SetCurrent(ctx, ""); err != nil {
		log.Error("failed to clear current game", "error", err)
	}

	for _, player := range game.Players {
		player.Mark = ""
		player.GameID = ""

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "error", err)
		}
	}

	log.Info("game deleted", "game_id", game.ID)
}

// BotName - the on-screen name for each difficulty.
func BotName(difficulty string) string {
	switch difficulty {
	case bot.DifficultyEasy:
		return "Calculator"
	case bot.DifficultyImpossible:
		return "Agent Smith"
	default:
		return "Computer"
	}
}
