package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"xogame/internal/config"
	"xogame/internal/repository"
	"xogame/internal/repository/storage"
	"xogame/internal/transport/console"
	"xogame/internal/usecase"
)

// Shared wiring for all subcommands, built once in PersistentPreRunE.
var (
	configPath string

	conf        *config.Config
	logger      *slog.Logger
	gameManager *usecase.GameManager
	renderer    *console.Renderer
	server      *console.Server

	closers []io.Closer
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "xogame",
		Short:         "Console XO (tic-tac-toe) game",
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return teardown()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.yml", "path to the config file")

	root.AddCommand(playCmd(), resumeCmd(), statsCmd())

	return root.ExecuteContext(ctx)
}

func setup(ctx context.Context) error {
	var err error

	conf, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = initLogger(conf)

	gameRepo, playerRepo, err := buildSessionRepos(ctx)
	if err != nil {
		return err
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	closers = append(closers, sqliteStorage)

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	scoreRepo := repository.NewScoreRepository(sqliteStorage.Connection)

	gameManager = usecase.NewGameManager(logger, playerRepo, gameRepo, scoreRepo, conf.Game.SeriesWins)
	renderer = console.NewRenderer(os.Stdout, conf.Game.Color)
	server = console.New(logger, gameManager, renderer, os.Stdin, os.Stdout)

	return nil
}

func buildSessionRepos(ctx context.Context) (repository.GameRepository, repository.PlayerRepository, error) {
	switch conf.Storage.Driver {
	case "redis":
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closers = append(closers, redisStorage)

		return repository.NewGameRepository(redisStorage.Connection), repository.NewPlayerRepository(redisStorage.Connection), nil
	case "memory":
		return repository.NewMemoryGameRepository(), repository.NewMemoryPlayerRepository(), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %q", conf.Storage.Driver)
	}
}

func teardown() error {
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}

	closers = nil

	return nil
}

func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
