package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"xogame/internal/apperror"
	"xogame/internal/entity"
)

var errInputClosed = errors.New("input closed")

const (
	resignContinue = 0
	resignGiveUp   = 1
	resignSuspend  = 2
)

type uGame interface {
	NewSeries(ctx context.Context, gameType, difficulty string, names []string) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, mark string, cell int) error
	BotTurn(ctx context.Context, game *entity.Game) (int, error)
	FinishRound(ctx context.Context, game *entity.Game) (bool, error)
	Suspend(ctx context.Context, game *entity.Game) error
	Resume(ctx context.Context) (*entity.Game, error)
	Abandon(ctx context.Context, game *entity.Game)
	WinsTarget() int
}

// Server - the interactive console session. It owns the prompt loop and
// translates keypad input into engine turns through the game manager.
type Server struct {
	logger   *slog.Logger
	uGame    uGame
	renderer *Renderer

	in  *bufio.Scanner
	out io.Writer

	// botDelay makes the bot's reply readable; zero in tests.
	botDelay time.Duration
}

func New(logger *slog.Logger, uGame uGame, renderer *Renderer, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:   logger,
		uGame:    uGame,
		renderer: renderer,

		in:  bufio.NewScanner(in),
		out: out,

		botDelay: time.Second,
	}
}

// Play - starts a fresh series and runs it to the end.
func (that *Server) Play(ctx context.Context, gameType, difficulty string) error {
	fmt.Fprint(that.out, that.renderer.Welcome())

	names, err := that.promptNames(gameType)
	if err != nil {
		return err
	}

	game, err := that.uGame.NewSeries(ctx, gameType, difficulty, names)
	if err != nil {
		return fmt.Errorf("failed to start series: %w", err)
	}

	fmt.Fprintf(that.out, "\n%s\nWe play until one side leads by %d wins\n\n", that.renderer.Marks(game), that.uGame.WinsTarget())

	return that.run(ctx, game)
}

// Resume - picks up the suspended series, if there is one.
func (that *Server) Resume(ctx context.Context) error {
	game, err := that.uGame.Resume(ctx)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		fmt.Fprintln(that.out, "There is no saved game to resume.")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to resume game: %w", err)
	}

	fmt.Fprintf(that.out, "Resuming round %d.\n\n%s\n", game.Round, that.renderer.Marks(game))

	return that.run(ctx, game)
}

func (that *Server) run(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("component", "console", "game_id", game.ID)

	for {
		if err := ctx.Err(); err != nil {
			if suspendErr := that.uGame.Suspend(ctx, game); suspendErr != nil {
				log.Error("failed to suspend game on shutdown", "error", suspendErr)
			}

			return nil //nolint:nilerr // an interrupted session is not a failure
		}

		fmt.Fprint(that.out, that.renderer.Board(game))
		fmt.Fprint(that.out, that.renderer.Score(game))

		current := game.PlayerByMark(game.Turn)
		if current == nil {
			return fmt.Errorf("no player holds the turn mark %q", game.Turn)
		}

		fmt.Fprintf(that.out, "\n%s's move\n\n", current.Name)

		var done bool
		var err error
		if current.IsBot() {
			err = that.botMove(ctx, game)
		} else {
			done, err = that.humanMove(ctx, game, current)
		}

		if errors.Is(err, errInputClosed) {
			// stdin is gone, keep the game for a later resume
			if suspendErr := that.uGame.Suspend(ctx, game); suspendErr != nil {
				log.Error("failed to suspend game", "error", suspendErr)
			}

			return nil
		}

		if err != nil {
			return err
		}

		if done {
			return nil
		}

		if !game.IsFinished() {
			continue
		}

		fmt.Fprint(that.out, that.renderer.Board(game))
		fmt.Fprint(that.out, that.renderer.RoundResult(game))

		seriesOver, err := that.uGame.FinishRound(ctx, game)
		if err != nil {
			return fmt.Errorf("failed to finish round: %w", err)
		}

		if seriesOver {
			champion := game.Players[0]
			if game.Players[1].Wins > champion.Wins {
				champion = game.Players[1]
			}

			fmt.Fprint(that.out, "\n", that.renderer.Champion(champion.Name))

			return nil
		}

		fmt.Fprintf(that.out, "\nRound %d!\n%s\n", game.Round, that.renderer.Marks(game))
	}
}

func (that *Server) botMove(ctx context.Context, game *entity.Game) error {
	if that.botDelay > 0 {
		time.Sleep(that.botDelay)
	}

	cell, err := that.uGame.BotTurn(ctx, game)
	if err != nil {
		return fmt.Errorf("bot move failed: %w", err)
	}

	fmt.Fprintf(that.out, "%s takes cell %d\n\n", game.BotPlayer().Name, indexToKeypad(cell))

	return nil
}

// humanMove - prompts until a legal move lands or the player leaves the
// session. The returned bool reports that the session is over.
func (that *Server) humanMove(ctx context.Context, game *entity.Game, player *entity.Player) (bool, error) {
	for {
		key, err := that.promptInt("Enter the cell number (0 for quit): ", 0, 9)
		if err != nil {
			return false, err
		}

		if key == 0 {
			choice, err := that.promptResign()
			if err != nil {
				return false, err
			}

			switch choice {
			case resignGiveUp:
				that.uGame.Abandon(ctx, game)
				fmt.Fprintln(that.out, "\nThe game is over")

				return true, nil
			case resignSuspend:
				if err = that.uGame.Suspend(ctx, game); err != nil {
					return false, fmt.Errorf("failed to save game: %w", err)
				}

				fmt.Fprintln(that.out, "\nGame saved, run `xogame resume` to continue it.")

				return true, nil
			default:
				continue
			}
		}

		err = that.uGame.MakeTurn(ctx, game, player.Mark, keypadToIndex(key))
		switch {
		case errors.Is(err, apperror.ErrCellOccupied):
			fmt.Fprintln(that.out, "That cell is already taken, pick another one.")
		case errors.Is(err, apperror.ErrInvalidCell):
			fmt.Fprintln(that.out, "Enter one digit from the remaining cell numbers or 0 for quit!")
		case errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrGameFinished):
			return false, err
		case err != nil:
			return false, fmt.Errorf("failed to make turn: %w", err)
		default:
			return false, nil
		}
	}
}

func (that *Server) promptNames(gameType string) ([]string, error) {
	if gameType == entity.VsFriendType {
		first, err := that.promptLine("Enter the name of the first player: ")
		if err != nil {
			return nil, err
		}

		second, err := that.promptLine("Enter the name of the second player: ")
		if err != nil {
			return nil, err
		}

		return []string{first, second}, nil
	}

	name, err := that.promptLine("What is your name? ")
	if err != nil {
		return nil, err
	}

	return []string{name}, nil
}

func (that *Server) promptResign() (int, error) {
	return that.promptInt("Are you giving up? (1-Resign / 2-Save for later / 0-Keep playing): ", 0, 2)
}

func (that *Server) promptLine(prompt string) (string, error) {
	for {
		fmt.Fprint(that.out, prompt)

		if !that.in.Scan() {
			return "", errInputClosed
		}

		line := strings.TrimSpace(that.in.Text())
		if line != "" {
			return line, nil
		}
	}
}

func (that *Server) promptInt(prompt string, minValue, maxValue int) (int, error) {
	for {
		line, err := that.promptLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err != nil || value < minValue || value > maxValue {
			fmt.Fprintf(that.out, "Enter a number between %d and %d!\n", minValue, maxValue)
			continue
		}

		return value, nil
	}
}
