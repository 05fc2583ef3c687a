package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"xogame/internal/entity"
)

func newPlainRenderer() *Renderer {
	return NewRenderer(&bytes.Buffer{}, false)
}

func TestRenderer_Welcome(t *testing.T) {
	// When: rendering the welcome banner
	out := newPlainRenderer().Welcome()

	// Then: it carries the greeting and the keypad layout
	assert.Contains(t, out, "Welcome to the XO game")
	assert.Contains(t, out, "| 7 | 8 | 9 |")
	assert.Contains(t, out, "| 1 | 2 | 3 |")
}

func TestRenderer_Board(t *testing.T) {
	// Given: a game with X in the center and O in the top-left corner
	game := entity.NewGame("123", entity.VsFriendType)
	game.Board[4] = entity.PlayerX
	game.Board[0] = entity.PlayerO

	// When: rendering the board
	out := newPlainRenderer().Board(game)

	// Then: the live board shows the marks in place
	assert.Contains(t, out, "| O |   |   |")
	assert.Contains(t, out, "|   | X |   |")

	// Then: the hint board blanks the taken cells and keeps the free ones
	assert.Contains(t, out, "|   | 8 | 9 |")
	assert.Contains(t, out, "| 4 |   | 6 |")
	assert.Contains(t, out, "| 1 | 2 | 3 |")
}

func TestRenderer_ScoreAndMarks(t *testing.T) {
	// Given: a two-player game mid-series
	game := &entity.Game{
		Players: []*entity.Player{
			{Name: "Alex", Mark: entity.PlayerX, Wins: 2},
			{Name: "Kim", Mark: entity.PlayerO, Wins: 1},
		},
	}
	renderer := newPlainRenderer()

	// Then: the score line and the mark lines name both players
	assert.Equal(t, "Game score:\tAlex: 2\t-\tKim: 1\n", renderer.Score(game))
	assert.Contains(t, renderer.Marks(game), "Alex is playing - X")
	assert.Contains(t, renderer.Marks(game), "Kim is playing - O")
}

func TestRenderer_RoundResult(t *testing.T) {
	renderer := newPlainRenderer()

	t.Run("Names the round winner", func(t *testing.T) {
		// Given: a round won by O
		game := &entity.Game{
			Winner:  entity.PlayerO,
			Players: []*entity.Player{{Name: "Alex", Mark: entity.PlayerX}, {Name: "Kim", Mark: entity.PlayerO}},
		}

		// Then: the winner is announced by name
		assert.Equal(t, "Kim wins the round!\n", renderer.RoundResult(game))
	})

	t.Run("Announces a draw", func(t *testing.T) {
		// Given: a drawn round
		game := &entity.Game{Winner: entity.PlayerTie}

		// Then: the draw line comes back
		assert.Equal(t, "The round is drawn\n", renderer.RoundResult(game))
	})
}

func TestRenderer_SeriesTable(t *testing.T) {
	renderer := newPlainRenderer()

	t.Run("Empty archive", func(t *testing.T) {
		assert.Equal(t, "No finished series yet.\n", renderer.SeriesTable(nil))
	})

	t.Run("Lists archived series", func(t *testing.T) {
		// Given: one archived series
		series := []*entity.Series{{
			Champion:     "Alex",
			RunnerUp:     "Computer",
			ChampionWins: 3,
			RunnerUpWins: 1,
			Rounds:       4,
			Type:         entity.VsBotType,
			FinishedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}}

		// When: rendering the table
		out := renderer.SeriesTable(series)

		// Then: the line carries the score and the opponent type
		assert.Contains(t, out, "Alex 3 - 1 Computer")
		assert.Contains(t, out, "(4 rounds, vs bot)")
	})
}
