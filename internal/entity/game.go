package entity

import (
	"fmt"
	"math/rand"

	"xogame/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	VsFriendType = "friend"
	VsBotType    = "bot"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Game struct {
	ID         string    `json:"id"`
	Board      [9]string `json:"board"`
	Winner     string    `json:"winner"`
	Status     string    `json:"status"`
	Turn       string    `json:"player_turn"`
	Players    []*Player `json:"players,omitempty"`
	Type       string    `json:"type,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
	Round      int       `json:"round"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  EmptyBoard(),
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
		Round:  1,
	}
}

func EmptyBoard() [9]string {
	return [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
}

// CheckBoardWinner - returns the winning mark, PlayerTie for a full board
// without a winner, or EmptyCell while the board is still playable.
func CheckBoardWinner(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the round continues until all the squares are full
	for _, cell := range board {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return PlayerTie
}

func (that *Game) DetermineGameResult() string {
	return CheckBoardWinner(that.Board)
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// round continues
	default:
		that.Status = StatusOngoing
	}
}

// StartNextRound - clears the board for the next round of the series and
// hands the opening move back to X.
func (that *Game) StartNextRound() {
	that.Board = EmptyBoard()
	that.Winner = EmptyCell
	that.Turn = PlayerX
	that.Status = StatusOngoing
	that.Round++
}

func (that *Game) EmptyCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Game) PlayerByMark(mark string) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %q", that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == VsBotType
}

func GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint:gosec // mark assignment is not security sensitive
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
