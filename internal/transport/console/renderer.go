package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"xogame/internal/entity"
)

// Renderer - turns game state into terminal text. Marks are colored through
// termenv when the terminal supports it and color is enabled in the config.
type Renderer struct {
	out   *termenv.Output
	color bool
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		color = false
	}

	return &Renderer{
		out:   out,
		color: color,
	}
}

func (that *Renderer) mark(mark string) string {
	if !that.color || mark == entity.EmptyCell {
		return mark
	}

	style := that.out.String(mark).Bold()
	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.out.Color("1"))
	case entity.PlayerO:
		style = style.Foreground(that.out.Color("4"))
	}

	return style.String()
}

func (that *Renderer) banner(text string) string {
	if !that.color {
		return text
	}

	return that.out.String(text).Bold().String()
}

// Welcome - the greeting and the keypad layout explanation shown once per
// session.
func (that *Renderer) Welcome() string {
	var sb strings.Builder

	sb.WriteString("\n\t\t" + that.banner("Welcome to the XO game") + "\n\n")
	sb.WriteString("To move to the desired cell, enter its number.\n\n")
	sb.WriteString("\t\t\tCELL NUMBERS\n")
	sb.WriteString("\t\t\t-------------\n")
	sb.WriteString("\t\t\t| 7 | 8 | 9 |\n")
	sb.WriteString("\t\t\t-------------\n")
	sb.WriteString("\t\t\t| 4 | 5 | 6 |\n")
	sb.WriteString("\t\t\t-------------\n")
	sb.WriteString("\t\t\t| 1 | 2 | 3 |\n")
	sb.WriteString("\t\t\t-------------\n\n")

	return sb.String()
}

// Board - the keypad hint board and the live board side by side. Hint cells
// go blank once the matching board cell is taken.
func (that *Renderer) Board(game *entity.Game) string {
	var sb strings.Builder

	sb.WriteString("CELL NUMBERS\t\t    BOARD\n")

	for row := 0; row < 3; row++ {
		sb.WriteString("-------------\t\t-------------\n")

		hints := make([]string, 3)
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			idx := row*3 + col

			hint := fmt.Sprintf("%d", indexToKeypad(idx))
			cell := game.Board[idx]
			if cell != entity.EmptyCell {
				hint = " "
			}

			hints[col] = hint
			cells[col] = that.padMark(cell)
		}

		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\t\t| %s | %s | %s |\n",
			hints[0], hints[1], hints[2], cells[0], cells[1], cells[2]))
	}

	sb.WriteString("-------------\t\t-------------\n")

	return sb.String()
}

func (that *Renderer) padMark(mark string) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return that.mark(mark)
}

// Score - the running series score line.
func (that *Renderer) Score(game *entity.Game) string {
	one, two := game.Players[0], game.Players[1]

	return fmt.Sprintf("Game score:\t%s: %d\t-\t%s: %d\n", one.Name, one.Wins, two.Name, two.Wins)
}

// Marks - who plays which mark this round.
func (that *Renderer) Marks(game *entity.Game) string {
	var sb strings.Builder

	for _, player := range game.Players {
		sb.WriteString(fmt.Sprintf("%s is playing - %s\n", player.Name, that.mark(player.Mark)))
	}

	return sb.String()
}

// RoundResult - the end-of-round line: winner or draw.
func (that *Renderer) RoundResult(game *entity.Game) string {
	if game.Winner == entity.PlayerTie {
		return "The round is drawn\n"
	}

	winner := game.PlayerByMark(game.Winner)
	if winner == nil {
		return ""
	}

	return fmt.Sprintf("%s wins the round!\n", winner.Name)
}

// Champion - the final series banner.
func (that *Renderer) Champion(name string) string {
	return that.banner(fmt.Sprintf("Congratulations, %s is the CHAMPION!!!", name)) + "\n"
}

// SeriesTable - recent archived series for the stats command.
func (that *Renderer) SeriesTable(series []*entity.Series) string {
	if len(series) == 0 {
		return "No finished series yet.\n"
	}

	var sb strings.Builder
	sb.WriteString(that.banner("Recent series") + "\n")

	for _, s := range series {
		sb.WriteString(fmt.Sprintf("%s  %s %d - %d %s  (%d rounds, vs %s)\n",
			s.FinishedAt.Local().Format("2006-01-02 15:04"),
			s.Champion, s.ChampionWins, s.RunnerUpWins, s.RunnerUp,
			s.Rounds, s.Type))
	}

	return sb.String()
}
