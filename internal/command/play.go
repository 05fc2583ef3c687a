package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"xogame/internal/entity"
)

func playCmd() *cobra.Command {
	var (
		vs         string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a new series against the computer or a friend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if vs != entity.VsBotType && vs != entity.VsFriendType {
				return fmt.Errorf("unknown opponent %q: use %q or %q", vs, entity.VsBotType, entity.VsFriendType)
			}

			if difficulty == "" {
				difficulty = conf.Game.Difficulty
			}

			return server.Play(cmd.Context(), vs, difficulty)
		},
	}

	cmd.Flags().StringVar(&vs, "vs", entity.VsBotType, `opponent: "bot" or "friend"`)
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "bot difficulty: easy, normal or impossible (defaults from config)")

	return cmd
}
