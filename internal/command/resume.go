package command

import (
	"github.com/spf13/cobra"
)

func resumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Continue the saved series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.Resume(cmd.Context())
		},
	}
}
