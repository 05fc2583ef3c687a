package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recently finished series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := gameManager.RecentSeries(cmd.Context(), limit)
			if err != nil {
				return err
			}

			fmt.Fprint(os.Stdout, renderer.SeriesTable(series))

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "how many series to show")

	return cmd
}
