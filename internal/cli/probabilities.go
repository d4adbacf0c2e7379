package cli

import (
	"github.com/spf13/cobra"
)

func newProbabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probabilities",
		Short: "Estimate tile probabilities per score bracket from the tile log",
		RunE: func(cmd *cobra.Command, args []string) error {
			brackets, err := app.StatsService.Estimate(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output, cfg.NoColor).Print(brackets)
			return nil
		},
	}
}
