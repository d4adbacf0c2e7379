package cli

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Host a game for an external player over stdin/stdout",
		Long: `Host a game with randomly drawn tiles. Each prompt is four lines: the 25 cell
tokens, "score cash", the legal moves as "source,dest" pairs, and the incoming
tile. Answer with "source dest". A final prompt with tile 0 ends the game.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.PlayService.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			// stdout belongs to the protocol, so the summary goes to stderr
			cmd.PrintErrf("final score %d after %d turns\n", outcome.Board.Score, outcome.Turns)
			return nil
		},
	}
}
