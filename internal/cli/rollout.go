package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/bot"
	"github.com/mcoot/banker/internal/services/search"
)

func newRolloutCmd() *cobra.Command {
	var (
		games    int
		workers  int
		maxTurns int
		strategy string
		seed     uint64
		record   bool
	)

	cmd := &cobra.Command{
		Use:   "rollout",
		Short: "Play games against sampled tiles and report the scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.BotService.Rollout(cmd.Context(), bot.RolloutConfig{
				Games:       games,
				Workers:     workers,
				MaxTurns:    maxTurns,
				Strategy:    strategy,
				Search:      search.Config{Depth: cfg.Depth, CacheSize: cfg.CacheSize},
				Seed:        seed,
				RecordTiles: record,
			})
			if err != nil {
				return err
			}
			NewOutput(cfg.Output, cfg.NoColor).Print(summary)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 5, "Number of games to play")
	cmd.Flags().IntVar(&workers, "workers", 0, "Games played concurrently (0: all at once)")
	cmd.Flags().IntVar(&maxTurns, "max-turns", bot.DefaultMaxTurns, "Turn limit per game")
	cmd.Flags().StringVar(&strategy, "strategy", model.BotStrategyExpectimax,
		fmt.Sprintf("Move strategy: %v", model.ValidBotStrategies()))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible tile draws (0: random)")
	cmd.Flags().BoolVar(&record, "record", false, "Append drawn tiles to the tile log")

	return cmd
}
