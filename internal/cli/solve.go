package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/banker/internal/factory"
	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/protocol"
)

func newSolveCmd() *cobra.Command {
	var (
		sessionID string
		showStats bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Pick moves for tiles read from stdin",
		Long: `Read one command per line and play each incoming tile with the best move found.

Commands:
  N        incoming tile of rank N (0 or negative: competitor of that rank)
  ! +      incoming positive lawsuit (! - for negative)
  . V      incoming charitable deduction of rank V
  $ A P    bonus of A cash at cell P
  p        print the board
  d ct     print competitor timers
  q        quit

Every incoming tile is appended to the tile log with the score before it was played.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cfg.NoColor)
			return runSolve(cmd.Context(), app, cmd.InOrStdin(), out, model.SessionID(sessionID), showStats)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Resume a stored session instead of starting a new one")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print search node counts after every tile")

	return cmd
}

func runSolve(ctx context.Context, app *factory.App, in io.Reader, out *Output, id model.SessionID, showStats bool) error {
	controller := app.GameController

	var session *model.Session
	var err error
	if id != "" {
		session, err = controller.GetSession(ctx, id)
	} else {
		session, err = controller.NewSession(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out.errOut, "session %s\n", session.ID)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, err := protocol.Parse(scanner.Text())
		if err != nil {
			out.PrintError(err)
			continue
		}

		switch cmd.Kind {
		case protocol.KindBlank:
			continue

		case protocol.KindQuit:
			return nil

		case protocol.KindTile:
			app.Engine().ResetStats()
			result, err := controller.PlayTile(ctx, session.ID, cmd.Tile)
			if err != nil {
				if errors.Is(err, model.ErrGameOver) {
					out.PrintError(err)
					return nil
				}
				return err
			}
			out.Print(result)
			if showStats {
				out.Print(app.Engine().Stats())
			}
			if result.GameOver {
				return nil
			}

		case protocol.KindBonus:
			if _, err := controller.PlaceBonus(ctx, session.ID, cmd.Amount, cmd.Position); err != nil {
				out.PrintError(err)
			}

		case protocol.KindPrint, protocol.KindTimers:
			current, err := controller.GetSession(ctx, session.ID)
			if err != nil {
				return err
			}
			if cmd.Kind == protocol.KindPrint {
				out.Print(current.Board)
			} else {
				out.Print(TimerGrid(current.Board))
			}
		}
	}
	return scanner.Err()
}
