package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/banker/internal/model"
)

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect stored sessions (useful with redis storage)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List session IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.GameController.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output, cfg.NoColor).Print(ids)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a session and its board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.GameController.GetSession(cmd.Context(), model.SessionID(args[0]))
			if err != nil {
				return err
			}
			NewOutput(cfg.Output, cfg.NoColor).Print(session)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GameController.DeleteSession(cmd.Context(), model.SessionID(args[0])); err != nil {
				return err
			}
			NewOutput(cfg.Output, cfg.NoColor).PrintMessage("deleted " + args[0])
			return nil
		},
	})

	return cmd
}
