package cli

import (
	"fmt"

	"agmtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeamsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List responsible teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Store.Snapshot()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeams(snap.Teams))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
