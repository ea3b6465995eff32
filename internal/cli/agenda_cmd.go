package cli

import (
	"fmt"

	"agmtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "agenda",
		Short: "List report book sections and their readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Store.Snapshot()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAgenda(snap.AgendaItems, snap.Teams))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
