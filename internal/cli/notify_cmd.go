package cli

import (
	"fmt"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/report"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "List overdue and due-soon tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Store.Snapshot()
			o := report.BuildOverview(snap, app.Today, app.AGMDate, app.Within)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotifications(o, snap.Teams))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
