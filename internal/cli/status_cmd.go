package cli

import (
	"fmt"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/report"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the preparation dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := report.BuildOverview(app.Store.Snapshot(), app.Today, app.AGMDate, app.Within)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(o))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
