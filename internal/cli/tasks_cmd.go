package cli

import (
	"fmt"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/filter"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks by phase, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria()
			if err != nil {
				return err
			}

			snap := app.Store.Snapshot()
			phases := filter.Apply(snap.Phases, criteria)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPhases(phases, snap.Teams))
			return nil
		},
	}

	addFilterFlags(cmd.Flags(), &flags)
	return cmd
}
