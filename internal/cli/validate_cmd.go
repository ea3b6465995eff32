package cli

import (
	"fmt"

	"agmtrack/internal/cli/formatter"
	"agmtrack/internal/fixture"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <fixture.json>",
		Short: "Check a fixture file without starting the UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Read(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if refs := fixture.DanglingTeamRefs(f); len(refs) > 0 {
				for _, r := range refs {
					fmt.Fprintln(out, formatter.StyleYellow.Render(
						fmt.Sprintf("warning: unknown team id %q", r)))
				}
			}

			errs := fixture.Validate(f)
			if len(errs) == 0 {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ fixture is valid"))
				return nil
			}
			for _, e := range errs {
				fmt.Fprintln(out, formatter.StyleRed.Render("✖ "+e.Error()))
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		},
	}
}
