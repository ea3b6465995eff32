package cli

import (
	"fmt"
	"time"

	"agmtrack/internal/config"
	"agmtrack/internal/domain"
	"agmtrack/internal/store"
	"github.com/spf13/cobra"
)

// App holds the shared state CLI commands and the TUI operate on.
type App struct {
	Store *store.Store
	Cfg   config.Config

	// Resolved schedule parameters. Seeded from config, overridable with
	// the --date and --within persistent flags.
	Today   time.Time
	AGMDate time.Time
	Within  int

	// IsInteractive reports whether stdin is a terminal. The root command
	// launches the TUI only when it is.
	IsInteractive func() bool
}

// NewApp wires an App from a store and loaded configuration.
func NewApp(st *store.Store, cfg config.Config) *App {
	return &App{
		Store:   st,
		Cfg:     cfg,
		Today:   cfg.CurrentDate(),
		AGMDate: cfg.MeetingDate(),
		Within:  cfg.UpcomingWindowDays,
	}
}

// CanEdit reports whether the configured role may use mutation affordances.
func (a *App) CanEdit() bool {
	return a.Cfg.Role == domain.RoleAdmin
}

// NewRootCmd creates the top-level "agmtrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var dateFlag string
	var withinFlag int

	root := &cobra.Command{
		Use:   "agmtrack",
		Short: "Track general-meeting report preparation",
		Long: "agmtrack tracks the tasks, agenda sections, and teams involved in\n" +
			"preparing an annual general meeting report. Run without arguments on a\n" +
			"terminal to open the interactive dashboard.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("date") {
				t, ok := domain.ParseDate(dateFlag)
				if !ok {
					return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", dateFlag)
				}
				app.Today = t
			}
			if cmd.Flags().Changed("within") {
				if withinFlag < 0 {
					return fmt.Errorf("--within must not be negative")
				}
				app.Within = withinFlag
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&dateFlag, "date", "", "Reference date for schedule views (YYYY-MM-DD)")
	root.PersistentFlags().IntVar(&withinFlag, "within", 0, "Days ahead counted as due soon")

	root.AddCommand(
		newStatusCmd(app),
		newNotifyCmd(app),
		newTasksCmd(app),
		newAgendaCmd(app),
		newTeamsCmd(app),
		newValidateCmd(),
	)

	return root
}
