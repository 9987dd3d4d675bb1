// Package ui provides the command line interface for neurotask.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neurotask/internal/config"
	"github.com/javiermolinar/neurotask/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "neurotask",
		Short: "A terminal task board with an hourly scheduling grid",
		Long: `Neurotask is a personal task board for the terminal.

Tasks start in an unscheduled list and are picked up and dropped into
hourly time slots on a day or week timeline. Run without arguments to
open the interactive board.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()
			return tui.Run(tui.Deps{
				Repo:   sess.Repo,
				Prefs:  sess.Prefs,
				Drag:   sess.Drag,
				Config: a.config,
				Log:    sess.Log,
			})
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.duplicateCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.prefsCmd())
	a.root.AddCommand(a.suggestCmd())
	a.root.AddCommand(a.summaryCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("neurotask %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
