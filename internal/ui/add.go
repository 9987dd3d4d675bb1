package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neurotask/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		description string
		priority    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task to the unscheduled list",
		Long: `Add a new task. New tasks always start on the unscheduled list;
use "neurotask move" or the interactive board to place them on the timeline.

Example:
  neurotask add "Write documentation" --priority=high`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			pri, err := task.ParsePriority(priority)
			if err != nil {
				return err
			}
			st, err := task.ParseStatus(status)
			if err != nil {
				return err
			}

			t := sess.Repo.Create(context.Background(), task.Draft{
				Title:       args[0],
				Description: description,
				Priority:    pri,
				Status:      st,
			})
			if t == nil {
				return fmt.Errorf("a task needs a non-empty title")
			}

			fmt.Printf("Created %s: %s [%s]\n", t.ID[:8], t.Title, formatPriority(string(t.Priority)))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Longer free-form description")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: low, medium or high")
	cmd.Flags().StringVar(&status, "status", "todo", "Status: todo, in-progress or done")

	return cmd
}
