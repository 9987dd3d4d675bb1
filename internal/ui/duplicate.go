package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) duplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate [id]",
		Aliases: []string{"dup"},
		Short:   "Duplicate a task",
		Long: `Duplicate a task. The copy gets a fresh id, a " (Copy)" title suffix,
and starts on the unscheduled list even if the original is scheduled.

Example:
  neurotask duplicate 1a2b3c4d`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			orig, err := findTask(sess.Repo, args[0])
			if err != nil {
				return err
			}

			dup := sess.Repo.Duplicate(context.Background(), orig.ID)
			if dup == nil {
				return fmt.Errorf("no task matches %q", args[0])
			}

			fmt.Printf("Created %s: %s\n", dup.ID[:8], dup.Title)
			return nil
		},
	}
}
