package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Example: `  neurotask rm 1a2b3c4d`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			t, err := findTask(sess.Repo, args[0])
			if err != nil {
				return err
			}

			sess.Drag.Delete(context.Background(), t.ID)
			fmt.Printf("Deleted %s: %s\n", t.ID[:8], t.Title)
			return nil
		},
	}
}
