package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neurotask/internal/scheduler"
	"github.com/javiermolinar/neurotask/internal/task"
)

func (a *App) suggestCmd() *cobra.Command {
	var place string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the next free slot",
		Long: `Find the next free hourly slot, honoring the default-duration and
buffer-time preferences. Pass a task id to place it there directly.

Example:
  neurotask suggest
  neurotask suggest --place=1a2b3c4d`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			board := task.NewBoard(sess.Repo.Tasks())
			s := scheduler.New(board, sess.Prefs.Current())

			key, ok := s.NextFreeSlot(time.Now())
			if !ok {
				return fmt.Errorf("no free slot in the next two weeks")
			}

			if place == "" {
				fmt.Printf("Next free slot: %s\n", formatSlot(string(key)))
				return nil
			}

			t, err := findTask(sess.Repo, place)
			if err != nil {
				return err
			}
			ctx := context.Background()
			sess.Drag.DragStart(t.ID)
			sess.Drag.DragEnd(ctx, t.ID, string(key))
			fmt.Printf("Moved %s to %s: %s\n", t.ID[:8], formatSlot(string(key)), t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&place, "place", "", "Task id to move into the suggested slot")

	return cmd
}
