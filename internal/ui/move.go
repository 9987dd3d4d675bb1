package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neurotask/internal/dateutil"
	"github.com/javiermolinar/neurotask/internal/slot"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		date string
		hour int
	)

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move a task onto the timeline or back to the unscheduled list",
		Long: `Move a task into an hourly slot, or back to the unscheduled list
when no slot is given.

Example:
  neurotask move 1a2b3c4d --date=2026-08-31 --hour=9
  neurotask move 1a2b3c4d`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			t, err := findTask(sess.Repo, args[0])
			if err != nil {
				return err
			}

			zone := slot.ZoneUnscheduled
			if cmd.Flags().Changed("hour") || date != "" {
				if date == "" {
					return fmt.Errorf("--hour needs --date")
				}
				day, err := dateutil.ParseDate(date)
				if err != nil {
					return err
				}
				key, err := slot.NewKey(day, hour)
				if err != nil {
					return err
				}
				zone = string(key)
			}

			ctx := context.Background()
			sess.Drag.DragStart(t.ID)
			sess.Drag.DragEnd(ctx, t.ID, zone)

			if zone == slot.ZoneUnscheduled {
				fmt.Printf("Moved %s to the unscheduled list: %s\n", t.ID[:8], t.Title)
			} else {
				fmt.Printf("Moved %s to %s: %s\n", t.ID[:8], formatSlot(zone), t.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Target day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&hour, "hour", 9, "Target hour (0-23)")

	return cmd
}
