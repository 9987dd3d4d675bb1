package ui

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neurotask/internal/dateutil"
	"github.com/javiermolinar/neurotask/internal/slot"
	"github.com/javiermolinar/neurotask/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the board: unscheduled tasks and the timeline",
		Long: `List all tasks, grouped into the unscheduled list and the scheduled
timeline. By default only today's slots are shown.

Example:
  neurotask list
  neurotask list --date=2026-08-31
  neurotask list --all`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			board := task.NewBoard(sess.Repo.Tasks())

			fmt.Println(formatHeader("Unscheduled"))
			if len(board.Unscheduled) == 0 {
				fmt.Println(formatMuted("  (empty)"))
			}
			for _, t := range board.Unscheduled {
				printTask(t)
			}

			keys := make([]slot.Key, 0, len(board.BySlot))
			for k := range board.BySlot {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

			var day string
			if !all {
				day = date
				if day == "" {
					day = dateutil.TruncateToDay(time.Now()).Format("2006-01-02")
				}
				if _, err := dateutil.ParseDate(day); err != nil {
					return err
				}
			}

			fmt.Println()
			fmt.Println(formatHeader("Scheduled"))
			printed := 0
			for _, k := range keys {
				d, hour, err := slot.Decode(k)
				if err != nil {
					continue
				}
				if day != "" && d.Format("2006-01-02") != day {
					continue
				}
				fmt.Printf("%s\n", formatSlot(fmt.Sprintf("%s %02d:00", d.Format("2006-01-02"), hour)))
				for _, t := range board.BySlot[k] {
					printTask(t)
				}
				printed++
			}
			if printed == 0 {
				fmt.Println(formatMuted("  (nothing scheduled)"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Show slots for this day (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every scheduled slot regardless of day")

	return cmd
}

func printTask(t *task.Task) {
	marker := "○"
	if t.IsDone() {
		marker = formatDone("✓")
	} else if t.Status == task.StatusInProgress {
		marker = "◐"
	}
	fmt.Printf("  %s %s %s [%s]\n",
		marker,
		formatMuted(t.ID[:8]),
		t.Title,
		formatPriority(string(t.Priority)),
	)
}
