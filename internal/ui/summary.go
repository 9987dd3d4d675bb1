package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neurotask/internal/dateutil"
	"github.com/javiermolinar/neurotask/internal/summary"
	"github.com/javiermolinar/neurotask/internal/task"
)

func (a *App) summaryCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a week summary of the board",
		Example: `  neurotask summary
  neurotask summary --date=2026-08-31`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession(a.config)
			if err != nil {
				return err
			}
			defer sess.Close()

			ref := time.Now()
			if date != "" {
				parsed, err := dateutil.ParseDate(date)
				if err != nil {
					return err
				}
				ref = parsed
			}

			s := summary.SummarizeWeek(ref, sess.Repo.Tasks())
			printWeekSummary(s)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week to summarize (YYYY-MM-DD)")

	return cmd
}

func printWeekSummary(s *summary.WeekSummary) {
	fmt.Println(formatHeader(fmt.Sprintf("Week %s — %s",
		s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"))))

	for _, d := range s.Days {
		bar := ""
		for i := 0; i < d.Scheduled; i++ {
			bar += "█"
		}
		line := fmt.Sprintf("  %s %2d scheduled", d.Date.Format("Mon"), d.Scheduled)
		if d.Done > 0 {
			line += fmt.Sprintf(", %d done", d.Done)
		}
		fmt.Printf("%s  %s\n", line, formatSlot(bar))
	}

	fmt.Println()
	fmt.Printf("  %d tasks total, %d done, %d unscheduled\n", s.Total, s.Done, s.Unscheduled)
	fmt.Printf("  priorities: %s %d / %s %d / %s %d\n",
		formatPriority(string(task.PriorityHigh)), s.ByPriority[task.PriorityHigh],
		formatPriority(string(task.PriorityMedium)), s.ByPriority[task.PriorityMedium],
		formatPriority(string(task.PriorityLow)), s.ByPriority[task.PriorityLow],
	)

	if busiest, ok := s.BusiestDay(); ok {
		fmt.Printf("  busiest day: %s (%d tasks)\n", busiest.Date.Format("Monday"), busiest.Scheduled)
	}
}
