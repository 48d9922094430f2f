package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/config"
	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/wire"
)

// TodayCmd returns the today command
func TodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, _ := ParseDate("today", time.Now())
			return renderDayRange(day, day, "Today")
		},
	}
}

// YesterdayCmd returns the yesterday command
func YesterdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yesterday",
		Short: "Show yesterday's activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, _ := ParseDate("yesterday", time.Now())
			return renderDayRange(day, day, "Yesterday")
		},
	}
}

// WeekCmd returns the week command
func WeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show this week's activities",
		Long: `Show activities from the start of the current week. The week
boundary (monday or sunday) comes from week_start in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, _ := ParseDate("today", time.Now())
			start := weekStartOf(today, configWeekStart())
			return renderDayRange(start, today, "This week")
		},
	}
}

// RecentCmd returns the recent command
func RecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently logged activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			activities, err := wire.ActivityService().ListActivities(ctx, primary.ActivityFilters{Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list activities: %w", err)
			}

			renderActivities(fmt.Sprintf("Last %d activities", limit), activities)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of activities to show")
	return cmd
}

// RangeCmd returns the range command
func RangeCmd() *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Show activities in a date range",
		Long: `Show activities whose start date falls in [--from, --to], both
inclusive.

Examples:
  tlog range --from 2024-03-01 --to 2024-03-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			from, err := ParseDate(fromFlag, now)
			if err != nil {
				return err
			}
			to, err := ParseDate(toFlag, now)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
			return renderDayRange(from, to, title)
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date (YYYY-MM-DD, defaults to today)")
	return cmd
}

func renderDayRange(from, to time.Time, title string) error {
	ctx := context.Background()

	activities, err := wire.ActivityService().ListActivities(ctx, primary.ActivityFilters{
		From: from,
		To:   to,
	})
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	renderActivities(title, activities)
	return nil
}

func renderActivities(title string, activities []*primary.ActivityView) {
	if len(activities) == 0 {
		fmt.Printf("%s: no activities.\n", title)
		return
	}

	fmt.Println(title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tDURATION\tCATEGORY\tTAGS\tNOTES")
	fmt.Fprintln(w, "--\t----\t----\t--------\t--------\t----\t-----")

	total := 0
	for _, a := range activities {
		total += a.DurationMinutes
		fmt.Fprintf(w, "%s\t%s\t%s-%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			FormatDateShort(a.StartTime),
			FormatClock(a.StartTime), FormatClock(a.EndTime),
			FormatDuration(a.DurationMinutes),
			a.CategoryName,
			a.Tags,
			a.Notes,
		)
	}
	w.Flush()

	fmt.Printf("\nTotal: %s over %d activities\n", FormatDuration(total), len(activities))
}

// configWeekStart reads week_start from the config file, defaulting to
// monday when no config exists.
func configWeekStart() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.WeekStartMonday
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		return config.WeekStartMonday
	}
	return cfg.WeekStart
}
