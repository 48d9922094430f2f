package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate time reports",
		Long: `Reports over logged activities. Without --from/--to the category
and tag reports cover all time; the daily report defaults to the last
seven days.`,
	}

	cmd.AddCommand(reportDailyCmd())
	cmd.AddCommand(reportCategoriesCmd())
	cmd.AddCommand(reportTagsCmd())

	return cmd
}

// reportRange parses the shared --from/--to flags. Empty from means the
// zero time (unbounded for the stats views).
func reportRange(fromFlag, toFlag string) (time.Time, time.Time, error) {
	now := time.Now()

	var from time.Time
	if fromFlag != "" {
		parsed, err := ParseDate(fromFlag, now)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	to, err := ParseDate(toFlag, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}

func reportDailyCmd() *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Per-day totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if fromFlag == "" {
				week, _ := ParseDate("today", time.Now())
				fromFlag = week.AddDate(0, 0, -6).Format("2006-01-02")
			}
			from, to, err := reportRange(fromFlag, toFlag)
			if err != nil {
				return err
			}

			days, err := wire.ReportService().DailyReport(ctx, from, to)
			if err != nil {
				return fmt.Errorf("failed to get daily report: %w", err)
			}

			if len(days) == 0 {
				fmt.Println("No activities in range.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "DAY\tACTIVITIES\tTOTAL")
			fmt.Fprintln(w, "---\t----------\t-----")
			for _, d := range days {
				fmt.Fprintf(w, "%s\t%d\t%s\n", d.Day, d.ActivityCount, FormatDuration(d.TotalMinutes))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "start date (default: 7 days ago)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date (default: today)")
	return cmd
}

func reportCategoriesCmd() *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Per-category totals",
		Long: `Per-category totals, most time first. All-time by default;
with --from/--to the report is scoped to the range and categories
without activities in it are omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ranged := fromFlag != "" || toFlag != ""

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tACTIVITIES\tTOTAL")
			fmt.Fprintln(w, "--------\t----------\t-----")

			if ranged {
				from, to, err := reportRange(fromFlag, toFlag)
				if err != nil {
					return err
				}
				rows, err := wire.ReportService().CategoryReport(ctx, from, to)
				if err != nil {
					return fmt.Errorf("failed to get category report: %w", err)
				}
				for _, s := range rows {
					fmt.Fprintf(w, "%s\t%d\t%s\n", s.Name, s.ActivityCount, FormatDuration(s.TotalMinutes))
				}
			} else {
				rows, err := wire.ReportService().CategoryStats(ctx)
				if err != nil {
					return fmt.Errorf("failed to get category stats: %w", err)
				}
				for _, s := range rows {
					fmt.Fprintf(w, "%s\t%d\t%s\n", s.Name, s.ActivityCount, FormatDuration(s.TotalMinutes))
				}
			}

			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

func reportTagsCmd() *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Per-tag totals",
		Long: `Per-tag totals grouped by category. All-time by default; with
--from/--to the report is scoped to the range and tags without
activities in it are omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ranged := fromFlag != "" || toFlag != ""

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tTAG\tACTIVITIES\tTOTAL")
			fmt.Fprintln(w, "--------\t---\t----------\t-----")

			if ranged {
				from, to, err := reportRange(fromFlag, toFlag)
				if err != nil {
					return err
				}
				rows, err := wire.ReportService().TagReport(ctx, from, to)
				if err != nil {
					return fmt.Errorf("failed to get tag report: %w", err)
				}
				for _, s := range rows {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.CategoryName, s.Name, s.ActivityCount, FormatDuration(s.TotalMinutes))
				}
			} else {
				rows, err := wire.ReportService().TagStats(ctx)
				if err != nil {
					return fmt.Errorf("failed to get tag stats: %w", err)
				}
				for _, s := range rows {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.CategoryName, s.Name, s.ActivityCount, FormatDuration(s.TotalMinutes))
				}
			}

			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}
