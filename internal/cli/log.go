package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/config"
	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	var (
		dateFlag     string
		startFlag    string
		endFlag      string
		categoryFlag string
		tagsFlag     string
		notesFlag    string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a time-tracked activity",
		Long: `Log an activity with a start and end time.

Times accept "9:30", "9:30am", "2:00 pm" or 24-hour "14:30"; bare
times default to AM. The date defaults to today. Tags are created
under the category as needed.

The command refuses a range that overlaps an already-logged activity
unless --force is given.

Examples:
  tlog log --start 9:00 --end 10:30 --category Work --tags "deep work"
  tlog log --date yesterday --start 2:00pm --end 3:15pm --category Exercise
  tlog log --start 9:00 --end 9:30 --category Work --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			day, err := ParseDate(dateFlag, time.Now())
			if err != nil {
				return err
			}

			if startFlag == "" || endFlag == "" {
				return fmt.Errorf("--start and --end are required")
			}
			start, err := ParseClock(startFlag, day)
			if err != nil {
				return err
			}
			end, err := ParseClock(endFlag, day)
			if err != nil {
				return err
			}

			categoryRef := categoryFlag
			if categoryRef == "" {
				categoryRef = defaultCategory()
			}
			if categoryRef == "" {
				return fmt.Errorf("--category is required (or set default_category in config)")
			}
			cat, err := resolveCategory(ctx, categoryRef)
			if err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			tagIDs, err := resolveTags(ctx, cat.ID, tagsFlag)
			if err != nil {
				return err
			}

			if !force {
				overlapping, err := wire.ActivityService().FindOverlapping(ctx, start, end, "")
				if err != nil {
					return fmt.Errorf("failed to check for overlaps: %w", err)
				}
				if len(overlapping) > 0 {
					fmt.Println("Range overlaps existing activities:")
					for _, a := range overlapping {
						fmt.Printf("  %s  %s-%s  %s\n", a.ID,
							FormatClock(a.StartTime), FormatClock(a.EndTime), a.CategoryName)
					}
					return fmt.Errorf("refusing to log overlapping activity (use --force to override)")
				}
			}

			resp, err := wire.ActivityService().LogActivity(ctx, primary.LogActivityRequest{
				StartTime:  start,
				EndTime:    end,
				CategoryID: cat.ID,
				Notes:      notesFlag,
				TagIDs:     tagIDs,
			})
			if err != nil {
				return fmt.Errorf("failed to log activity: %w", err)
			}

			fmt.Printf("✓ Logged %s: %s %s-%s (%s) in %s\n",
				resp.ActivityID, FormatDateShort(day),
				FormatClock(start), FormatClock(end),
				FormatDuration(resp.DurationMinutes), cat.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "date to log on (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&startFlag, "start", "", "start time, e.g. 9:00 or 2:00pm")
	cmd.Flags().StringVar(&endFlag, "end", "", "end time, e.g. 10:30 or 3:15pm")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "category ID or name")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "comma-separated tag names (created as needed)")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "free-form notes")
	cmd.Flags().BoolVar(&force, "force", false, "log even when the range overlaps an existing activity")

	return cmd
}

// defaultCategory reads default_category from the config file, if any.
func defaultCategory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		return ""
	}
	return cfg.DefaultCategory
}
