package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/wire"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [activity-id]",
		Short: "Show activity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := wire.ActivityService().GetActivity(ctx, args[0])
			if err != nil {
				return fmt.Errorf("activity not found: %w", err)
			}

			fmt.Printf("Activity: %s\n", colorizeID(a.ID))
			fmt.Printf("Date: %s\n", a.StartTime.Format("2006-01-02"))
			fmt.Printf("Time: %s - %s (%s)\n",
				FormatClock(a.StartTime), FormatClock(a.EndTime),
				FormatDuration(a.DurationMinutes))
			fmt.Printf("Category: %s (%s)\n", a.CategoryName, a.CategoryID)
			if a.Tags != "" {
				fmt.Printf("Tags: %s\n", a.Tags)
			}
			if a.Notes != "" {
				fmt.Printf("Notes: %s\n", a.Notes)
			}
			fmt.Printf("Created: %s\n", a.CreatedAt)
			fmt.Printf("Updated: %s\n", a.UpdatedAt)

			return nil
		},
	}
}

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	var (
		startFlag    string
		endFlag      string
		categoryFlag string
		tagsFlag     string
		notesFlag    string
		clearNotes   bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "edit [activity-id]",
		Short: "Edit an activity",
		Long: `Edit an activity. Only the given flags change; everything else
keeps its stored value. Time flags are interpreted on the activity's
own date. --tags replaces the whole tag set.

Examples:
  tlog edit ACT-001 --end 11:00
  tlog edit ACT-001 --category Exercise --tags "running"
  tlog edit ACT-001 --clear-notes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			activityID := args[0]

			current, err := wire.ActivityService().GetActivity(ctx, activityID)
			if err != nil {
				return fmt.Errorf("activity not found: %w", err)
			}

			req := primary.UpdateActivityRequest{}
			newStart, newEnd := current.StartTime, current.EndTime

			if startFlag != "" {
				parsed, err := ParseClock(startFlag, current.StartTime)
				if err != nil {
					return err
				}
				req.StartTime = &parsed
				newStart = parsed
			}
			if endFlag != "" {
				parsed, err := ParseClock(endFlag, current.StartTime)
				if err != nil {
					return err
				}
				req.EndTime = &parsed
				newEnd = parsed
			}
			if categoryFlag != "" {
				cat, err := resolveCategory(ctx, categoryFlag)
				if err != nil {
					return fmt.Errorf("category not found: %w", err)
				}
				req.CategoryID = cat.ID
			}
			if clearNotes {
				empty := ""
				req.Notes = &empty
			} else if notesFlag != "" {
				req.Notes = &notesFlag
			}

			timesChanged := req.StartTime != nil || req.EndTime != nil
			if timesChanged && !force {
				overlapping, err := wire.ActivityService().FindOverlapping(ctx, newStart, newEnd, activityID)
				if err != nil {
					return fmt.Errorf("failed to check for overlaps: %w", err)
				}
				if len(overlapping) > 0 {
					fmt.Println("New range overlaps existing activities:")
					for _, a := range overlapping {
						fmt.Printf("  %s  %s-%s  %s\n", a.ID,
							FormatClock(a.StartTime), FormatClock(a.EndTime), a.CategoryName)
					}
					return fmt.Errorf("refusing overlapping edit (use --force to override)")
				}
			}

			if err := wire.ActivityService().UpdateActivity(ctx, activityID, req); err != nil {
				return fmt.Errorf("failed to update activity: %w", err)
			}

			if cmd.Flags().Changed("tags") {
				catID := current.CategoryID
				if req.CategoryID != "" {
					catID = req.CategoryID
				}
				tagIDs, err := resolveTags(ctx, catID, tagsFlag)
				if err != nil {
					return err
				}
				if err := wire.ActivityService().ReplaceActivityTags(ctx, activityID, tagIDs); err != nil {
					return fmt.Errorf("failed to replace tags: %w", err)
				}
			}

			fmt.Printf("✓ Updated %s\n", activityID)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "new start time")
	cmd.Flags().StringVar(&endFlag, "end", "", "new end time")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "new category ID or name")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "replacement tag set, comma-separated (empty clears)")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "new notes")
	cmd.Flags().BoolVar(&clearNotes, "clear-notes", false, "remove the notes")
	cmd.Flags().BoolVar(&force, "force", false, "allow an overlapping time range")

	return cmd
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [activity-id]",
		Short: "Delete an activity",
		Long: `Delete an activity and its tag associations. Tags and the
category are left intact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ActivityService().DeleteActivity(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete activity: %w", err)
			}

			fmt.Printf("✓ Deleted activity %s\n", args[0])
			return nil
		},
	}
}
