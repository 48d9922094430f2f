package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/wire"
)

// TagCmd returns the tag command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
		Long: `Create and manage tags. Every tag lives under one category; names
are normalized (lowercased, separators collapsed to spaces) so
"Deep-Work" and "deep_work" are the same tag.`,
	}

	cmd.AddCommand(tagCreateCmd())
	cmd.AddCommand(tagListCmd())
	cmd.AddCommand(tagRenameCmd())
	cmd.AddCommand(tagDeleteCmd())

	return cmd
}

func tagCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [category] [name]",
		Short: "Create a new tag under a category",
		Long: `Create a new tag. The category may be given by ID or name.

Examples:
  tlog tag create Work "deep work"
  tlog tag create CAT-001 meetings`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cat, err := resolveCategory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			resp, err := wire.TagService().CreateTag(ctx, primary.CreateTagRequest{
				CategoryID: cat.ID,
				Name:       args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to create tag: %w", err)
			}

			fmt.Printf("✓ Created tag %s: %s (%s)\n", resp.TagID, resp.Tag.Name, cat.Name)
			return nil
		},
	}
}

func tagListCmd() *cobra.Command {
	var categoryRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long: `List tags across all categories, or scoped to one.

Examples:
  tlog tag list
  tlog tag list --category Work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filters := primary.TagFilters{}
			if categoryRef != "" {
				cat, err := resolveCategory(ctx, categoryRef)
				if err != nil {
					return fmt.Errorf("category not found: %w", err)
				}
				filters.CategoryID = cat.ID
			}

			tags, err := wire.TagService().ListTags(ctx, filters)
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			if len(tags) == 0 {
				fmt.Println("No tags found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tNAME\tCREATED")
			fmt.Fprintln(w, "--\t--------\t----\t-------")

			for _, t := range tags {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.CategoryName, t.Name, t.CreatedAt)
			}

			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryRef, "category", "", "only tags under this category (ID or name)")
	return cmd
}

func tagRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [tag-id] [new-name]",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.TagService().RenameTag(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to rename tag: %w", err)
			}

			fmt.Printf("✓ Renamed %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func tagDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [tag-id]",
		Short: "Delete a tag",
		Long: `Delete a tag and its activity associations. The activities
themselves are left intact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.TagService().DeleteTag(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete tag: %w", err)
			}

			fmt.Printf("✓ Deleted tag %s\n", args[0])
			return nil
		},
	}
}
