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

// CategoryCmd returns the category command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage activity categories",
		Long:  `Create and manage categories - the top-level grouping every activity belongs to.`,
	}

	cmd.AddCommand(categoryCreateCmd())
	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryRenameCmd())
	cmd.AddCommand(categoryColorCmd())
	cmd.AddCommand(categoryDeleteCmd())

	return cmd
}

func categoryCreateCmd() *cobra.Command {
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new category",
		Long: `Create a new category. Names are unique case-insensitively.

Examples:
  tlog category create Work
  tlog category create Exercise --color "#22CC66"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.CategoryService().CreateCategory(ctx, primary.CreateCategoryRequest{
				Name:  args[0],
				Color: colorFlag,
			})
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Printf("✓ Created category %s: %s\n", resp.CategoryID, resp.Category.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&colorFlag, "color", "", "display color in #RRGGBB form")
	return cmd
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			categories, err := wire.CategoryService().ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println("No categories found.")
				fmt.Println()
				fmt.Println("Create your first category:")
				fmt.Println("  tlog category create Work")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLOR\tCREATED")
			fmt.Fprintln(w, "--\t----\t-----\t-------")

			for _, c := range categories {
				swatch := c.Color
				if s := colorizeSwatch(c.Color); s != "" {
					swatch = s + " " + c.Color
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, swatch, c.CreatedAt)
			}

			w.Flush()
			return nil
		},
	}
}

func categoryRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [category] [new-name]",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cat, err := resolveCategory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			if err := wire.CategoryService().RenameCategory(ctx, cat.ID, args[1]); err != nil {
				return fmt.Errorf("failed to rename category: %w", err)
			}

			fmt.Printf("✓ Renamed %s to %s\n", cat.ID, args[1])
			return nil
		},
	}
}

func categoryColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color [category] [#RRGGBB]",
		Short: "Set or clear a category's color",
		Long: `Set a category's display color. Pass an empty string to clear it.

Examples:
  tlog category color Work "#3366FF"
  tlog category color Work ""`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cat, err := resolveCategory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			if err := wire.CategoryService().SetCategoryColor(ctx, cat.ID, args[1]); err != nil {
				return fmt.Errorf("failed to set color: %w", err)
			}

			if args[1] == "" {
				fmt.Printf("✓ Cleared color for %s\n", cat.ID)
			} else {
				fmt.Printf("✓ Set %s color to %s\n", cat.ID, args[1])
			}
			return nil
		},
	}
}

func categoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [category]",
		Short: "Delete a category",
		Long: `Delete a category and its tags.

The delete is refused while any activity still references the category;
reassign or delete those activities first. Tag associations go with the
tags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cat, err := resolveCategory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			if err := wire.CategoryService().DeleteCategory(ctx, cat.ID); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Printf("✓ Deleted category %s (%s)\n", cat.ID, cat.Name)
			return nil
		},
	}
}
