package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/db"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities (use via tlog-dev shim)",
		Long: `Development utilities for working with the tlog dev database.

These commands are intended to be run via the tlog-dev shim, which sets
TLOG_DB_PATH to ~/.tlog/dev.db. Running without the shim will error to
prevent accidental modification of the production database.`,
	}

	cmd.AddCommand(devResetCmd())
	cmd.AddCommand(devSeedCmd())
	return cmd
}

func devResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset dev database with fresh fixtures",
		Long: `Delete the dev database and recreate it with fixture data.

This command:
1. Deletes the existing dev database file
2. Creates a fresh database with the current schema
3. Seeds fixture data for development

Safety: This command requires TLOG_DB_PATH to be set (via tlog-dev shim)
to prevent accidental reset of the production database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := os.Getenv("TLOG_DB_PATH")
			if dbPath == "" {
				return fmt.Errorf("TLOG_DB_PATH not set - use 'tlog-dev reset' instead of 'tlog reset'\n\nThis safety check prevents accidental reset of your production database")
			}

			if !force {
				fmt.Printf("This will delete and recreate: %s\n", dbPath)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			db.Close()

			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete database: %w", err)
			}
			fmt.Printf("✓ Deleted %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			fmt.Println("✓ Created fresh database with schema")

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded fixture data")

			fmt.Println("\nDev database reset complete!")
			fmt.Println("\nSeeded entities:")
			fmt.Println("  - 3 categories")
			fmt.Println("  - 5 tags")
			fmt.Println("  - 5 activities over three days")

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt")
	return cmd
}

func devSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed fixture data into the dev database",
		Long: `Insert fixture data into the existing dev database without
resetting it. Fails on conflicts with already-seeded rows.

Safety: requires TLOG_DB_PATH to be set (via tlog-dev shim).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("TLOG_DB_PATH") == "" {
				return fmt.Errorf("TLOG_DB_PATH not set - use the tlog-dev shim for dev commands")
			}

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			fmt.Println("✓ Seeded fixture data")
			return nil
		},
	}
}
