package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/config"
	"github.com/example/tlog/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the tlog database",
		Long:  `Initialize the tlog database at ~/.tlog/tlog.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing tlog database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			fmt.Println("✓ Config file created at ~/.tlog/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  tlog category create Work")
			fmt.Println("  tlog log --start 9:00 --end 10:30 --category Work")

			return nil
		},
	}
}

// initConfig writes a default config.json if none exists.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	if _, err := config.LoadConfig(home); err == nil {
		return nil // already exists
	}

	return config.SaveConfig(home, &config.Config{
		Version:   "1",
		WeekStart: config.WeekStartMonday,
	})
}
