package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/config"
	"github.com/example/tlog/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the tlog environment",
		Long: `Health check for the tlog installation.

Validates:
- Database file and schema version
- Foreign key enforcement on the live connection
- Derived views (activities_view, category_stats, tag_stats)
- Config file

Examples:
  tlog doctor              # Run full health check
  tlog doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDatabase(),
				checkForeignKeys(),
				checkViews(),
				checkConfig(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						fmt.Printf("%s %s: %s\n", r.Status, r.Name, r.Details)
					}
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "exit code only, no output")
	return cmd
}

func checkDatabase() CheckResult {
	dbPath, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "database", Status: "✗", Details: err.Error()}
	}
	if _, err := os.Stat(dbPath); err != nil {
		return CheckResult{Name: "database", Status: "✗",
			Details: fmt.Sprintf("%s missing - run 'tlog init'", dbPath)}
	}
	if _, err := db.GetDB(); err != nil {
		return CheckResult{Name: "database", Status: "✗", Details: err.Error()}
	}
	return CheckResult{Name: "database", Status: "✓"}
}

func checkForeignKeys() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "foreign keys", Status: "✗", Details: err.Error()}
	}

	var enabled int
	if err := database.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return CheckResult{Name: "foreign keys", Status: "✗", Details: err.Error()}
	}
	if enabled != 1 {
		return CheckResult{Name: "foreign keys", Status: "✗",
			Details: "foreign key enforcement is off; cascades will not fire"}
	}
	return CheckResult{Name: "foreign keys", Status: "✓"}
}

func checkViews() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "views", Status: "✗", Details: err.Error()}
	}

	for _, view := range []string{"activities_view", "category_stats", "tag_stats"} {
		var one int
		err := database.QueryRow(fmt.Sprintf("SELECT 1 FROM %s LIMIT 1", view)).Scan(&one)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return CheckResult{Name: "views", Status: "✗",
				Details: fmt.Sprintf("%s unreadable: %v - run 'tlog init'", view, err)}
		}
	}
	return CheckResult{Name: "views", Status: "✓"}
}

func checkConfig() CheckResult {
	home, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{Name: "config", Status: "✗", Details: err.Error()}
	}

	cfg, err := config.LoadConfig(home)
	if err != nil {
		return CheckResult{Name: "config", Status: "⚠",
			Details: "no config file - defaults in effect (run 'tlog init' to create one)"}
	}
	if cfg.WeekStart != config.WeekStartMonday && cfg.WeekStart != config.WeekStartSunday {
		return CheckResult{Name: "config", Status: "⚠",
			Details: fmt.Sprintf("unknown week_start %q, treating as monday", cfg.WeekStart)}
	}
	return CheckResult{Name: "config", Status: "✓"}
}
