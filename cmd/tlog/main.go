package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tlog/internal/cli"
	"github.com/example/tlog/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tlog",
		Short:   "tlog - personal time tracking",
		Version: version.String(),
		Long: `tlog is a CLI for tracking where your time goes. Activities are
logged against categories, refined with tags, and rolled up into
per-category, per-tag and per-day reports.`,
	}

	// Setup and maintenance
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.DevCmd())

	// Entity commands
	rootCmd.AddCommand(cli.CategoryCmd())
	rootCmd.AddCommand(cli.TagCmd())

	// Activity commands
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.EditCmd())
	rootCmd.AddCommand(cli.DeleteCmd())

	// Views and reports
	rootCmd.AddCommand(cli.TodayCmd())
	rootCmd.AddCommand(cli.YesterdayCmd())
	rootCmd.AddCommand(cli.WeekCmd())
	rootCmd.AddCommand(cli.RecentCmd())
	rootCmd.AddCommand(cli.RangeCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
