package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/dates"
	"github.com/plaisio/plaisio/internal/taskview"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics for the viewed period",
		RunE:  runStats,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (progress percent only)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	app, err := NewCLI(ctx)
	if err != nil {
		Exit(formatter, ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	start, end := app.Board.Period()
	stats := taskview.PeriodStats(app.Board.Columns(), start, end)

	if quietMode {
		fmt.Printf("%d\n", stats.Progress)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"period": dates.FormatRange(start, end),
			"stats":  stats,
		})
	}

	fmt.Printf("%s\n", dates.FormatRange(start, end))
	fmt.Printf("  Tasks:    %d\n", stats.Total)
	fmt.Printf("  Done:     %d\n", stats.Done)
	fmt.Printf("  Overdue:  %d\n", stats.Overdue)
	fmt.Printf("  Progress: %d%%\n", stats.Progress)
	return nil
}

// SubjectsCmd returns the subjects command
func SubjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List subject labels with task counts",
		RunE:  runSubjects,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (labels only)")

	return cmd
}

func runSubjects(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	app, err := NewCLI(ctx)
	if err != nil {
		Exit(formatter, ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	subjects := taskview.Subjects(app.Board.Columns())

	if quietMode {
		for _, s := range subjects {
			fmt.Printf("%s\n", s.Subject)
		}
		return nil
	}
	if jsonOutput {
		return formatter.Success(subjects)
	}

	if len(subjects) == 0 {
		fmt.Println("No subjects in use")
		return nil
	}
	for _, s := range subjects {
		fmt.Printf("%s (%d)\n", s.Subject, s.Count)
	}
	return nil
}
