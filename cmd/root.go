package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/cli"
	"github.com/plaisio/plaisio/internal/cli/task"
)

var rootCmd = &cobra.Command{
	Use:   "plaisio",
	Short: "Plaisio - A personal task board",
	Long: `Plaisio is a personal task board: three status columns, monthly and
weekly views, and full undo/redo across invocations.`,
}

func init() {
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.UndoCmd())
	rootCmd.AddCommand(cli.RedoCmd())
	rootCmd.AddCommand(cli.MonthCmd())
	rootCmd.AddCommand(cli.WeekCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.SubjectsCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
