package task

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/cli"
)

// ReorderCmd returns the task reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Reorder tasks within a column",
		Long: `Move the task at one position to another position within the same
column. Positions are zero-based and count the column's stored order,
not a filtered view.

Examples:
  plaisio task reorder --column=todo --from=3 --to=0
`,
		RunE: runReorder,
	}

	cmd.Flags().String("column", "", "Column to reorder (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("from", 0, "Current position of the task")
	cmd.Flags().Int("to", 0, "New position of the task")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	column, _ := cmd.Flags().GetString("column")
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	status, err := cli.ParseStatus(column)
	if err != nil {
		cli.ExitWithSuggestion(formatter, cli.ExitValidation, "INVALID_COLUMN",
			err.Error(), "Valid columns are: todo, in-progress, done")
	}

	app, err := cli.NewCLI(ctx)
	if err != nil {
		cli.Exit(formatter, cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if err := app.Board.ReorderTasks(status, from, to); err != nil {
		cli.Exit(formatter, cli.ExitCodeFor(err), "TASK_REORDER_ERROR", err.Error())
	}

	if err := app.Persist(); err != nil {
		cli.Exit(formatter, cli.ExitError, "PERSIST_ERROR", err.Error())
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"column": status, "from": from, "to": to,
		})
	}
	fmt.Printf("✓ Moved %s task from position %d to %d\n", status.Label(), from, to)
	return nil
}
