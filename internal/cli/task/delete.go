package task

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Long: `Delete a task from whichever column holds it.

Examples:
  plaisio task delete 3f2a...
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	taskID := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	app, err := cli.NewCLI(ctx)
	if err != nil {
		cli.Exit(formatter, cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	task, ok := app.Board.FindTask(taskID)
	if !ok {
		cli.ExitWithSuggestion(formatter, cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %s not found", taskID),
			"Use 'plaisio task list --all --quiet' to see task IDs")
	}

	app.Board.DeleteTask(taskID)

	if err := app.Persist(); err != nil {
		cli.Exit(formatter, cli.ExitError, "PERSIST_ERROR", err.Error())
	}

	return printTaskResult(formatter, quietMode, jsonOutput, task, "deleted")
}
