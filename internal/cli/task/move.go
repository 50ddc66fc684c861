package task

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to another column",
		Long: `Move a task to another column. The task takes on the destination
column's status. By default it lands at the end of the column; use
--index to insert at a specific position.

Examples:
  plaisio task move 3f2a... --to=in-progress
  plaisio task move 3f2a... --to=done --index=0
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("to", "", "Destination column (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	// Past-the-end positions clamp to the end of the column.
	cmd.Flags().Int("index", 1<<30, "Position within the destination column")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	taskID := args[0]

	to, _ := cmd.Flags().GetString("to")
	index, _ := cmd.Flags().GetInt("index")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	dest, err := cli.ParseStatus(to)
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

	task, ok := app.Board.FindTask(taskID)
	if !ok {
		cli.ExitWithSuggestion(formatter, cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %s not found", taskID),
			"Use 'plaisio task list --all --quiet' to see task IDs")
	}

	if err := app.Board.MoveTask(taskID, task.Status, dest, index); err != nil {
		cli.Exit(formatter, cli.ExitCodeFor(err), "TASK_MOVE_ERROR", err.Error())
	}

	if err := app.Persist(); err != nil {
		cli.Exit(formatter, cli.ExitError, "PERSIST_ERROR", err.Error())
	}

	moved, _ := app.Board.FindTask(taskID)
	if quietMode || jsonOutput {
		return printTaskResult(formatter, quietMode, jsonOutput, moved, "moved")
	}
	fmt.Printf("✓ Task '%s' moved to %s\n", moved.Title, moved.Status.Label())
	return nil
}
