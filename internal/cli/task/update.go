package task

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/board"
	"github.com/plaisio/plaisio/internal/cli"
	"github.com/plaisio/plaisio/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's fields",
		Long: `Update fields of an existing task. Only the flags you pass change;
everything else is left untouched. A task's column cannot change here,
use 'plaisio task move' for that.

Examples:
  plaisio task update 3f2a... --title="Read chapters 4-5"
  plaisio task update 3f2a... --priority=high --due=2026-09-05
  plaisio task update 3f2a... --due=""   # clear the due date
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("subject", "", "New subject label")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD, empty to clear)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	taskID := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var changes board.TaskChanges
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		changes.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		changes.Description = &description
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		prio, err := cli.ParsePriority(raw)
		if err != nil {
			cli.ExitWithSuggestion(formatter, cli.ExitValidation, "INVALID_PRIORITY",
				err.Error(), "Valid priorities are: low, medium, high")
		}
		changes.Priority = &prio
	}
	if cmd.Flags().Changed("subject") {
		subject, _ := cmd.Flags().GetString("subject")
		changes.Subject = &subject
	}
	if cmd.Flags().Changed("due") {
		due, _ := cmd.Flags().GetString("due")
		changes.DueDate = &due
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

	if _, ok := app.Board.FindTask(taskID); !ok {
		cli.ExitWithSuggestion(formatter, cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Sprintf("task %s not found", taskID),
			"Use 'plaisio task list --all --quiet' to see task IDs")
	}

	if err := app.Board.UpdateTask(taskID, changes); err != nil {
		cli.Exit(formatter, cli.ExitCodeFor(err), "TASK_UPDATE_ERROR", err.Error())
	}

	if err := app.Persist(); err != nil {
		cli.Exit(formatter, cli.ExitError, "PERSIST_ERROR", err.Error())
	}

	task, _ := app.Board.FindTask(taskID)
	return printTaskResult(formatter, quietMode, jsonOutput, task, "updated")
}

// printTaskResult renders the mutated task in the selected output mode.
func printTaskResult(formatter *cli.OutputFormatter, quietMode, jsonOutput bool, task models.Task, verb string) error {
	if quietMode {
		fmt.Printf("%s\n", task.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(task)
	}
	fmt.Printf("✓ Task '%s' %s\n", task.Title, verb)
	return nil
}
