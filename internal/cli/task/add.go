package task

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/board"
	"github.com/plaisio/plaisio/internal/cli"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task to one of the board columns.

Examples:
  # Simple task (human-readable output)
  plaisio task add --title="Read chapter 4"

  # Full example with all options
  plaisio task add \
    --title="Algebra homework" \
    --description="Exercises 1-20" \
    --column=in-progress \
    --priority=high \
    --subject=Math \
    --due=2026-09-05

  # Quiet mode for shell capture
  TASK_ID=$(plaisio task add --title="Read chapter 4" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("column", "todo", "Column: todo, in-progress, done")
	cmd.Flags().String("priority", "medium", "Priority: low, medium, high")
	cmd.Flags().String("subject", "", "Subject label")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	column, _ := cmd.Flags().GetString("column")
	priority, _ := cmd.Flags().GetString("priority")
	subject, _ := cmd.Flags().GetString("subject")
	due, _ := cmd.Flags().GetString("due")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	status, err := cli.ParseStatus(column)
	if err != nil {
		cli.ExitWithSuggestion(formatter, cli.ExitValidation, "INVALID_COLUMN",
			err.Error(), "Valid columns are: todo, in-progress, done")
	}
	prio, err := cli.ParsePriority(priority)
	if err != nil {
		cli.ExitWithSuggestion(formatter, cli.ExitValidation, "INVALID_PRIORITY",
			err.Error(), "Valid priorities are: low, medium, high")
	}

	// Handle description from stdin
	if description == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			cli.Exit(formatter, cli.ExitError, "STDIN_READ_ERROR", err.Error())
		}
		description = string(data)
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

	task, err := app.Board.AddTask(board.TaskInput{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    prio,
		Subject:     subject,
		DueDate:     due,
	})
	if err != nil {
		cli.Exit(formatter, cli.ExitCodeFor(err), "TASK_ADD_ERROR", err.Error())
	}

	if err := app.Persist(); err != nil {
		cli.Exit(formatter, cli.ExitError, "PERSIST_ERROR", err.Error())
	}

	if quietMode {
		fmt.Printf("%s\n", task.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task '%s' added to %s (ID: %s)\n", task.Title, task.Status.Label(), task.ID)
	fmt.Printf("  Priority: %s\n", task.Priority.Label())
	if task.Subject != "" {
		fmt.Printf("  Subject: %s\n", task.Subject)
	}
	if task.DueDate != "" {
		fmt.Printf("  Due: %s\n", task.DueDate)
	}

	return nil
}
