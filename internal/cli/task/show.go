package task

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/cli"
	"github.com/plaisio/plaisio/internal/dates"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if quietMode {
		fmt.Printf("%s\n", task.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(task)
	}

	fmt.Printf("%s\n", task.Title)
	fmt.Printf("  ID:       %s\n", task.ID)
	fmt.Printf("  Column:   %s\n", task.Status.Label())
	fmt.Printf("  Priority: %s\n", task.Priority.Label())
	if task.Subject != "" {
		fmt.Printf("  Subject:  %s\n", task.Subject)
	}
	if task.DueDate != "" {
		due := task.DueDate
		switch {
		case dates.IsOverdue(task.DueDate):
			due += " (overdue)"
		case dates.IsDueToday(task.DueDate):
			due += " (today)"
		}
		fmt.Printf("  Due:      %s\n", due)
	}
	if task.Description != "" {
		fmt.Printf("  Description:\n    %s\n", task.Description)
	}
	fmt.Printf("  Created:  %s\n", task.CreatedAt.Format(time.DateTime))
	fmt.Printf("  Updated:  %s\n", task.UpdatedAt.Format(time.DateTime))

	return nil
}
