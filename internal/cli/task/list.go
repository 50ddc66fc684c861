package task

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/cli"
	"github.com/plaisio/plaisio/internal/dates"
	"github.com/plaisio/plaisio/internal/filterstate"
	"github.com/plaisio/plaisio/internal/models"
	"github.com/plaisio/plaisio/internal/taskview"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks on the board",
		Long: `List tasks per column for the currently viewed period.

Done tasks from the immediately preceding month stay visible while the
viewed period is the real current month.

Examples:
  # The full board for the viewed period
  plaisio task list

  # One column, high and medium priority only
  plaisio task list --column=todo --priority=high --priority=medium

  # One subject across all columns, ignoring the viewed period
  plaisio task list --subject=Math --all
`,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Limit to one column: todo, in-progress, done")
	cmd.Flags().StringSlice("priority", nil, "Keep only these priorities (repeatable)")
	cmd.Flags().String("subject", "", "Keep only this subject")
	cmd.Flags().Bool("all", false, "Ignore the viewed period")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// columnListing is one column's slice of the list output.
type columnListing struct {
	ID    models.Status `json:"id"`
	Title string        `json:"title"`
	Tasks []models.Task `json:"tasks"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	column, _ := cmd.Flags().GetString("column")
	priorities, _ := cmd.Flags().GetStringSlice("priority")
	subject, _ := cmd.Flags().GetString("subject")
	allPeriods, _ := cmd.Flags().GetBool("all")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var only models.Status
	if column != "" {
		status, err := cli.ParseStatus(column)
		if err != nil {
			cli.ExitWithSuggestion(formatter, cli.ExitValidation, "INVALID_COLUMN",
				err.Error(), "Valid columns are: todo, in-progress, done")
		}
		only = status
	}

	filters := filterstate.New()
	for _, p := range priorities {
		prio, err := cli.ParsePriority(p)
		if err != nil {
			cli.ExitWithSuggestion(formatter, cli.ExitValidation, "INVALID_PRIORITY",
				err.Error(), "Valid priorities are: low, medium, high")
		}
		for _, status := range models.Statuses {
			if !filters.IsPrioritySelected(status, prio) {
				filters.TogglePriority(status, prio)
			}
		}
	}
	filters.SetSubject(subject)

	app, err := cli.NewCLI(ctx)
	if err != nil {
		cli.Exit(formatter, cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	start, end := app.Board.Period()

	var listings []columnListing
	for _, col := range app.Board.Columns() {
		if only != "" && col.ID != only {
			continue
		}
		tasks := col.Tasks
		if !allPeriods {
			tasks = taskview.VisibleInPeriod(col, start, end)
		}
		tasks = taskview.FilterByPriority(tasks, filters.Allowed(col.ID))
		tasks = taskview.FilterBySubject(tasks, filters.Subject())
		tasks = taskview.SortByDueThenPriority(tasks)
		listings = append(listings, columnListing{ID: col.ID, Title: col.Title, Tasks: tasks})
	}

	if quietMode {
		for _, listing := range listings {
			for _, t := range listing.Tasks {
				fmt.Printf("%s\n", t.ID)
			}
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"period":  dates.FormatRange(start, end),
			"columns": listings,
		})
	}

	fmt.Printf("Period: %s\n", dates.FormatRange(start, end))
	for _, listing := range listings {
		fmt.Printf("\n%s (%d)\n", listing.Title, len(listing.Tasks))
		for _, t := range listing.Tasks {
			fmt.Printf("  %s\n", cli.FormatTaskLine(t))
		}
	}

	return nil
}
