package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/taskview"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tasks by title, description or subject",
		Long: `Search every task on the board, case-insensitively, across title,
description and subject. Results keep board order and are capped at the
first ten matches.

Examples:
  plaisio search algebra
  plaisio search "chapter 4" --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := args[0]

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

	matches := taskview.Search(app.Board.Snapshot().AllTasks(), query)

	if quietMode {
		for _, t := range matches {
			fmt.Printf("%s\n", t.ID)
		}
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"query":   query,
			"matches": matches,
		})
	}

	if len(matches) == 0 {
		fmt.Printf("No tasks match '%s'\n", query)
		return nil
	}
	fmt.Printf("Found %d task(s):\n", len(matches))
	for _, t := range matches {
		fmt.Printf("  %s\n", FormatTaskLine(t))
	}
	return nil
}
