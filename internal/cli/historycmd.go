package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/models"
)

// UndoCmd returns the undo command
func UndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last board change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryStep(cmd, stepUndo)
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

// RedoCmd returns the redo command
func RedoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redo",
		Short: "Redo the last undone board change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryStep(cmd, stepRedo)
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

type historyStep int

const (
	stepUndo historyStep = iota
	stepRedo
)

func runHistoryStep(cmd *cobra.Command, step historyStep) error {
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

	var snap models.Snapshot
	var ok bool
	verb, errCode := "undo", "NOTHING_TO_UNDO"
	if step == stepRedo {
		verb, errCode = "redo", "NOTHING_TO_REDO"
		snap, ok = app.History.Redo()
	} else {
		snap, ok = app.History.Undo()
	}
	if !ok {
		Exit(formatter, ExitError, errCode, fmt.Sprintf("nothing to %s", verb))
	}

	app.Board.Restore(snap)

	if err := app.Persist(); err != nil {
		Exit(formatter, ExitError, "PERSIST_ERROR", err.Error())
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"action":   verb,
			"can_undo": app.History.CanUndo(),
			"can_redo": app.History.CanRedo(),
		})
	}
	fmt.Printf("✓ %s applied (%d further undo steps available)\n", verb, app.History.Depth())
	return nil
}
