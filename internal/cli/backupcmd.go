package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/backup"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board to JSON or CSV",
		Long: `Export the whole board. JSON exports round-trip through
'plaisio import'; CSV is a flat report for spreadsheets and cannot be
imported back.

Examples:
  plaisio export --out=backup.json
  plaisio export --csv --out=tasks.csv
  plaisio export > backup.json
`,
		RunE: runExport,
	}

	cmd.Flags().String("out", "", "Output file (default stdout)")
	cmd.Flags().Bool("csv", false, "Export as CSV instead of JSON")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	out, _ := cmd.Flags().GetString("out")
	asCSV, _ := cmd.Flags().GetBool("csv")
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

	snap := app.Board.Snapshot()

	var data []byte
	if asCSV {
		data, err = backup.MarshalCSV(snap)
	} else {
		data, err = backup.MarshalJSON(snap)
	}
	if err != nil {
		Exit(formatter, ExitCodeFor(err), "EXPORT_ERROR", err.Error())
	}

	if out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
		return nil
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		Exit(formatter, ExitError, "EXPORT_WRITE_ERROR", err.Error())
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"file":  out,
			"tasks": snap.TaskCount(),
		})
	}
	fmt.Printf("✓ Exported %d task(s) to %s\n", snap.TaskCount(), out)
	return nil
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the board with a JSON export",
		Long: `Replace the whole board with a previously exported JSON backup.
The backup is validated before anything is touched; a malformed file
leaves the board unchanged. A successful import becomes the new
baseline and clears the undo history.

Examples:
  plaisio import backup.json
  cat backup.json | plaisio import -
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	file := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		Exit(formatter, ExitError, "IMPORT_READ_ERROR", err.Error())
	}

	snap, err := backup.UnmarshalJSON(data)
	if err != nil {
		ExitWithSuggestion(formatter, ExitDataErr, "INVALID_BACKUP", err.Error(),
			"Only files produced by 'plaisio export' can be imported")
	}

	app, err := NewCLI(ctx)
	if err != nil {
		Exit(formatter, ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	app.Board.Restore(snap)
	// The import is a fresh baseline: old undo history no longer applies.
	app.History.Clear()
	app.History.SaveState(app.Board.Snapshot())

	if err := app.Persist(); err != nil {
		Exit(formatter, ExitError, "PERSIST_ERROR", err.Error())
	}

	imported := app.Board.Snapshot()
	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"tasks":   imported.TaskCount(),
			"columns": len(imported.Columns),
		})
	}
	fmt.Printf("✓ Imported %d task(s) across %d column(s)\n",
		imported.TaskCount(), len(imported.Columns))
	return nil
}
