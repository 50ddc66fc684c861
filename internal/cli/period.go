package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/plaisio/plaisio/internal/dates"
)

// MonthCmd returns the month navigation command
func MonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Navigate the viewed month",
	}

	cmd.AddCommand(periodStepCmd("next", "Move the view one month forward", monthShift(1)))
	cmd.AddCommand(periodStepCmd("prev", "Move the view one month back", monthShift(-1)))
	cmd.AddCommand(periodStepCmd("current", "Jump the view to the real current month", func(string) (string, string, error) {
		start, end := dates.CurrentMonth()
		return start, end, nil
	}))

	return cmd
}

// WeekCmd returns the week navigation command
func WeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Navigate the viewed week",
	}

	cmd.AddCommand(periodStepCmd("next", "Move the view one week forward", weekShift(1)))
	cmd.AddCommand(periodStepCmd("prev", "Move the view one week back", weekShift(-1)))
	cmd.AddCommand(periodStepCmd("current", "Jump the view to the real current week", func(string) (string, string, error) {
		start, end := dates.CurrentWeek()
		return start, end, nil
	}))

	return cmd
}

func monthShift(delta int) func(string) (string, string, error) {
	return func(start string) (string, string, error) {
		return dates.ShiftMonth(start, delta)
	}
}

func weekShift(delta int) func(string) (string, string, error) {
	return func(start string) (string, string, error) {
		return dates.ShiftWeek(start, delta)
	}
}

// periodStepCmd builds one navigation subcommand around a shift function
// taking the current period start and returning the new bounds.
func periodStepCmd(use, short string, shift func(string) (string, string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeriodStep(cmd, shift)
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runPeriodStep(cmd *cobra.Command, shift func(string) (string, string, error)) error {
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

	currentStart, _ := app.Board.Period()
	start, end, err := shift(currentStart)
	if err != nil {
		Exit(formatter, ExitCodeFor(err), "PERIOD_ERROR", err.Error())
	}

	if err := app.Board.SetPeriod(start, end); err != nil {
		Exit(formatter, ExitCodeFor(err), "PERIOD_ERROR", err.Error())
	}

	if err := app.Persist(); err != nil {
		Exit(formatter, ExitError, "PERSIST_ERROR", err.Error())
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"start": start,
			"end":   end,
			"label": dates.FormatRange(start, end),
		})
	}
	fmt.Printf("Viewing %s (%s to %s)\n", dates.FormatRange(start, end), start, end)
	return nil
}
