package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/loadout/internal/utils"
	"github.com/spf13/cobra"
)

var oneRMFormula string

// historyCmd shows an exercise's entries in the order they were logged.
var historyCmd = &cobra.Command{
	Use:   "history [exercise-name]",
	Short: "Display the logged entries of an exercise with an estimated 1RM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formula := strings.ToLower(oneRMFormula)
		if formula != utils.FormulaEpley && formula != utils.FormulaBrzycki {
			return fmt.Errorf("unknown formula %q, expected %s or %s", oneRMFormula, utils.FormulaEpley, utils.FormulaBrzycki)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		ex, err := st.GetExerciseByName(args[0])
		if err != nil {
			return fmt.Errorf("failed to get exercise: %w", err)
		}
		entries, err := st.HistoryByExercise(ex.ID)
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s, %s)\n", boldGreen("History for"), ex.Name, ex.Category, ex.MuscleGroup)
		if ex.Description != "" {
			fmt.Fprintf(out, "  %s: %s\n", boldCyan("Description"), ex.Description)
		}
		fmt.Fprintf(out, "  %s: %d\n", boldCyan("Weekly sets"), ex.WeeklySets)
		if len(entries) == 0 {
			fmt.Fprintln(out, magenta("  No entries logged."))
			return nil
		}

		fmt.Fprintf(out, "  %-3s | %-10s | %-4s | %-4s | %-8s | %-4s | %-8s | %-6s\n",
			"#", "Date", "Sets", "Reps", "Weight", "RPE", "Distance", "1RM")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 72))

		best := 0.0
		for i, e := range entries {
			oneRM := utils.Estimate1RM(formula, e.Weight, e.Reps)
			if oneRM > best {
				best = oneRM
			}
			fmt.Fprintf(out, "  %-3d | %-10s | %-4d | %-4d | %-8.1f | %-4.1f | %-8.1f | %-6.1f",
				i+1, utils.FormatDay(e.Date), e.Sets, e.Reps, e.Weight, e.RPE, e.Distance, oneRM)
			if e.Notes != "" {
				fmt.Fprintf(out, " %s", magenta(e.Notes))
			}
			fmt.Fprintln(out)
		}

		if best > 0 {
			fmt.Fprintf(out, "  %s: %.1fkg\n", yellow("Best estimated 1RM ("+formula+")"), best)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&oneRMFormula, "formula", "f", utils.FormulaEpley, "1RM formula (epley or brzycki)")
}
