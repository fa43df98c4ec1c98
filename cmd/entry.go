package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/storage"
	"github.com/misterclayt0n/loadout/internal/utils"
	"github.com/spf13/cobra"
)

var (
	entryDate     string
	entrySets     int
	entryReps     int
	entryWeight   float64
	entryRPE      float64
	entryDistance float64
	entryNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log [exercise-name]",
	Short: "Log a history entry for an exercise (defaults to today)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		ex, err := st.GetExerciseByName(args[0])
		if err != nil {
			return err
		}

		entry := models.HistoryEntry{Date: now()}
		if err := applyEntryFlags(cmd, &entry); err != nil {
			return err
		}

		if ex.Category == models.CategoryStrength && !cmd.Flags().Changed("rpe") {
			settings, err := loadSettings(st)
			if err != nil {
				return err
			}
			entry.RPE = settings.DefaultRPE
		}

		if err := st.AddHistoryEntry(ex.ID, &entry); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged %s on %s\n", ex.Name, utils.FormatDay(entry.Date))
		return nil
	},
}

var editEntryCmd = &cobra.Command{
	Use:   "edit-entry [exercise-name] [index]",
	Short: "Edit the history entry at the given position (1 is the first logged)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		ex, err := st.GetExerciseByName(args[0])
		if err != nil {
			return err
		}
		entries, err := st.HistoryByExercise(ex.ID)
		if err != nil {
			return err
		}
		if index < 1 || index > len(entries) {
			return fmt.Errorf("%s has %d entries: %w", ex.Name, len(entries), storage.ErrEntryIndex)
		}

		entry := entries[index-1]
		if err := applyEntryFlags(cmd, &entry); err != nil {
			return err
		}
		if err := st.UpdateHistoryEntry(ex.ID, index, entry); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Updated entry %d of %s\n", index, ex.Name)
		return nil
	},
}

var deleteEntryCmd = &cobra.Command{
	Use:   "delete-entry [exercise-name] [index]",
	Short: "Delete the history entry at the given position (1 is the first logged)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		ex, err := st.GetExerciseByName(args[0])
		if err != nil {
			return err
		}
		if err := st.DeleteHistoryEntry(ex.ID, index); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Deleted entry %d of %s\n", index, ex.Name)
		return nil
	},
}

// applyEntryFlags copies every flag the user set onto the entry.
func applyEntryFlags(cmd *cobra.Command, entry *models.HistoryEntry) error {
	flags := cmd.Flags()
	if flags.Changed("date") {
		d, err := utils.ParseDay(entryDate)
		if err != nil {
			return err
		}
		entry.Date = d
	}
	if flags.Changed("sets") {
		entry.Sets = entrySets
	}
	if flags.Changed("reps") {
		entry.Reps = entryReps
	}
	if flags.Changed("weight") {
		entry.Weight = entryWeight
	}
	if flags.Changed("rpe") {
		entry.RPE = entryRPE
	}
	if flags.Changed("distance") {
		entry.Distance = entryDistance
	}
	if flags.Changed("notes") {
		entry.Notes = entryNotes
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{logCmd, editEntryCmd} {
		c.Flags().StringVar(&entryDate, "date", "", "Day of the workout (e.g. 2025-02-07 or 07/02/25)")
		c.Flags().IntVarP(&entrySets, "sets", "s", 0, "Sets")
		c.Flags().IntVarP(&entryReps, "reps", "r", 0, "Reps per set")
		c.Flags().Float64VarP(&entryWeight, "weight", "w", 0, "Weight (kg)")
		c.Flags().Float64Var(&entryRPE, "rpe", 0, "RPE")
		c.Flags().Float64Var(&entryDistance, "distance", 0, "Distance (endurance)")
		c.Flags().StringVar(&entryNotes, "notes", "", "Notes")
	}

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(editEntryCmd)
	rootCmd.AddCommand(deleteEntryCmd)
}
