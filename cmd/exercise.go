package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/volume"
	"github.com/spf13/cobra"
)

var (
	exerciseName       string
	exerciseDesc       string
	exerciseCategory   string
	exerciseMuscle     string
	exercisePriority   int
	exerciseSelected   bool
	exerciseTargetRPE  float64
	exerciseDistance   float64
	exerciseWeeklySets int
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Create a new exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, ok := models.ParseCategory(exerciseCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", exerciseCategory)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exercise := &models.Exercise{
			Name:        strings.TrimSpace(exerciseName),
			Description: exerciseDesc,
			Category:    category,
			MuscleGroup: strings.TrimSpace(exerciseMuscle),
			Priority:    exercisePriority,
			IsSelected:  exerciseSelected,
			TargetRPE:   exerciseTargetRPE,
			Distance:    exerciseDistance,
			WeeklySets:  exerciseWeeklySets,
		}

		if err := st.CreateExercise(exercise); err != nil {
			return fmt.Errorf("Failed to create exercise: %w", err)
		}

		// An explicit weekly sets value is a manual override.
		if !cmd.Flags().Changed("weekly-sets") {
			if _, err := reallocate(st, models.Bucket{MuscleGroup: exercise.MuscleGroup, Category: category}); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created exercise: %s\n", exercise.Name)
		return nil
	},
}

var importExercisesCmd = &cobra.Command{
	Use:   "import-exercises [file]",
	Short: "Import exercises from TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var importData models.ExerciseImport
		if _, err := toml.DecodeFile(args[0], &importData); err != nil {
			return fmt.Errorf("invalid TOML format: %w", err)
		}

		exercises := make([]models.Exercise, 0, len(importData.Exercises))
		for _, def := range importData.Exercises {
			ex, err := def.ToExercise()
			if err != nil {
				return err
			}
			exercises = append(exercises, ex)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportExercises(exercises); err != nil {
			return fmt.Errorf("failed to import exercises: %w", err)
		}
		if _, err := reallocate(st); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d exercises\n", len(exercises))
		return nil
	},
}

var editExerciseCmd = &cobra.Command{
	Use:   "edit-exercise [name]",
	Short: "Edit an exercise; weekly sets are reallocated when priority, selection, category or muscle change",
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
		before := models.Bucket{MuscleGroup: ex.MuscleGroup, Category: ex.Category}

		flags := cmd.Flags()
		if flags.Changed("name") {
			ex.Name = strings.TrimSpace(exerciseName)
		}
		if flags.Changed("description") {
			ex.Description = exerciseDesc
		}
		if flags.Changed("category") {
			category, ok := models.ParseCategory(exerciseCategory)
			if !ok {
				return fmt.Errorf("unknown category %q", exerciseCategory)
			}
			ex.Category = category
		}
		if flags.Changed("muscle") {
			ex.MuscleGroup = strings.TrimSpace(exerciseMuscle)
		}
		if flags.Changed("priority") {
			ex.Priority = exercisePriority
		}
		if flags.Changed("selected") {
			ex.IsSelected = exerciseSelected
		}
		if flags.Changed("target-rpe") {
			ex.TargetRPE = exerciseTargetRPE
		}
		if flags.Changed("distance") {
			ex.Distance = exerciseDistance
		}
		if flags.Changed("weekly-sets") {
			ex.WeeklySets = exerciseWeeklySets
		}

		if err := st.UpdateExercise(*ex); err != nil {
			return err
		}

		allocationChanged := flags.Changed("priority") || flags.Changed("selected") ||
			flags.Changed("category") || flags.Changed("muscle")
		if allocationChanged && !flags.Changed("weekly-sets") {
			buckets := []models.Bucket{before}
			if after := (models.Bucket{MuscleGroup: ex.MuscleGroup, Category: ex.Category}); after != before {
				buckets = append(buckets, after)
			}
			if _, err := reallocate(st, buckets...); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Updated exercise: %s\n", ex.Name)
		return nil
	},
}

var deleteExerciseCmd = &cobra.Command{
	Use:   "delete-exercise [name]",
	Short: "Delete an exercise and its history",
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
		if err := st.DeleteExercise(ex.ID); err != nil {
			return fmt.Errorf("Failed to delete exercise: %w", err)
		}
		if _, err := reallocate(st, models.Bucket{MuscleGroup: ex.MuscleGroup, Category: ex.Category}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Deleted exercise: %s\n", ex.Name)
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List exercises grouped by category and muscle group with their weekly sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exercises, err := st.ListExercises()
		if err != nil {
			return err
		}
		printExercises(cmd.OutOrStdout(), exercises)
		return nil
	},
}

func printExercises(out io.Writer, exercises []models.Exercise) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if len(exercises) == 0 {
		fmt.Fprintln(out, magenta("No exercises yet. Try `loadout plan strength`."))
		return
	}

	buckets := volume.Buckets(exercises)
	sort.SliceStable(buckets, func(i, j int) bool {
		return categoryRank(buckets[i].Category) < categoryRank(buckets[j].Category)
	})

	var lastCategory models.Category
	for _, b := range buckets {
		if b.Category != lastCategory {
			fmt.Fprintln(out, boldGreen(strings.ToUpper(string(b.Category))))
			lastCategory = b.Category
		}
		fmt.Fprintf(out, "  %s (%d sets/week)\n", boldCyan(b.MuscleGroup), volume.BucketSets(exercises, b.MuscleGroup, b.Category))
		for _, ex := range exercises {
			if !ex.InBucket(b.MuscleGroup, b.Category) {
				continue
			}
			line := fmt.Sprintf("    %-24s priority %d  %s", ex.Name, ex.Priority, yellow(fmt.Sprintf("%d sets", ex.WeeklySets)))
			if !ex.IsSelected {
				line += magenta("  (not selected)")
			}
			fmt.Fprintln(out, line)
		}
	}
}

func categoryRank(c models.Category) int {
	for i, cat := range models.Categories {
		if cat == c {
			return i
		}
	}
	return len(models.Categories)
}

func init() {
	for _, c := range []*cobra.Command{addExerciseCmd, editExerciseCmd} {
		c.Flags().StringVarP(&exerciseName, "name", "n", "", "Exercise name")
		c.Flags().StringVarP(&exerciseDesc, "description", "d", "", "Exercise description")
		c.Flags().StringVarP(&exerciseCategory, "category", "c", string(models.CategoryStrength), "Category (strength, endurance, mobility)")
		c.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "Muscle group")
		c.Flags().IntVarP(&exercisePriority, "priority", "p", 1, "Priority, 0 or less excludes it from allocation")
		c.Flags().BoolVar(&exerciseSelected, "selected", true, "Whether the exercise takes part in allocation")
		c.Flags().Float64Var(&exerciseTargetRPE, "target-rpe", 0, "Target RPE (strength)")
		c.Flags().Float64Var(&exerciseDistance, "distance", 0, "Distance per set (endurance)")
		c.Flags().IntVar(&exerciseWeeklySets, "weekly-sets", 0, "Weekly sets, overrides allocation")
	}

	addExerciseCmd.MarkFlagRequired("name")
	addExerciseCmd.MarkFlagRequired("muscle")

	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(importExercisesCmd)
	rootCmd.AddCommand(editExerciseCmd)
	rootCmd.AddCommand(deleteExerciseCmd)
	rootCmd.AddCommand(listExercisesCmd)
}
