package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/misterclayt0n/loadout/internal/plans"
	"github.com/misterclayt0n/loadout/internal/storage"
	"github.com/misterclayt0n/loadout/internal/volume"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// reallocate recomputes weekly sets for the given buckets, or for every bucket
// when none are given, and saves the result in one transaction.
func reallocate(st *storage.Storage, buckets ...models.Bucket) ([]models.Exercise, error) {
	exercises, err := st.ListExercises()
	if err != nil {
		return nil, err
	}
	table, err := cfg.VolumeTable()
	if err != nil {
		return nil, err
	}

	if len(buckets) == 0 {
		exercises = volume.AllocateAll(exercises, table)
	} else {
		for _, b := range buckets {
			exercises = volume.AllocateBucket(exercises, b.MuscleGroup, b.Category, table)
			logrus.WithFields(logrus.Fields{
				"bucket": b.MuscleGroup + "/" + string(b.Category),
				"volume": table.Lookup(b.Category, b.MuscleGroup),
			}).Debug("bucket reallocated")
		}
	}

	if err := st.SaveExercises(exercises); err != nil {
		return nil, fmt.Errorf("failed to save weekly sets: %w", err)
	}
	return exercises, nil
}

var (
	allocMuscle   string
	allocCategory string
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Recompute weekly sets from priorities, for one muscle group/category or for everything",
	RunE: func(cmd *cobra.Command, args []string) error {
		var buckets []models.Bucket
		if allocMuscle != "" || allocCategory != "" {
			if allocMuscle == "" || allocCategory == "" {
				return fmt.Errorf("--muscle and --category go together")
			}
			category, ok := models.ParseCategory(allocCategory)
			if !ok {
				return fmt.Errorf("unknown category %q", allocCategory)
			}
			buckets = append(buckets, models.Bucket{MuscleGroup: allocMuscle, Category: category})
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exercises, err := reallocate(st, buckets...)
		if err != nil {
			return err
		}

		if len(buckets) > 0 {
			var inBucket []models.Exercise
			for _, ex := range exercises {
				if ex.InBucket(buckets[0].MuscleGroup, buckets[0].Category) {
					inBucket = append(inBucket, ex)
				}
			}
			exercises = inBucket
		}

		printExercises(cmd.OutOrStdout(), exercises)
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:       "plan [strength|mobility|cardio]",
	Short:     "Load a suggested plan and allocate its weekly sets",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: plans.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			for _, key := range plans.Keys() {
				plan, _ := plans.Get(key)
				names := make([]string, 0, len(plan.Exercises))
				for _, ex := range plan.Exercises {
					names = append(names, ex.Name)
				}
				fmt.Fprintf(out, "%s (%s): %s\n", boldCyan(key), plan.Category, strings.Join(names, ", "))
			}
			return nil
		}

		plan, ok := plans.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown plan %q, expected one of %s", args[0], strings.Join(plans.Keys(), ", "))
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportExercises(plan.Exercises); err != nil {
			return fmt.Errorf("failed to load plan %s: %w", plan.Name, err)
		}

		buckets := volume.Buckets(plan.Exercises)
		if _, err := reallocate(st, buckets...); err != nil {
			return err
		}

		fmt.Fprintf(out, "✅ Loaded plan %s with %d exercises\n", plan.Name, len(plan.Exercises))
		return nil
	},
}

func init() {
	allocateCmd.Flags().StringVarP(&allocMuscle, "muscle", "m", "", "Muscle group")
	allocateCmd.Flags().StringVarP(&allocCategory, "category", "c", "", "Category (strength, endurance, mobility)")

	rootCmd.AddCommand(allocateCmd)
	rootCmd.AddCommand(planCmd)
}
