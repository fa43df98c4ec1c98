package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/spf13/cobra"
)

var defaultRPE float64

var intervalCmd = &cobra.Command{
	Use:   "interval [days]",
	Short: fmt.Sprintf("Show or set the training interval (1-%d days) used by stats", models.MaxTrainingInterval),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid number of days %q: %w", args[0], err)
			}
			if err := st.SetTrainingInterval(days); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("default-rpe") {
			if err := st.SetDefaultRPE(defaultRPE); err != nil {
				return err
			}
		}

		settings, err := loadSettings(st)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Training interval: %d days\n", settings.TrainingInterval)
		fmt.Fprintf(out, "Default RPE: %g\n", settings.DefaultRPE)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intervalCmd)
	intervalCmd.Flags().Float64Var(&defaultRPE, "default-rpe", models.DefaultRPE, "Set the RPE used when a strength entry is logged without one")
}
