package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/loadout/internal/load"
	"github.com/misterclayt0n/loadout/internal/models"
	"github.com/spf13/cobra"
)

const barWidth = 30

var statsCategory string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-day training load, moving average and targets for the training interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := models.Categories
		if statsCategory != "" {
			c, ok := models.ParseCategory(statsCategory)
			if !ok {
				return fmt.Errorf("unknown category %q", statsCategory)
			}
			categories = []models.Category{c}
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exercises, err := st.ListExercises()
		if err != nil {
			return err
		}
		history, err := st.ListHistory()
		if err != nil {
			return err
		}
		settings, err := loadSettings(st)
		if err != nil {
			return err
		}

		summary := load.Aggregate(exercises, history, settings.TrainingInterval, now())
		renderStats(cmd.OutOrStdout(), summary, categories)
		return nil
	},
}

func renderStats(out io.Writer, summary load.Summary, categories []models.Category) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(out, "%s %d days\n", boldGreen("Training interval:"), summary.Interval)

	for _, c := range categories {
		stats := summary.For(c)
		fmt.Fprintf(out, "\n%s\n", boldCyan(strings.ToUpper(string(c))))

		if !stats.HasData() {
			fmt.Fprintln(out, magenta("  No entries in this interval."))
		} else {
			scale := stats.TargetPerDay()
			for _, v := range stats.LoadByDay {
				scale = math.Max(scale, v)
			}
			targetMark := -1
			if scale > 0 {
				targetMark = min(int(math.Round(stats.TargetPerDay()/scale*barWidth)), barWidth-1)
			}
			if stats.TargetPerDay() <= 0 {
				targetMark = -1
			}

			fmt.Fprintf(out, "  %-10s | %-8s | %-8s | %s\n", "Day", "Load", "Avg", "")
			for i, v := range stats.LoadByDay {
				day := summary.Now.AddDate(0, 0, i-len(stats.LoadByDay)+1)
				avg := 0.0
				if i < len(stats.MovingAverage) {
					avg = stats.MovingAverage[i]
				}
				fmt.Fprintf(out, "  %-10s | %-8.1f | %-8.1f | %s\n",
					day.Format("Mon 02/01"), v, avg, bar(v, scale, targetMark))
			}
			fmt.Fprintf(out, "  %s %.1f (%s)\n", yellow("Target per day:"), stats.TargetPerDay(), yellow("|"))
		}

		fmt.Fprintf(out, "  %s %s / %.1f\n", blue("Load:"), colorByProgress(stats.ActualLoad, stats.TargetLoad, red), stats.TargetLoad)
		if c != models.CategoryEndurance {
			fmt.Fprintf(out, "  %s %s / %d\n", blue("Sets:"),
				colorByProgress(float64(stats.ActualSets), float64(stats.TargetSets), red), stats.TargetSets)
		}
	}
}

// bar draws v on a fixed width scale with the target marked by '|'.
func bar(v, scale float64, targetMark int) string {
	if scale <= 0 {
		return ""
	}
	n := int(math.Round(v / scale * barWidth))
	var sb strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case i == targetMark:
			sb.WriteByte('|')
		case i < n:
			sb.WriteString("█")
		default:
			sb.WriteByte(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func colorByProgress(actual, target float64, behind func(a ...interface{}) string) string {
	s := fmt.Sprintf("%.1f", actual)
	if target > 0 && actual < target {
		return behind(s)
	}
	return color.New(color.FgGreen).Sprint(s)
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsCategory, "category", "c", "", "Only show one category (strength, endurance, mobility)")
}
