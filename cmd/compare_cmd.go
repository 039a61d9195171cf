package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sarchlab/chipletsim/simulation"
)

// compareChipletCounts are the chiplet counts evaluated by the compare
// command.
var compareChipletCounts = []int{2, 4, 8, 16}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Sweep all workloads across all chiplet counts into one file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		cores, _ := cmd.Flags().GetInt("cores-per-chiplet")
		steps, _ := cmd.Flags().GetInt("steps")
		output, _ := cmd.Flags().GetString("output")
		useSQLite, _ := cmd.Flags().GetBool("sqlite")

		sim := simulation.MakeBuilder().Build()

		var allResults []simulation.Result

		for _, workloadName := range sim.Registry().Names() {
			for _, chiplets := range compareChipletCounts {
				results, err := sim.Sweep(chiplets, workloadName, steps, cores)
				if err != nil {
					return err
				}

				allResults = append(allResults, results...)
			}
		}

		return saveResults(allResults, output, useSQLite)
	},
}

func init() {
	compareCmd.Flags().Int("cores-per-chiplet", 16, "cores per chiplet (label only)")
	compareCmd.Flags().Int("steps", 11, "number of quality steps per sweep")
	compareCmd.Flags().String("output", "full_comparison",
		"output filename without extension")
	compareCmd.Flags().Bool("sqlite", false,
		"write a SQLite database instead of a CSV file")

	rootCmd.AddCommand(compareCmd)
}
