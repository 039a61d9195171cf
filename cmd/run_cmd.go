package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/chipletsim/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate a single simulation point and print the result as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		chiplets, _ := cmd.Flags().GetInt("chiplets")
		cores, _ := cmd.Flags().GetInt("cores-per-chiplet")
		workloadName, _ := cmd.Flags().GetString("workload")
		quality, _ := cmd.Flags().GetFloat64("partitioning-quality")

		sim := simulation.MakeBuilder().Build()

		result, err := sim.Run(chiplets, workloadName, quality, cores)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	},
}

func init() {
	runCmd.Flags().Int("chiplets", 4, "number of chiplets")
	runCmd.Flags().Int("cores-per-chiplet", 16, "cores per chiplet (label only)")
	runCmd.Flags().String("workload", "ResNet-50", "workload name")
	runCmd.Flags().Float64("partitioning-quality", 0.75,
		"partitioning quality in [0.0, 1.0]")

	rootCmd.AddCommand(runCmd)
}
