package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/chipletsim/datarecording"
	"github.com/sarchlab/chipletsim/simulation"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep partitioning quality from 0 to 1 and save the results",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		chiplets, _ := cmd.Flags().GetInt("chiplets")
		cores, _ := cmd.Flags().GetInt("cores-per-chiplet")
		workloadName, _ := cmd.Flags().GetString("workload")
		steps, _ := cmd.Flags().GetInt("steps")
		output, _ := cmd.Flags().GetString("output")
		useSQLite, _ := cmd.Flags().GetBool("sqlite")

		sim := simulation.MakeBuilder().Build()

		results, err := sim.Sweep(chiplets, workloadName, steps, cores)
		if err != nil {
			return err
		}

		return saveResults(results, output, useSQLite)
	},
}

func init() {
	sweepCmd.Flags().Int("chiplets", 4, "number of chiplets")
	sweepCmd.Flags().Int("cores-per-chiplet", 16, "cores per chiplet (label only)")
	sweepCmd.Flags().String("workload", "ResNet-50", "workload name")
	sweepCmd.Flags().Int("steps", 21,
		"number of quality steps (21 gives 0.00, 0.05, ..., 1.00)")
	sweepCmd.Flags().String("output", "sweep",
		"output filename without extension")
	sweepCmd.Flags().Bool("sqlite", false,
		"write a SQLite database instead of a CSV file")

	rootCmd.AddCommand(sweepCmd)
}

func saveResults(
	results []simulation.Result,
	output string,
	useSQLite bool,
) error {
	builder := datarecording.MakeRecorderBuilder().WithFilename(output)

	extension := ".csv"
	if useSQLite {
		builder = builder.WithSQLiteBackend()
		extension = ".sqlite3"
	}

	recorder := builder.Build()
	for _, r := range results {
		recorder.AddResult(r)
	}

	err := recorder.Close()
	if err != nil {
		return err
	}

	fmt.Printf("Saved %d rows to %s%s\n", len(results), output, extension)

	return nil
}
