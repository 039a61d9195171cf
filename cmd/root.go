// Package cmd provides the command-line interface for ChipletSim.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chipletsim",
	Short: "ChipletSim evaluates performance models of chiplet-based DNN accelerators.",
	Long: `ChipletSim evaluates an analytical performance model of chiplet-based ` +
		`DNN accelerators. It estimates latency, congestion, throughput, energy ` +
		`efficiency, and communication overhead from the chiplet count, the ` +
		`workload, and the partitioning quality.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
