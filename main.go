// ChipletSim is an analytical performance model for chiplet-based DNN
// accelerators.
package main

import "github.com/sarchlab/chipletsim/cmd"

func main() {
	cmd.Execute()
}
