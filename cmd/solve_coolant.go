package cmd

import (
	"fmt"
	"os"

	"github.com/rbhale-git/laser-tms/internal/diagram"
	"github.com/rbhale-git/laser-tms/internal/solver"
	"github.com/rbhale-git/laser-tms/internal/units"
	"github.com/spf13/cobra"
)

var (
	coolantLoad    float64
	coolantDTWater float64
)

var solveCoolantCmd = &cobra.Command{
	Use:   "coolant",
	Short: "Size the chilled-water flow for a heat load",
	Long: `Calculate the coolant flow the coil needs to reject a heat load at
a given water-side temperature rise.

Examples:
  # 100 W at the default 2 K water-side rise
  laser-tms solve coolant

  # 2.5 kW at a 4 K rise
  laser-tms solve coolant --load 2500 --dt-water 4`,
	Run: runSolveCoolant,
}

func init() {
	solveCmd.AddCommand(solveCoolantCmd)

	solveCoolantCmd.Flags().Float64VarP(&coolantLoad, "load", "q", 100, "Total heat load (W)")
	solveCoolantCmd.Flags().Float64Var(&coolantDTWater, "dt-water", 2, "Water-side temperature rise ΔT_water (K)")
}

func runSolveCoolant(cmd *cobra.Command, args []string) {
	res, err := solver.CoolantFlow(coolantLoad, coolantDTWater)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	lpm := units.KgPerSecToLPMWater(res.CoolantKgS)

	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("REQUIRED COOLANT FLOW", []string{
		fmt.Sprintf("Mass flow:    %.4f kg/s", res.CoolantKgS),
		fmt.Sprintf("Volume flow:  %.2f L/min", lpm),
		fmt.Sprintf("              %.3f GPM", units.LPMToGPM(lpm)),
	}))
	fmt.Println()
}
