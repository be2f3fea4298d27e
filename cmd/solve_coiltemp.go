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
	coilTempLoad      float64
	coilTempAirflow   float64
	coilTempDTAir     float64
	coilTempReturnAir float64
)

var solveCoilTempCmd = &cobra.Command{
	Use:   "coil-temp",
	Short: "Find the coil leaving air temperature",
	Long: `Calculate how cold the supply air leaves the coil for a heat load
and airflow. Give the airflow directly with --airflow, or let it be
sized from --dt-air first.

Examples:
  # Default case: airflow sized at 5 K, return air 23.5 °C
  laser-tms solve coil-temp

  # Explicit mass flow
  laser-tms solve coil-temp --load 600 --airflow 0.12

  # Hot return air
  laser-tms solve coil-temp --return-air 30`,
	Run: runSolveCoilTemp,
}

func init() {
	solveCmd.AddCommand(solveCoilTempCmd)

	solveCoilTempCmd.Flags().Float64VarP(&coilTempLoad, "load", "q", 100, "Total heat load (W)")
	solveCoilTempCmd.Flags().Float64Var(&coilTempAirflow, "airflow", 0, "Air mass flow through the coil (kg/s; 0 sizes it from --dt-air)")
	solveCoilTempCmd.Flags().Float64Var(&coilTempDTAir, "dt-air", 5, "Air-side temperature rise used to size the airflow (K)")
	solveCoilTempCmd.Flags().Float64Var(&coilTempReturnAir, "return-air", 23.5, "Return air temperature entering the coil (°C)")
}

func runSolveCoilTemp(cmd *cobra.Command, args []string) {
	airflow := coilTempAirflow
	if airflow == 0 {
		sized, err := solver.Airflow(coilTempLoad, coilTempDTAir)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		airflow = sized.AirflowKgS
	}

	res, err := solver.CoilLeavingTemp(coilTempLoad, airflow, coilTempReturnAir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("COIL LEAVING AIR TEMPERATURE", []string{
		fmt.Sprintf("T_out:     %.1f °C  (%.1f °F)", res.CoilLeavingTempC, units.CelsiusToFahrenheit(res.CoilLeavingTempC)),
		fmt.Sprintf("Airflow:   %.4f kg/s", airflow),
		fmt.Sprintf("Drop:      %.1f K below return air", coilTempReturnAir-res.CoilLeavingTempC),
	}))
	fmt.Println()
}
