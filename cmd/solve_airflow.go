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
	airflowLoad  float64
	airflowDTAir float64
)

var solveAirflowCmd = &cobra.Command{
	Use:   "airflow",
	Short: "Size the cooling airflow for a heat load",
	Long: `Calculate the airflow required to remove a heat load by sensible
cooling at a given air-side temperature rise.

Examples:
  # 100 W at the default 5 K rise
  laser-tms solve airflow

  # 600 W at a 4 K rise
  laser-tms solve airflow --load 600 --dt-air 4`,
	Run: runSolveAirflow,
}

func init() {
	solveCmd.AddCommand(solveAirflowCmd)

	solveAirflowCmd.Flags().Float64VarP(&airflowLoad, "load", "q", 100, "Total heat load (W)")
	solveAirflowCmd.Flags().Float64Var(&airflowDTAir, "dt-air", 5, "Air-side temperature rise ΔT_air (K)")
}

func runSolveAirflow(cmd *cobra.Command, args []string) {
	res, err := solver.Airflow(airflowLoad, airflowDTAir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("REQUIRED AIRFLOW", []string{
		fmt.Sprintf("Mass flow:    %.4f kg/s", res.AirflowKgS),
		fmt.Sprintf("Volume flow:  %.4f m³/s", res.AirflowM3S),
		fmt.Sprintf("              %.1f CFM", units.CubicMetersPerSecToCFM(res.AirflowM3S)),
	}))
	fmt.Println()
}
