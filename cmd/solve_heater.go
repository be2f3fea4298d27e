package cmd

import (
	"fmt"

	"github.com/rbhale-git/laser-tms/internal/diagram"
	"github.com/rbhale-git/laser-tms/internal/solver"
	"github.com/rbhale-git/laser-tms/internal/units"
	"github.com/spf13/cobra"
)

var (
	heaterLoad     float64
	heaterUA       float64
	heaterAmbient  float64
	heaterSetpoint float64
)

var solveHeaterCmd = &cobra.Command{
	Use:   "heater",
	Short: "Size the trim heater for a cold ambient",
	Long: `Calculate the heater power needed to hold the setpoint when the
envelope loses more heat to a cold ambient than the internal load
supplies. The answer clamps at zero when no heating is needed.

Examples:
  # Cold hall: 2 W/K envelope, 15 °C ambient, 23.5 °C setpoint, 10 W idle load
  laser-tms solve heater --load 10 --ua 2 --ambient 15 --setpoint 23.5`,
	Run: runSolveHeater,
}

func init() {
	solveCmd.AddCommand(solveHeaterCmd)

	solveHeaterCmd.Flags().Float64VarP(&heaterLoad, "load", "q", 100, "Internal heat load (W)")
	solveHeaterCmd.Flags().Float64Var(&heaterUA, "ua", 2, "Envelope conductance UA (W/K)")
	solveHeaterCmd.Flags().Float64VarP(&heaterAmbient, "ambient", "t", 23.5, "Ambient temperature (°C)")
	solveHeaterCmd.Flags().Float64Var(&heaterSetpoint, "setpoint", 23.5, "Setpoint to hold (°C)")
}

func runSolveHeater(cmd *cobra.Command, args []string) {
	res := solver.HeaterRequirement(heaterLoad, heaterUA, heaterAmbient, heaterSetpoint)

	status := "No heating needed at this operating point."
	if res.HeaterRequiredW > 0 {
		status = "Heater must run to hold the setpoint."
	}

	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("HEATER POWER", []string{
		fmt.Sprintf("Required:  %.1f W  (%.0f BTU/hr)", res.HeaterRequiredW, units.WattsToBTUPerHour(res.HeaterRequiredW)),
		status,
	}))
	fmt.Println()
}
