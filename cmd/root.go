package cmd

import (
	"fmt"
	"os"

	"github.com/rbhale-git/laser-tms/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "laser-tms",
	Short: "Laser Enclosure Thermal Sizing Tool",
	Long: `laser-tms - Laser Enclosure Thermal Management Sizing

A CLI tool for steady-state sizing of enclosure thermal hardware:
cooling airflow, chilled-water flow, coil leaving air temperature
and trim heater power.

This tool helps thermal engineers answer:
  - How much airflow removes the heat load at a given air-side ΔT?
  - How much coolant does the coil need at a given water-side ΔT?
  - How cold does the supply air leave the coil?
  - How much heater power holds the setpoint on a cold day?

All solvers are closed-form sensible-heat balances.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   laser-tms v%-45s║\n", version.Version)
		fmt.Println("  ║   Laser Enclosure Thermal Management Sizing               ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for steady-state sizing of enclosure thermal")
		fmt.Println("  hardware: airflow, coolant flow, coil temperatures, heater power.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Full sizing report with warnings (solve)")
		fmt.Println("    • Single-solver shortcuts (solve airflow|coolant|coil-temp|heater)")
		fmt.Println("    • Parameter sweeps with charts and CSV export (sweep)")
		fmt.Println("    • HTTP + WebSocket sizing API (serve)")
		fmt.Println("    • Scenario files in YAML or JSON")
		fmt.Println()
		fmt.Println("  Use 'laser-tms --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
