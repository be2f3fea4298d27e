package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/rbhale-git/laser-tms/internal/diagram"
	"github.com/rbhale-git/laser-tms/internal/model"
	"github.com/rbhale-git/laser-tms/internal/scenario"
	"github.com/rbhale-git/laser-tms/internal/solver"
	"github.com/rbhale-git/laser-tms/internal/units"
	"github.com/spf13/cobra"
)

var (
	sweepParam        string
	sweepFrom         float64
	sweepTo           float64
	sweepSteps        int
	sweepScenarioFile string
	sweepCSVFile      string
	sweepExportFile   string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one parameter and chart the sizing outputs",
	Long: `Re-run the full sizing pass while one parameter walks a range, to
see how the hardware requirements move.

Sweepable parameters:
  dt-air    - Air-side temperature rise (K); charts airflow (CFM)
  dt-water  - Water-side temperature rise (K); charts coolant flow (L/min)
  load      - Baseline heat load (W); charts coil utilization (%)

Examples:
  # How airflow grows as the air-side ΔT tightens
  laser-tms sweep --param dt-air --from 2 --to 10 --steps 9

  # Load ramp against the coil limit, with CSV export
  laser-tms sweep --param load --from 100 --to 800 --steps 8 --csv ramp.csv

  # Sweep a scenario file case
  laser-tms sweep --scenario lab.yaml --param dt-water --from 1 --to 5`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&sweepParam, "param", "p", "dt-air", "Parameter to sweep (dt-air, dt-water, load)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 2, "Start of the sweep range")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10, "End of the sweep range")
	sweepCmd.Flags().IntVarP(&sweepSteps, "steps", "n", 9, "Number of evaluation points")
	sweepCmd.Flags().StringVarP(&sweepScenarioFile, "scenario", "f", "", "Scenario file for the base case (.yaml, .yml or .json)")
	sweepCmd.Flags().StringVar(&sweepCSVFile, "csv", "", "Write the sweep table to a CSV file")
	sweepCmd.Flags().StringVarP(&sweepExportFile, "export", "o", "", "Export the sweep chart to file (png, svg, pdf)")
}

// sweepRow is one evaluated point of the sweep, also the CSV schema.
type sweepRow struct {
	ParamValue       float64 `csv:"param_value"`
	TotalLoadW       float64 `csv:"total_load_w"`
	AirflowCFM       float64 `csv:"airflow_cfm"`
	CoolantLPM       float64 `csv:"coolant_l_min"`
	CoilLeavingTempC float64 `csv:"coil_leaving_temp_c"`
	HeaterRequiredW  float64 `csv:"heater_required_w"`
	UtilizationPct   float64 `csv:"coil_utilization_pct"`
	Warnings         int     `csv:"warnings"`
}

func runSweep(cmd *cobra.Command, args []string) {
	if sweepSteps < 2 {
		fmt.Println("Error: --steps must be at least 2.")
		os.Exit(1)
	}
	if _, _, err := sweepAxis(sweepParam); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	base := model.DefaultScenario()
	if sweepScenarioFile != "" {
		loaded, err := scenario.Load(sweepScenarioFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		base = loaded
	}

	rows := make([]sweepRow, 0, sweepSteps)
	for i := 0; i < sweepSteps; i++ {
		v := sweepFrom + (sweepTo-sweepFrom)*float64(i)/float64(sweepSteps-1)

		s := base
		applySweepParam(&s, v)

		rep, err := solver.Evaluate(s)
		if err != nil {
			fmt.Printf("  %s = %.3f: %v (skipped)\n", sweepParam, v, err)
			continue
		}

		rows = append(rows, sweepRow{
			ParamValue:       v,
			TotalLoadW:       rep.TotalLoadW,
			AirflowCFM:       units.CubicMetersPerSecToCFM(rep.AirflowM3S),
			CoolantLPM:       units.KgPerSecToLPMWater(rep.CoolantKgS),
			CoilLeavingTempC: rep.CoilLeavingTempC,
			HeaterRequiredW:  rep.HeaterRequiredW,
			UtilizationPct:   rep.CoilUtilizationPct,
			Warnings:         len(rep.Warnings),
		})
	}

	if len(rows) == 0 {
		fmt.Println("Error: no sweep point evaluated successfully.")
		os.Exit(1)
	}

	printSweepTable(rows)

	// Terminal chart of the axis output
	xLabel, yLabel, _ := sweepAxis(sweepParam)
	values := make([]float64, len(rows))
	xs := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = sweepAxisValue(row)
		xs[i] = row.ParamValue
	}
	fmt.Println(diagram.SweepChart(values, fmt.Sprintf("%s vs %s", yLabel, xLabel), 64))
	fmt.Println()

	if sweepCSVFile != "" {
		if err := writeSweepCSV(rows, sweepCSVFile); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
		} else {
			fmt.Printf("Sweep table written to: %s\n", sweepCSVFile)
		}
	}
	if sweepExportFile != "" {
		if err := diagram.ExportSweepChart(xs, values, xLabel, yLabel, "Parameter Sweep", sweepExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Sweep chart exported to: %s\n", sweepExportFile)
		}
	}
}

func applySweepParam(s *model.Scenario, v float64) {
	switch sweepParam {
	case "dt-air":
		s.Cooling.DeltaTAirC = v
	case "dt-water":
		s.Cooling.DeltaTWaterC = v
	case "load":
		s.Loads.BaselineLoadW = v
	}
}

// sweepAxis names the swept input and the charted output.
func sweepAxis(param string) (xLabel, yLabel string, err error) {
	switch param {
	case "dt-air":
		return "ΔT_air [K]", "Airflow [CFM]", nil
	case "dt-water":
		return "ΔT_water [K]", "Coolant [L/min]", nil
	case "load":
		return "Load [W]", "Coil utilization [%]", nil
	default:
		return "", "", fmt.Errorf("unknown sweep parameter %q (want dt-air, dt-water or load)", param)
	}
}

func sweepAxisValue(row sweepRow) float64 {
	switch sweepParam {
	case "dt-water":
		return row.CoolantLPM
	case "load":
		return row.UtilizationPct
	default:
		return row.AirflowCFM
	}
}

func printSweepTable(rows []sweepRow) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          PARAMETER SWEEP: %s\n", sweepParam)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\tAirflow\tCoolant\tLeaving\tHeater\tUtilization\tWarnings\n", sweepParam)
	fmt.Fprintf(w, "  ─────\t───────\t───────\t───────\t──────\t───────────\t────────\n")
	for _, row := range rows {
		fmt.Fprintf(w, "  %.3f\t%.1f CFM\t%.2f L/min\t%.1f °C\t%.1f W\t%.1f %%\t%d\n",
			row.ParamValue, row.AirflowCFM, row.CoolantLPM, row.CoilLeavingTempC,
			row.HeaterRequiredW, row.UtilizationPct, row.Warnings)
	}
	w.Flush()
	fmt.Println()
}

func writeSweepCSV(rows []sweepRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}
