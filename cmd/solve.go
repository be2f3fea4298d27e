package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rbhale-git/laser-tms/internal/diagram"
	"github.com/rbhale-git/laser-tms/internal/model"
	"github.com/rbhale-git/laser-tms/internal/solver"
	"github.com/rbhale-git/laser-tms/internal/thermo"
	"github.com/rbhale-git/laser-tms/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Enclosure geometry
	solveLength      float64
	solveWidth       float64
	solveHeight      float64
	solveThermalMass float64

	// Heat loads
	solveBaselineLoad   float64
	solveAdditionalLoad float64

	// Cooling plant
	solveCoolingType  string
	solveCoilMax      float64
	solveChilledWater float64
	solveApproach     float64
	solveDTAir        float64
	solveDTWater      float64

	// Ambient and heater target
	solveAmbient         float64
	solveSetpoint        float64
	solveUA              float64
	solveACH             float64
	solveVariationAmp    float64
	solveVariationPeriod float64

	// Scenario file and mode
	solveScenarioFile string
	solveMode         string

	// Display options
	solveImperial   bool
	solvePhysics    bool
	solveSchematic  bool
	solveProfile    bool
	solveExportFile string
	solveJSON       bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Size airflow, coolant flow, coil temperature and heater power",
	Long: `Run the full steady-state sizing pass for an enclosure: required
cooling airflow, required chilled-water flow, coil leaving air
temperature and trim heater power, plus coil utilization and
operating warnings.

Every flag has a sensible default, so a bare 'laser-tms solve' sizes
the canonical 100 W enclosure. A scenario file provides a base case;
flags given explicitly on the command line override file values.

Examples:
  # Canonical case
  laser-tms solve

  # 600 W load with a tighter air-side ΔT
  laser-tms solve --baseline-load 600 --dt-air 4

  # Enclosure dimensions in feet, imperial-first output
  laser-tms solve --imperial --length 4 --width 10 --height 2.5

  # From a scenario file, overriding the ambient
  laser-tms solve --scenario lab.yaml --ambient 30

  # Leakage given as air changes per hour instead of UA
  laser-tms solve --ach 0.5

  # Full dress: physics card, loop schematic, ambient profile
  laser-tms solve --physics --schematic --profile`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	d := model.DefaultScenario()

	// Geometry flags
	solveCmd.Flags().Float64Var(&solveLength, "length", d.Enclosure.LengthM, "Enclosure length (m; ft with --imperial)")
	solveCmd.Flags().Float64Var(&solveWidth, "width", d.Enclosure.WidthM, "Enclosure width (m; ft with --imperial)")
	solveCmd.Flags().Float64Var(&solveHeight, "height", d.Enclosure.HeightM, "Enclosure height (m; ft with --imperial)")
	solveCmd.Flags().Float64Var(&solveThermalMass, "thermal-mass", d.Enclosure.InternalThermalMass, "Internal thermal mass (J/K)")

	// Load flags
	solveCmd.Flags().Float64VarP(&solveBaselineLoad, "baseline-load", "q", d.Loads.BaselineLoadW, "Baseline heat load (W)")
	solveCmd.Flags().Float64Var(&solveAdditionalLoad, "additional-load", d.Loads.AdditionalLoadsW, "Additional heat loads (W)")

	// Cooling plant flags
	solveCmd.Flags().StringVar(&solveCoolingType, "cooling-type", d.Cooling.Type.String(), "Cooling plant type (air_coil, liquid, hybrid)")
	solveCmd.Flags().Float64Var(&solveCoilMax, "coil-max", d.Cooling.CoilMaxCapacityW, "Coil maximum capacity (W)")
	solveCmd.Flags().Float64Var(&solveChilledWater, "chilled-water-temp", d.Cooling.ChilledWaterTempC, "Chilled water supply temperature (°C)")
	solveCmd.Flags().Float64Var(&solveApproach, "approach", d.Cooling.CoilApproachTempC, "Coil approach temperature (K)")
	solveCmd.Flags().Float64Var(&solveDTAir, "dt-air", d.Cooling.DeltaTAirC, "Air-side temperature rise ΔT_air (K)")
	solveCmd.Flags().Float64Var(&solveDTWater, "dt-water", d.Cooling.DeltaTWaterC, "Water-side temperature rise ΔT_water (K)")

	// Ambient flags
	solveCmd.Flags().Float64VarP(&solveAmbient, "ambient", "t", d.Ambient.TemperatureC, "Ambient temperature (°C)")
	solveCmd.Flags().Float64Var(&solveSetpoint, "setpoint", d.SetpointC, "Heater setpoint (°C; default tracks ambient)")
	solveCmd.Flags().Float64Var(&solveUA, "ua", d.Ambient.UAValue, "Envelope conductance UA (W/K)")
	solveCmd.Flags().Float64Var(&solveACH, "ach", 0, "Envelope leakage as air changes per hour (converted to UA)")
	solveCmd.Flags().Float64Var(&solveVariationAmp, "variation-amp", d.Ambient.VariationAmplitudeC, "Ambient variation amplitude (K)")
	solveCmd.Flags().Float64Var(&solveVariationPeriod, "variation-period", d.Ambient.VariationPeriodHr, "Ambient variation period (hr)")
	solveCmd.MarkFlagsMutuallyExclusive("ua", "ach")

	// Scenario file and mode
	solveCmd.Flags().StringVarP(&solveScenarioFile, "scenario", "f", "", "Scenario file (.yaml, .yml or .json)")
	solveCmd.Flags().StringVar(&solveMode, "mode", "", "Highlight one solver result (airflow, coolant, coil_temp, heater)")

	// Display options
	solveCmd.Flags().BoolVar(&solveImperial, "imperial", false, "Read dimensions in feet and show imperial units first")
	solveCmd.Flags().BoolVar(&solvePhysics, "physics", false, "Print the governing equations with live substitutions")
	solveCmd.Flags().BoolVar(&solveSchematic, "schematic", false, "Show ASCII thermal loop schematic")
	solveCmd.Flags().BoolVar(&solveProfile, "profile", false, "Show the ambient temperature profile chart")
	solveCmd.Flags().StringVarP(&solveExportFile, "export", "o", "", "Export loop schematic to file (png, svg, pdf)")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Emit the report as JSON")
}

func runSolve(cmd *cobra.Command, args []string) {
	s, err := buildSolveScenario(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	rep, err := solver.Evaluate(s)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if solveJSON {
		printJSONReport(rep)
		return
	}

	printReport(rep)

	if solvePhysics {
		printPhysicsCard(rep)
	}
	if solveSchematic {
		fmt.Println(diagram.DrawASCIILoopSchematic(loopData(rep)))
	}
	if solveProfile {
		fmt.Println(diagram.AmbientProfileChart(
			rep.Scenario.Ambient.TemperatureC,
			rep.Scenario.Ambient.VariationAmplitudeC,
			rep.Scenario.Ambient.VariationPeriodHr,
			64,
		))
		fmt.Println()
	}
	if solveExportFile != "" {
		if err := diagram.ExportLoopSchematic(loopData(rep), solveExportFile); err != nil {
			fmt.Printf("Error exporting schematic: %v\n", err)
		} else {
			fmt.Printf("Schematic exported to: %s\n", solveExportFile)
		}
	}
}

func printReport(rep *solver.Report) {
	s := rep.Scenario

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ENCLOSURE THERMAL SIZING REPORT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Enclosure (L × W × H):\t%s × %s × %s\n",
		lengthOut(s.Enclosure.LengthM), lengthOut(s.Enclosure.WidthM), lengthOut(s.Enclosure.HeightM))
	fmt.Fprintf(w, "  Air volume:\t%.2f m³  (%.1f ft³)\n",
		s.Enclosure.Volume(), units.CubicMetersToCubicFeet(s.Enclosure.Volume()))
	fmt.Fprintf(w, "  Thermal capacitance:\t%.0f J/K\n", s.Enclosure.ThermalCapacitance())
	fmt.Fprintf(w, "  Baseline load:\t%.1f W\n", s.Loads.BaselineLoadW)
	fmt.Fprintf(w, "  Additional loads:\t%.1f W\n", s.Loads.AdditionalLoadsW)
	fmt.Fprintf(w, "  Total heat load:\t%.1f W  (%.0f BTU/hr)\n",
		rep.TotalLoadW, units.WattsToBTUPerHour(rep.TotalLoadW))
	fmt.Fprintf(w, "  Cooling plant:\t%s, coil max %.0f W\n", s.Cooling.Type.Label(), s.Cooling.CoilMaxCapacityW)
	fmt.Fprintf(w, "  Chilled water:\t%.1f °C supply, %.1f K approach\n",
		s.Cooling.ChilledWaterTempC, s.Cooling.CoilApproachTempC)
	fmt.Fprintf(w, "  Design ΔT (air / water):\t%.1f K / %.1f K\n", s.Cooling.DeltaTAirC, s.Cooling.DeltaTWaterC)
	fmt.Fprintf(w, "  Ambient:\t%s ± %.1f K over %.0f hr\n",
		tempOut(s.Ambient.TemperatureC), s.Ambient.VariationAmplitudeC, s.Ambient.VariationPeriodHr)
	fmt.Fprintf(w, "  Envelope UA:\t%.2f W/K\n", s.Ambient.UAValue)
	fmt.Fprintf(w, "  Heater setpoint:\t%s\n", tempOut(s.SetpointC))
	w.Flush()
	fmt.Println()

	// Solver outputs
	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	cfm := units.CubicMetersPerSecToCFM(rep.AirflowM3S)
	lpm := units.KgPerSecToLPMWater(rep.CoolantKgS)
	fmt.Fprintf(w, "  Required airflow:\t%.4f kg/s  (%.1f CFM, %.4f m³/s)%s\n",
		rep.AirflowKgS, cfm, rep.AirflowM3S, modeMarker(s.Mode, model.ModeAirflow))
	fmt.Fprintf(w, "  Required coolant flow:\t%.4f kg/s  (%.2f L/min, %.3f GPM)%s\n",
		rep.CoolantKgS, lpm, units.LPMToGPM(lpm), modeMarker(s.Mode, model.ModeCoolant))
	fmt.Fprintf(w, "  Coil leaving air temp:\t%s%s\n",
		tempOut(rep.CoilLeavingTempC), modeMarker(s.Mode, model.ModeCoilTemp))
	fmt.Fprintf(w, "  Heater required:\t%.1f W  (%.0f BTU/hr)%s\n",
		rep.HeaterRequiredW, units.WattsToBTUPerHour(rep.HeaterRequiredW), modeMarker(s.Mode, model.ModeHeater))
	fmt.Fprintf(w, "  Coil utilization:\t%.1f %%  %s\n", rep.CoilUtilizationPct, utilizationBar(rep.CoilUtilizationPct))
	w.Flush()
	fmt.Println()

	// Warnings
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if len(rep.Warnings) == 0 {
		fmt.Println("  No warnings. Operating point is within plant limits.")
	} else {
		for _, warning := range rep.Warnings {
			fmt.Printf("  [%s]  %s\n", strings.ToUpper(warning.Severity.String()), warning.Message)
		}
	}
	fmt.Println()
}

// printPhysicsCard shows each governing equation with the report's
// numbers substituted in.
func printPhysicsCard(rep *solver.Report) {
	s := rep.Scenario

	fmt.Println("PHYSICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sensible heat balance:\tQ = ṁ · cp · ΔT\n")
	fmt.Fprintf(w, "  Airflow:\tṁ_air = %.1f / (%.0f · %.1f) = %.4f kg/s\n",
		rep.TotalLoadW, thermo.AirCp, s.Cooling.DeltaTAirC, rep.AirflowKgS)
	fmt.Fprintf(w, "  Coolant flow:\tṁ_w = %.1f / (%.0f · %.1f) = %.4f kg/s\n",
		rep.TotalLoadW, thermo.WaterCp, s.Cooling.DeltaTWaterC, rep.CoolantKgS)
	fmt.Fprintf(w, "  Coil leaving temp:\tT_out = %.1f − %.1f / (%.4f · %.0f) = %.1f °C\n",
		s.Ambient.TemperatureC, rep.TotalLoadW, rep.AirflowKgS, thermo.AirCp, rep.CoilLeavingTempC)
	fmt.Fprintf(w, "  Heater:\tP = max(0, %.2f·(%.1f − %.1f) − %.1f) = %.1f W\n",
		s.Ambient.UAValue, s.SetpointC, s.Ambient.TemperatureC, rep.TotalLoadW, rep.HeaterRequiredW)
	fmt.Fprintf(w, "  Energy balance:\tC·dT/dt = Q_load + UA·(T_amb − T) − Q_cool\n")
	w.Flush()
	fmt.Println()
}

func printJSONReport(rep *solver.Report) {
	lpm := units.KgPerSecToLPMWater(rep.CoolantKgS)

	out := struct {
		TotalLoadW         float64          `json:"total_load_w"`
		AirflowKgS         float64          `json:"airflow_kg_s"`
		AirflowM3S         float64          `json:"airflow_m3_s"`
		AirflowCFM         float64          `json:"airflow_cfm"`
		CoolantKgS         float64          `json:"coolant_kg_s"`
		CoolantLPM         float64          `json:"coolant_l_min"`
		CoolantGPM         float64          `json:"coolant_gpm"`
		CoilLeavingTempC   float64          `json:"coil_leaving_temp_c"`
		HeaterRequiredW    float64          `json:"heater_required_w"`
		CoilUtilizationPct float64          `json:"coil_utilization_pct"`
		Warnings           []map[string]any `json:"warnings"`
	}{
		TotalLoadW:         rep.TotalLoadW,
		AirflowKgS:         rep.AirflowKgS,
		AirflowM3S:         rep.AirflowM3S,
		AirflowCFM:         units.CubicMetersPerSecToCFM(rep.AirflowM3S),
		CoolantKgS:         rep.CoolantKgS,
		CoolantLPM:         lpm,
		CoolantGPM:         units.LPMToGPM(lpm),
		CoilLeavingTempC:   rep.CoilLeavingTempC,
		HeaterRequiredW:    rep.HeaterRequiredW,
		CoilUtilizationPct: rep.CoilUtilizationPct,
		Warnings:           make([]map[string]any, 0, len(rep.Warnings)),
	}
	for _, warning := range rep.Warnings {
		out.Warnings = append(out.Warnings, map[string]any{
			"kind":     warning.Kind.String(),
			"severity": warning.Severity.String(),
			"message":  warning.Message,
		})
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}

func loopData(rep *solver.Report) diagram.LoopData {
	s := rep.Scenario
	return diagram.LoopData{
		EnclosureTempC:    s.SetpointC,
		SupplyTempC:       rep.CoilLeavingTempC,
		ReturnTempC:       s.Ambient.TemperatureC,
		AmbientTempC:      s.Ambient.TemperatureC,
		ChilledWaterTempC: s.Cooling.ChilledWaterTempC,
		AirflowCFM:        units.CubicMetersPerSecToCFM(rep.AirflowM3S),
		CoolantLPM:        units.KgPerSecToLPMWater(rep.CoolantKgS),
		HeatLoadW:         rep.TotalLoadW,
		UAValue:           s.Ambient.UAValue,
		CoolingTypeLabel:  s.Cooling.Type.Label(),
	}
}

func modeMarker(active, row model.SolveMode) string {
	if active == row {
		return "  ← SOLVED FOR"
	}
	return ""
}

// utilizationBar renders a 20-slot load bar, full scale at 100 %.
func utilizationBar(pct float64) string {
	filled := int(pct / 5)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 20-filled) + "]"
}

func lengthOut(m float64) string {
	if solveImperial {
		return fmt.Sprintf("%.2f ft (%.3f m)", units.MetersToFeet(m), m)
	}
	return fmt.Sprintf("%.3f m (%.2f ft)", m, units.MetersToFeet(m))
}

func tempOut(c float64) string {
	if solveImperial {
		return fmt.Sprintf("%.1f °F (%.1f °C)", units.CelsiusToFahrenheit(c), c)
	}
	return fmt.Sprintf("%.1f °C (%.1f °F)", c, units.CelsiusToFahrenheit(c))
}
