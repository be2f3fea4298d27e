package cmd

import (
	"github.com/rbhale-git/laser-tms/internal/model"
	"github.com/rbhale-git/laser-tms/internal/scenario"
	"github.com/rbhale-git/laser-tms/internal/thermo"
	"github.com/rbhale-git/laser-tms/internal/units"
	"github.com/spf13/cobra"
)

// buildSolveScenario resolves the scenario file (if any) and lays
// explicitly set flags over it. Flag values the user did not touch
// never override file values.
func buildSolveScenario(cmd *cobra.Command) (model.Scenario, error) {
	s := model.DefaultScenario()

	if solveScenarioFile != "" {
		loaded, err := scenario.Load(solveScenarioFile)
		if err != nil {
			return model.Scenario{}, err
		}
		s = loaded
	}

	changed := cmd.Flags().Changed

	if changed("length") {
		s.Enclosure.LengthM = lengthIn(solveLength)
	}
	if changed("width") {
		s.Enclosure.WidthM = lengthIn(solveWidth)
	}
	if changed("height") {
		s.Enclosure.HeightM = lengthIn(solveHeight)
	}
	if changed("thermal-mass") {
		s.Enclosure.InternalThermalMass = solveThermalMass
	}
	if changed("baseline-load") {
		s.Loads.BaselineLoadW = solveBaselineLoad
	}
	if changed("additional-load") {
		s.Loads.AdditionalLoadsW = solveAdditionalLoad
	}
	if changed("cooling-type") {
		ct, err := model.ParseCoolingType(solveCoolingType)
		if err != nil {
			return model.Scenario{}, err
		}
		s.Cooling.Type = ct
	}
	if changed("coil-max") {
		s.Cooling.CoilMaxCapacityW = solveCoilMax
	}
	if changed("chilled-water-temp") {
		s.Cooling.ChilledWaterTempC = solveChilledWater
	}
	if changed("approach") {
		s.Cooling.CoilApproachTempC = solveApproach
	}
	if changed("dt-air") {
		s.Cooling.DeltaTAirC = solveDTAir
	}
	if changed("dt-water") {
		s.Cooling.DeltaTWaterC = solveDTWater
	}
	if changed("ambient") {
		s.Ambient.TemperatureC = solveAmbient
		// The heater setpoint tracks the ambient unless pinned
		if !changed("setpoint") && solveScenarioFile == "" {
			s.SetpointC = solveAmbient
		}
	}
	if changed("setpoint") {
		s.SetpointC = solveSetpoint
	}
	if changed("variation-amp") {
		s.Ambient.VariationAmplitudeC = solveVariationAmp
	}
	if changed("variation-period") {
		s.Ambient.VariationPeriodHr = solveVariationPeriod
	}
	if changed("ua") {
		s.Ambient.UAValue = solveUA
	}

	// ACH converts against the resolved geometry, so it runs last
	if changed("ach") {
		s.Ambient.UAValue = thermo.ACHToUA(solveACH, s.Enclosure.Volume(), s.Enclosure.AirDensity, s.Enclosure.AirCp)
	}

	if changed("mode") {
		m, err := model.ParseSolveMode(solveMode)
		if err != nil {
			return model.Scenario{}, err
		}
		s.Mode = m
	}

	return s, nil
}

func lengthIn(v float64) float64 {
	if solveImperial {
		return units.FeetToMeters(v)
	}
	return v
}
