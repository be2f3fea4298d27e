package solver

import "github.com/rbhale-git/laser-tms/internal/model"

// Report is the merged bundle of one full solve pass, ready for display.
type Report struct {
	Scenario model.Scenario

	TotalLoadW         float64
	AirflowM3S         float64
	AirflowKgS         float64
	CoolantKgS         float64
	CoilLeavingTempC   float64
	HeaterRequiredW    float64
	CoilUtilizationPct float64

	Warnings []Warning
}

// Evaluate validates the scenario and runs the fixed solve sequence:
// airflow, coolant flow, coil leaving temperature, heater requirement,
// utilization, warnings. The coil solver consumes the airflow solver's
// mass flow with the ambient temperature as return air; the approach
// check is appended after the classifier. The first error aborts the
// pass.
func Evaluate(s model.Scenario) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	q := s.Loads.TotalLoadW()

	air, err := Airflow(q, s.Cooling.DeltaTAirC)
	if err != nil {
		return nil, err
	}

	coolant, err := CoolantFlow(q, s.Cooling.DeltaTWaterC)
	if err != nil {
		return nil, err
	}

	coil, err := CoilLeavingTemp(q, air.AirflowKgS, s.Ambient.TemperatureC)
	if err != nil {
		return nil, err
	}

	heater := HeaterRequirement(q, s.Ambient.UAValue, s.Ambient.TemperatureC, s.SetpointC)

	util, err := Utilization(q, s.Cooling.CoilMaxCapacityW)
	if err != nil {
		return nil, err
	}

	warnings := ComputeWarnings(util, heater.HeaterRequiredW)
	if w := CheckCoilApproach(coil.CoilLeavingTempC, s.Cooling.ChilledWaterTempC, s.Cooling.CoilApproachTempC); w != nil {
		warnings = append(warnings, *w)
	}

	return &Report{
		Scenario:           s,
		TotalLoadW:         q,
		AirflowM3S:         air.AirflowM3S,
		AirflowKgS:         air.AirflowKgS,
		CoolantKgS:         coolant.CoolantKgS,
		CoilLeavingTempC:   coil.CoilLeavingTempC,
		HeaterRequiredW:    heater.HeaterRequiredW,
		CoilUtilizationPct: util,
		Warnings:           warnings,
	}, nil
}
