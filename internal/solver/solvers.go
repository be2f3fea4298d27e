// Package solver implements the steady-state sizing solvers for a sealed
// equipment enclosure. All functions are pure: SI values in, SI values
// out, no retained state. Unit conversion is the caller's responsibility.
//
// Physics reference:
//
//	Airflow:   m_dot = Q / (c_p · ΔT_air)
//	Coolant:   m_dot = Q / (c_p_water · ΔT_water)
//	Coil temp: T_out = T_return - Q / (m_dot · c_p)
//	Heater:    needed when UA·(T_set - T_amb) > Q_load
package solver

import (
	"fmt"

	"github.com/rbhale-git/laser-tms/internal/thermo"
)

// Result carries the outputs of a single solver call. Each solver
// returns a fresh value with only its own fields populated; callers
// combine results into a display bundle and never mutate them after
// return.
type Result struct {
	AirflowM3S         float64 // m³/s
	AirflowKgS         float64 // kg/s
	CoolantKgS         float64 // kg/s
	CoilLeavingTempC   float64 // °C
	HeaterRequiredW    float64 // W
	CoilUtilizationPct float64 // %
	Warnings           []Warning
}

// Airflow computes the airflow required to remove qTotalW via sensible
// cooling at an air-side temperature rise of deltaTAirC.
//
//	m_dot_air = Q / (c_p · ΔT_air)
//	V_dot_air = m_dot_air / ρ
//
// Zero load gives zero flow. Negative load or ΔT propagates to a
// negative flow; magnitude constraints are upstream's job.
func Airflow(qTotalW, deltaTAirC float64) (Result, error) {
	if deltaTAirC == 0 {
		return Result{}, fmt.Errorf("%w: ΔT_air cannot be zero", ErrInvalidInput)
	}
	mdot := qTotalW / (thermo.AirCp * deltaTAirC)
	return Result{
		AirflowKgS: mdot,
		AirflowM3S: mdot / thermo.AirDensity,
	}, nil
}

// CoolantFlow computes the liquid coolant mass flow required to reject
// qTotalW at a water-side temperature rise of deltaTWaterC.
//
//	m_dot_water = Q / (c_p_water · ΔT_water)
func CoolantFlow(qTotalW, deltaTWaterC float64) (Result, error) {
	if deltaTWaterC == 0 {
		return Result{}, fmt.Errorf("%w: ΔT_water cannot be zero", ErrInvalidInput)
	}
	return Result{
		CoolantKgS: qTotalW / (thermo.WaterCp * deltaTWaterC),
	}, nil
}

// CoilLeavingTemp computes the air temperature leaving the cooling coil
// given the return (enclosure) air temperature and the circulating mass
// flow, normally the Airflow result.
//
//	T_out = T_return - Q / (m_dot_air · c_p)
//
// The value is not clamped against the coil approach limit; see
// CheckCoilApproach.
func CoilLeavingTemp(qTotalW, airflowKgS, returnAirTempC float64) (Result, error) {
	if airflowKgS == 0 {
		return Result{}, fmt.Errorf("%w: airflow mass rate cannot be zero", ErrInvalidInput)
	}
	deltaT := qTotalW / (airflowKgS * thermo.AirCp)
	return Result{
		CoilLeavingTempC: returnAirTempC - deltaT,
	}, nil
}

// HeaterRequirement computes the supplemental heater power needed to
// hold setpointC when losses to a colder ambient exceed the internal
// load.
//
//	heat_loss = UA · (T_set - T_amb)
//	heater    = max(0, heat_loss - Q_load)
//
// Clamped at zero and total over all finite inputs; ambient at or above
// the setpoint never needs heat.
func HeaterRequirement(qLoadW, uaValue, ambientTempC, setpointC float64) Result {
	heatLossW := uaValue * (setpointC - ambientTempC)
	deficit := heatLossW - qLoadW
	if deficit < 0 {
		deficit = 0
	}
	return Result{HeaterRequiredW: deficit}
}

// Utilization returns the heat load as a percentage of the coil's rated
// capacity. Values above 100 mean the coil cannot meet demand.
func Utilization(qTotalW, coilMaxCapacityW float64) (float64, error) {
	if coilMaxCapacityW == 0 {
		return 0, fmt.Errorf("%w: coil capacity cannot be zero", ErrInvalidInput)
	}
	return qTotalW / coilMaxCapacityW * 100.0, nil
}
