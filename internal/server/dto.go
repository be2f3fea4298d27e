package server

import (
	"github.com/rbhale-git/laser-tms/internal/model"
	"github.com/rbhale-git/laser-tms/internal/solver"
	"github.com/rbhale-git/laser-tms/internal/units"
)

// ---- DTOs ----

type enclosureDTO struct {
	LengthM             float64 `json:"length_m"`
	WidthM              float64 `json:"width_m"`
	HeightM             float64 `json:"height_m"`
	AirDensity          float64 `json:"air_density_kg_m3"`
	AirCp               float64 `json:"air_cp_j_per_kg_k"`
	InternalThermalMass float64 `json:"internal_thermal_mass_j_per_k"`
	VolumeM3            float64 `json:"volume_m3"`
	ThermalCapacitance  float64 `json:"thermal_capacitance_j_per_k"`
}

type loadsDTO struct {
	BaselineLoadW    float64 `json:"baseline_load_w"`
	AdditionalLoadsW float64 `json:"additional_loads_w"`
	TotalLoadW       float64 `json:"total_load_w"`
}

type coolingDTO struct {
	Type              string  `json:"type"`
	CoilApproachTempC float64 `json:"coil_approach_temp_c"`
	CoilMaxCapacityW  float64 `json:"coil_max_capacity_w"`
	ChilledWaterTempC float64 `json:"chilled_water_temp_c"`
	DeltaTAirC        float64 `json:"delta_t_air_c"`
	DeltaTWaterC      float64 `json:"delta_t_water_c"`
}

type ambientDTO struct {
	TemperatureC        float64 `json:"temperature_c"`
	VariationAmplitudeC float64 `json:"variation_amplitude_c"`
	VariationPeriodHr   float64 `json:"variation_period_hr"`
	UAValue             float64 `json:"ua_w_per_k"`
}

type scenarioDTO struct {
	Enclosure enclosureDTO `json:"enclosure"`
	Loads     loadsDTO     `json:"loads"`
	Cooling   coolingDTO   `json:"cooling"`
	Ambient   ambientDTO   `json:"ambient"`
	SetpointC float64      `json:"setpoint_c"`
	SolveMode string       `json:"solve_mode"`
}

type warningDTO struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type reportDTO struct {
	Scenario           scenarioDTO  `json:"scenario"`
	TotalLoadW         float64      `json:"total_load_w"`
	AirflowM3S         float64      `json:"airflow_m3_s"`
	AirflowKgS         float64      `json:"airflow_kg_s"`
	AirflowCFM         float64      `json:"airflow_cfm"`
	CoolantKgS         float64      `json:"coolant_kg_s"`
	CoolantLPM         float64      `json:"coolant_l_min"`
	CoolantGPM         float64      `json:"coolant_gpm"`
	CoilLeavingTempC   float64      `json:"coil_leaving_temp_c"`
	HeaterRequiredW    float64      `json:"heater_required_w"`
	CoilUtilizationPct float64      `json:"coil_utilization_pct"`
	Warnings           []warningDTO `json:"warnings"`
}

func toScenarioDTO(s model.Scenario) scenarioDTO {
	return scenarioDTO{
		Enclosure: enclosureDTO{
			LengthM:             s.Enclosure.LengthM,
			WidthM:              s.Enclosure.WidthM,
			HeightM:             s.Enclosure.HeightM,
			AirDensity:          s.Enclosure.AirDensity,
			AirCp:               s.Enclosure.AirCp,
			InternalThermalMass: s.Enclosure.InternalThermalMass,
			VolumeM3:            s.Enclosure.Volume(),
			ThermalCapacitance:  s.Enclosure.ThermalCapacitance(),
		},
		Loads: loadsDTO{
			BaselineLoadW:    s.Loads.BaselineLoadW,
			AdditionalLoadsW: s.Loads.AdditionalLoadsW,
			TotalLoadW:       s.Loads.TotalLoadW(),
		},
		Cooling: coolingDTO{
			Type:              s.Cooling.Type.String(),
			CoilApproachTempC: s.Cooling.CoilApproachTempC,
			CoilMaxCapacityW:  s.Cooling.CoilMaxCapacityW,
			ChilledWaterTempC: s.Cooling.ChilledWaterTempC,
			DeltaTAirC:        s.Cooling.DeltaTAirC,
			DeltaTWaterC:      s.Cooling.DeltaTWaterC,
		},
		Ambient: ambientDTO{
			TemperatureC:        s.Ambient.TemperatureC,
			VariationAmplitudeC: s.Ambient.VariationAmplitudeC,
			VariationPeriodHr:   s.Ambient.VariationPeriodHr,
			UAValue:             s.Ambient.UAValue,
		},
		SetpointC: s.SetpointC,
		SolveMode: s.Mode.String(),
	}
}

func toReportDTO(rep *solver.Report) reportDTO {
	warnings := make([]warningDTO, 0, len(rep.Warnings))
	for _, w := range rep.Warnings {
		warnings = append(warnings, warningDTO{
			Kind:     w.Kind.String(),
			Severity: w.Severity.String(),
			Message:  w.Message,
		})
	}

	return reportDTO{
		Scenario:           toScenarioDTO(rep.Scenario),
		TotalLoadW:         rep.TotalLoadW,
		AirflowM3S:         rep.AirflowM3S,
		AirflowKgS:         rep.AirflowKgS,
		AirflowCFM:         units.CubicMetersPerSecToCFM(rep.AirflowM3S),
		CoolantKgS:         rep.CoolantKgS,
		CoolantLPM:         units.KgPerSecToLPMWater(rep.CoolantKgS),
		CoolantGPM:         units.LPMToGPM(units.KgPerSecToLPMWater(rep.CoolantKgS)),
		CoilLeavingTempC:   rep.CoilLeavingTempC,
		HeaterRequiredW:    rep.HeaterRequiredW,
		CoilUtilizationPct: rep.CoilUtilizationPct,
		Warnings:           warnings,
	}
}
