package model

import (
	"github.com/rbhale-git/laser-tms/internal/thermo"
	"github.com/rbhale-git/laser-tms/internal/units"
)

// Preloaded default case: a 100 W laser in a 4 ft x 10 ft x 2.5 ft
// enclosure. Expected steady-state results: ΔT_air of 5 °C needs roughly
// 35-40 CFM of airflow, ΔT_water of 2 °C needs roughly 0.7 L/min of
// coolant, no heater.

func DefaultEnclosure() Enclosure {
	return Enclosure{
		LengthM:             units.FeetToMeters(4.0),
		WidthM:              units.FeetToMeters(10.0),
		HeightM:             units.FeetToMeters(2.5),
		AirDensity:          thermo.AirDensity,
		AirCp:               thermo.AirCp,
		InternalThermalMass: 50000.0, // 50 kJ/K of internal hardware
	}
}

func DefaultHeatLoads() HeatLoads {
	return HeatLoads{BaselineLoadW: 100.0, AdditionalLoadsW: 0.0}
}

func DefaultCoolingPlant() CoolingPlant {
	return CoolingPlant{
		Type:              CoolingAirCoil,
		CoilApproachTempC: 2.0,
		CoilMaxCapacityW:  500.0,
		ChilledWaterTempC: 15.0,
		DeltaTAirC:        5.0,
		DeltaTWaterC:      2.0,
	}
}

func DefaultAmbient() AmbientConditions {
	return AmbientConditions{
		TemperatureC:        23.5,
		VariationAmplitudeC: 2.0,
		VariationPeriodHr:   24.0,
		UAValue:             2.0,
	}
}

// DefaultScenario returns the canonical preloaded case, holding the
// enclosure at ambient with airflow as the active solve mode.
func DefaultScenario() Scenario {
	amb := DefaultAmbient()
	return Scenario{
		Enclosure: DefaultEnclosure(),
		Loads:     DefaultHeatLoads(),
		Cooling:   DefaultCoolingPlant(),
		Ambient:   amb,
		SetpointC: amb.TemperatureC,
		Mode:      ModeAirflow,
	}
}
