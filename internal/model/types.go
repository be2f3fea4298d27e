package model

import "fmt"

// Enclosure represents the sealed equipment housing being sized.
// All dimensions are stored in meters; presentation converts imperial
// input before construction.
type Enclosure struct {
	LengthM float64
	WidthM  float64
	HeightM float64

	// Air properties inside the enclosure
	AirDensity float64 // kg/m³
	AirCp      float64 // J/(kg·K)

	// Lumped heat capacity of internal hardware (J/K). Descriptive only:
	// steady-state sizing reports it but never integrates it.
	InternalThermalMass float64
}

// Volume returns the interior air volume in m³.
func (e *Enclosure) Volume() float64 {
	return e.LengthM * e.WidthM * e.HeightM
}

// ThermalCapacitance returns C_e = ρ·V·c_p + C_internal (J/K).
func (e *Enclosure) ThermalCapacitance() float64 {
	return e.AirDensity*e.Volume()*e.AirCp + e.InternalThermalMass
}

// Validate checks the enclosure invariants: strictly positive dimensions
// and strictly positive thermal capacitance.
func (e *Enclosure) Validate() error {
	if e.LengthM <= 0 || e.WidthM <= 0 || e.HeightM <= 0 {
		return &ValidationError{msg: fmt.Sprintf(
			"enclosure dimensions must be positive: %.3f x %.3f x %.3f m",
			e.LengthM, e.WidthM, e.HeightM)}
	}
	if e.AirDensity <= 0 {
		return &ValidationError{"air density must be positive"}
	}
	if e.AirCp <= 0 {
		return &ValidationError{"air specific heat must be positive"}
	}
	if e.InternalThermalMass < 0 {
		return &ValidationError{"internal thermal mass cannot be negative"}
	}
	if e.ThermalCapacitance() <= 0 {
		return &ValidationError{"thermal capacitance must be positive"}
	}
	return nil
}

// HeatLoads holds the steady heat sources inside the enclosure.
type HeatLoads struct {
	BaselineLoadW    float64 // primary instrument waste heat
	AdditionalLoadsW float64 // electronics, lighting, auxiliary equipment
}

// TotalLoadW returns the combined steady heat load in watts.
func (h *HeatLoads) TotalLoadW() float64 {
	return h.BaselineLoadW + h.AdditionalLoadsW
}

func (h *HeatLoads) Validate() error {
	if h.BaselineLoadW < 0 {
		return &ValidationError{"baseline load cannot be negative"}
	}
	if h.AdditionalLoadsW < 0 {
		return &ValidationError{"additional loads cannot be negative"}
	}
	return nil
}

// CoolingPlant describes the heat-rejection equipment serving the
// enclosure.
type CoolingPlant struct {
	Type CoolingType

	CoilApproachTempC float64 // closest approach of leaving air to chilled water (K)
	CoilMaxCapacityW  float64 // rated maximum cooling capacity (W)
	ChilledWaterTempC float64 // supply temperature (°C)

	// Design temperature rises across the coil. Sign matters: positive
	// means the medium warms as it absorbs heat.
	DeltaTAirC   float64
	DeltaTWaterC float64
}

// Validate checks the plant invariants. The nonzero ΔT checks protect
// the flow solvers' denominators.
func (c *CoolingPlant) Validate() error {
	if !c.Type.Valid() {
		return &ValidationError{msg: fmt.Sprintf("invalid cooling type: %v", c.Type)}
	}
	if c.CoilApproachTempC <= 0 {
		return &ValidationError{"coil approach temperature must be positive"}
	}
	if c.CoilMaxCapacityW <= 0 {
		return &ValidationError{"coil max capacity must be positive"}
	}
	if c.DeltaTAirC == 0 {
		return &ValidationError{"ΔT_air must be nonzero"}
	}
	if c.DeltaTWaterC == 0 {
		return &ValidationError{"ΔT_water must be nonzero"}
	}
	return nil
}

// AmbientConditions couples the enclosure to its surroundings.
type AmbientConditions struct {
	TemperatureC float64

	// Sinusoidal daily variation, used only for the profile display
	VariationAmplitudeC float64
	VariationPeriodHr   float64

	// Lumped conductance interior<->ambient (W/K). May be derived from an
	// air-change rate via thermo.ACHToUA before construction.
	UAValue float64
}

func (a *AmbientConditions) Validate() error {
	if a.VariationAmplitudeC < 0 {
		return &ValidationError{"variation amplitude cannot be negative"}
	}
	if a.VariationPeriodHr <= 0 {
		return &ValidationError{"variation period must be positive"}
	}
	if a.UAValue < 0 {
		return &ValidationError{"UA value cannot be negative"}
	}
	return nil
}

// Scenario bundles one complete set of sizing inputs. The presentation
// layer builds a fresh Scenario per solve pass and nothing downstream
// mutates it.
type Scenario struct {
	Enclosure Enclosure
	Loads     HeatLoads
	Cooling   CoolingPlant
	Ambient   AmbientConditions

	// Target temperature for heater sizing (°C). The control strategy
	// holds the enclosure at ambient, so defaults track the ambient
	// temperature.
	SetpointC float64

	// Which quantity this pass is solving for; display hint only.
	Mode SolveMode
}

// Validate runs every entity validation in declaration order and returns
// the first failure.
func (s *Scenario) Validate() error {
	if err := s.Enclosure.Validate(); err != nil {
		return err
	}
	if err := s.Loads.Validate(); err != nil {
		return err
	}
	if err := s.Cooling.Validate(); err != nil {
		return err
	}
	if err := s.Ambient.Validate(); err != nil {
		return err
	}
	if !s.Mode.Valid() {
		return &ValidationError{msg: fmt.Sprintf("invalid solve mode: %v", s.Mode)}
	}
	return nil
}

// ValidationError represents a model validation failure.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
