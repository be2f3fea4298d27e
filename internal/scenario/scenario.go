// Package scenario loads sizing scenarios from YAML or JSON files.
// Every field is optional; anything unset falls back to the canonical
// default case. Files are input collection only, there is no save path.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rbhale-git/laser-tms/internal/model"
	"github.com/rbhale-git/laser-tms/internal/thermo"
	"github.com/rbhale-git/laser-tms/internal/units"
)

// File mirrors the on-disk scenario schema. Pointer fields distinguish
// "not given" from an explicit zero.
type File struct {
	// "si" (default) or "imperial". Imperial reads the enclosure
	// dimensions in feet; every other field stays SI either way.
	Units string `json:"units" yaml:"units"`

	Enclosure EnclosureConfig `json:"enclosure" yaml:"enclosure"`
	Loads     LoadsConfig     `json:"loads" yaml:"loads"`
	Cooling   CoolingConfig   `json:"cooling" yaml:"cooling"`
	Ambient   AmbientConfig   `json:"ambient" yaml:"ambient"`

	// Heater target (°C). Defaults to the ambient temperature.
	SetpointC *float64 `json:"setpoint_c" yaml:"setpoint_c"`

	// "airflow" | "coolant" | "coil_temp" | "heater"
	SolveMode *string `json:"solve_mode" yaml:"solve_mode"`
}

type EnclosureConfig struct {
	Length *float64 `json:"length" yaml:"length"`
	Width  *float64 `json:"width" yaml:"width"`
	Height *float64 `json:"height" yaml:"height"`

	InternalThermalMass *float64 `json:"internal_thermal_mass" yaml:"internal_thermal_mass"`
}

type LoadsConfig struct {
	BaselineW   *float64 `json:"baseline_w" yaml:"baseline_w"`
	AdditionalW *float64 `json:"additional_w" yaml:"additional_w"`
}

type CoolingConfig struct {
	Type              *string  `json:"type" yaml:"type"` // "air_coil" | "liquid" | "hybrid"
	CoilApproachTempC *float64 `json:"coil_approach_temp_c" yaml:"coil_approach_temp_c"`
	CoilMaxCapacityW  *float64 `json:"coil_max_capacity_w" yaml:"coil_max_capacity_w"`
	ChilledWaterTempC *float64 `json:"chilled_water_temp_c" yaml:"chilled_water_temp_c"`
	DeltaTAirC        *float64 `json:"delta_t_air_c" yaml:"delta_t_air_c"`
	DeltaTWaterC      *float64 `json:"delta_t_water_c" yaml:"delta_t_water_c"`
}

type AmbientConfig struct {
	TemperatureC        *float64 `json:"temperature_c" yaml:"temperature_c"`
	VariationAmplitudeC *float64 `json:"variation_amplitude_c" yaml:"variation_amplitude_c"`
	VariationPeriodHr   *float64 `json:"variation_period_hr" yaml:"variation_period_hr"`

	// Either a direct conductance or an air-change rate; ACH wins when
	// both are present and is converted once the geometry is known.
	UAValue *float64 `json:"ua_w_per_k" yaml:"ua_w_per_k"`
	ACH     *float64 `json:"ach" yaml:"ach"`
}

// Load reads a scenario file and resolves it against the defaults.
// The extension picks the format: .yaml/.yml or .json. Unknown fields
// are rejected so typos fail loudly instead of silently using defaults.
func Load(path string) (model.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	var f File
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return model.Scenario{}, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return model.Scenario{}, fmt.Errorf("parse json: %w", err)
		}
	default:
		return model.Scenario{}, fmt.Errorf("unsupported scenario extension %q", ext)
	}

	return f.Scenario()
}

// Scenario resolves the file against model.DefaultScenario and validates
// the result.
func (f File) Scenario() (model.Scenario, error) {
	s := model.DefaultScenario()

	imperial := false
	switch strings.ToLower(strings.TrimSpace(f.Units)) {
	case "", "si":
	case "imperial":
		imperial = true
	default:
		return model.Scenario{}, fmt.Errorf("unsupported units %q (use si or imperial)", f.Units)
	}

	length := func(v float64) float64 {
		if imperial {
			return units.FeetToMeters(v)
		}
		return v
	}

	if f.Enclosure.Length != nil {
		s.Enclosure.LengthM = length(*f.Enclosure.Length)
	}
	if f.Enclosure.Width != nil {
		s.Enclosure.WidthM = length(*f.Enclosure.Width)
	}
	if f.Enclosure.Height != nil {
		s.Enclosure.HeightM = length(*f.Enclosure.Height)
	}
	if f.Enclosure.InternalThermalMass != nil {
		s.Enclosure.InternalThermalMass = *f.Enclosure.InternalThermalMass
	}

	if f.Loads.BaselineW != nil {
		s.Loads.BaselineLoadW = *f.Loads.BaselineW
	}
	if f.Loads.AdditionalW != nil {
		s.Loads.AdditionalLoadsW = *f.Loads.AdditionalW
	}

	if f.Cooling.Type != nil {
		ct, err := model.ParseCoolingType(*f.Cooling.Type)
		if err != nil {
			return model.Scenario{}, err
		}
		s.Cooling.Type = ct
	}
	if f.Cooling.CoilApproachTempC != nil {
		s.Cooling.CoilApproachTempC = *f.Cooling.CoilApproachTempC
	}
	if f.Cooling.CoilMaxCapacityW != nil {
		s.Cooling.CoilMaxCapacityW = *f.Cooling.CoilMaxCapacityW
	}
	if f.Cooling.ChilledWaterTempC != nil {
		s.Cooling.ChilledWaterTempC = *f.Cooling.ChilledWaterTempC
	}
	if f.Cooling.DeltaTAirC != nil {
		s.Cooling.DeltaTAirC = *f.Cooling.DeltaTAirC
	}
	if f.Cooling.DeltaTWaterC != nil {
		s.Cooling.DeltaTWaterC = *f.Cooling.DeltaTWaterC
	}

	if f.Ambient.TemperatureC != nil {
		s.Ambient.TemperatureC = *f.Ambient.TemperatureC
	}
	if f.Ambient.VariationAmplitudeC != nil {
		s.Ambient.VariationAmplitudeC = *f.Ambient.VariationAmplitudeC
	}
	if f.Ambient.VariationPeriodHr != nil {
		s.Ambient.VariationPeriodHr = *f.Ambient.VariationPeriodHr
	}
	if f.Ambient.UAValue != nil {
		s.Ambient.UAValue = *f.Ambient.UAValue
	}
	if f.Ambient.ACH != nil {
		// Conversion needs the resolved geometry, so it runs last.
		s.Ambient.UAValue = thermo.ACHToUA(*f.Ambient.ACH,
			s.Enclosure.Volume(), s.Enclosure.AirDensity, s.Enclosure.AirCp)
	}

	if f.SetpointC != nil {
		s.SetpointC = *f.SetpointC
	} else {
		s.SetpointC = s.Ambient.TemperatureC
	}

	if f.SolveMode != nil {
		m, err := model.ParseSolveMode(*f.SolveMode)
		if err != nil {
			return model.Scenario{}, err
		}
		s.Mode = m
	}

	if err := s.Validate(); err != nil {
		return model.Scenario{}, err
	}
	return s, nil
}
