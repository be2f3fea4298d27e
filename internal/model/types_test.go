package model

import (
	"errors"
	"math"
	"testing"
)

func validScenario(opts ...func(*Scenario)) Scenario {
	s := DefaultScenario()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func TestScenarioValidate_Default(t *testing.T) {
	s := validScenario()
	if err := s.Validate(); err != nil {
		t.Fatalf("default scenario should validate, got %v", err)
	}
}

func TestScenarioValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Scenario)
	}{
		{"zero length", func(s *Scenario) { s.Enclosure.LengthM = 0 }},
		{"negative width", func(s *Scenario) { s.Enclosure.WidthM = -1 }},
		{"zero height", func(s *Scenario) { s.Enclosure.HeightM = 0 }},
		{"zero air density", func(s *Scenario) { s.Enclosure.AirDensity = 0 }},
		{"zero air cp", func(s *Scenario) { s.Enclosure.AirCp = 0 }},
		{"negative internal mass", func(s *Scenario) { s.Enclosure.InternalThermalMass = -1 }},
		{"negative baseline load", func(s *Scenario) { s.Loads.BaselineLoadW = -5 }},
		{"negative additional load", func(s *Scenario) { s.Loads.AdditionalLoadsW = -5 }},
		{"invalid cooling type", func(s *Scenario) { s.Cooling.Type = CoolingUnknown }},
		{"zero approach temp", func(s *Scenario) { s.Cooling.CoilApproachTempC = 0 }},
		{"zero coil capacity", func(s *Scenario) { s.Cooling.CoilMaxCapacityW = 0 }},
		{"zero dt air", func(s *Scenario) { s.Cooling.DeltaTAirC = 0 }},
		{"zero dt water", func(s *Scenario) { s.Cooling.DeltaTWaterC = 0 }},
		{"negative variation amplitude", func(s *Scenario) { s.Ambient.VariationAmplitudeC = -1 }},
		{"zero variation period", func(s *Scenario) { s.Ambient.VariationPeriodHr = 0 }},
		{"negative ua", func(s *Scenario) { s.Ambient.UAValue = -0.5 }},
		{"invalid solve mode", func(s *Scenario) { s.Mode = ModeUnknown }},
	}

	for _, tt := range tests {
		s := validScenario(tt.mut)
		err := s.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected *ValidationError, got %T", tt.name, err)
		}
	}
}

func TestScenarioValidate_NegativeDeltaTAllowed(t *testing.T) {
	// Sign is meaningful, only zero breaks the solvers.
	s := validScenario(func(s *Scenario) {
		s.Cooling.DeltaTAirC = -5
		s.Cooling.DeltaTWaterC = -2
	})
	if err := s.Validate(); err != nil {
		t.Fatalf("negative ΔT should pass validation, got %v", err)
	}
}

func TestEnclosureDerived(t *testing.T) {
	e := DefaultEnclosure()

	// 4 ft x 10 ft x 2.5 ft = 100 ft³
	wantVol := 2.8316846592
	if !closeRel(e.Volume(), wantVol, 1e-9) {
		t.Errorf("Volume = %.10f, want %.10f", e.Volume(), wantVol)
	}

	// ρ·V·cp + 50000
	wantCap := e.AirDensity*wantVol*e.AirCp + 50000.0
	if !closeRel(e.ThermalCapacitance(), wantCap, 1e-9) {
		t.Errorf("ThermalCapacitance = %.4f, want %.4f", e.ThermalCapacitance(), wantCap)
	}
}

func TestHeatLoadsTotal(t *testing.T) {
	tests := []struct {
		baseline   float64
		additional float64
		want       float64
	}{
		{100, 0, 100},
		{100, 25, 125},
		{0, 0, 0},
	}

	for _, tt := range tests {
		h := HeatLoads{BaselineLoadW: tt.baseline, AdditionalLoadsW: tt.additional}
		if got := h.TotalLoadW(); got != tt.want {
			t.Errorf("TotalLoadW(%v, %v) = %v, want %v", tt.baseline, tt.additional, got, tt.want)
		}
	}
}

func closeRel(got, want, rel float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want)/math.Abs(want) <= rel
}
