package scenario

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rbhale-git/laser-tms/internal/model"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeScenario(t, "case.yaml", `
loads:
  baseline_w: 250
  additional_w: 50
cooling:
  coil_max_capacity_w: 800
  delta_t_air_c: 6
ambient:
  temperature_c: 21
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Loads.BaselineLoadW != 250 || s.Loads.AdditionalLoadsW != 50 {
		t.Errorf("loads = %+v", s.Loads)
	}
	if s.Cooling.CoilMaxCapacityW != 800 || s.Cooling.DeltaTAirC != 6 {
		t.Errorf("cooling = %+v", s.Cooling)
	}
	if s.Ambient.TemperatureC != 21 {
		t.Errorf("ambient temperature = %v, want 21", s.Ambient.TemperatureC)
	}
	// Unset setpoint tracks the ambient temperature.
	if s.SetpointC != 21 {
		t.Errorf("setpoint = %v, want 21", s.SetpointC)
	}
	// Untouched fields keep their defaults.
	if s.Cooling.ChilledWaterTempC != 15 {
		t.Errorf("chilled water = %v, want default 15", s.Cooling.ChilledWaterTempC)
	}
	if s.Mode != model.ModeAirflow {
		t.Errorf("mode = %v, want default airflow", s.Mode)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeScenario(t, "case.json", `{
  "loads": {"baseline_w": 150},
  "solve_mode": "heater",
  "setpoint_c": 22
}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Loads.BaselineLoadW != 150 {
		t.Errorf("baseline = %v, want 150", s.Loads.BaselineLoadW)
	}
	if s.Mode != model.ModeHeater {
		t.Errorf("mode = %v, want heater", s.Mode)
	}
	if s.SetpointC != 22 {
		t.Errorf("explicit setpoint = %v, want 22", s.SetpointC)
	}
	if s.Ambient.TemperatureC != 23.5 {
		t.Errorf("ambient should stay default, got %v", s.Ambient.TemperatureC)
	}
}

func TestLoad_ImperialDimensions(t *testing.T) {
	path := writeScenario(t, "case.yaml", `
units: imperial
enclosure:
  length: 4
  width: 10
  height: 2.5
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if math.Abs(s.Enclosure.LengthM-1.2192) > 1e-9 {
		t.Errorf("length = %v m, want 1.2192", s.Enclosure.LengthM)
	}
	if math.Abs(s.Enclosure.Volume()-2.8316846592) > 1e-6 {
		t.Errorf("volume = %v m³, want ≈2.8317", s.Enclosure.Volume())
	}
}

func TestLoad_ACHWinsOverUA(t *testing.T) {
	path := writeScenario(t, "case.yaml", `
ambient:
  ua_w_per_k: 5
  ach: 1
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// 1 ACH of the default 2.83 m³ enclosure ≈ 0.94 W/K.
	if math.Abs(s.Ambient.UAValue-0.9407092) > 1e-4 {
		t.Errorf("UA = %v, want ≈0.9407 from ACH", s.Ambient.UAValue)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	yamlPath := writeScenario(t, "case.yaml", `
cooling:
  coil_power: 900
`)
	if _, err := Load(yamlPath); err == nil {
		t.Error("yaml: expected error for unknown field")
	}

	jsonPath := writeScenario(t, "case.json", `{"coil_power": 900}`)
	if _, err := Load(jsonPath); err == nil {
		t.Error("json: expected error for unknown field")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeScenario(t, "case.toml", `units = "si"`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported scenario extension") {
		t.Fatalf("expected extension error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_EmptyFileGivesDefaults(t *testing.T) {
	path := writeScenario(t, "empty.yaml", "")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := model.DefaultScenario()
	if s.Loads.BaselineLoadW != want.Loads.BaselineLoadW {
		t.Errorf("baseline = %v, want default %v", s.Loads.BaselineLoadW, want.Loads.BaselineLoadW)
	}
	if s.Cooling.CoilMaxCapacityW != want.Cooling.CoilMaxCapacityW {
		t.Errorf("coil capacity = %v, want default %v", s.Cooling.CoilMaxCapacityW, want.Cooling.CoilMaxCapacityW)
	}
	if s.SetpointC != want.Ambient.TemperatureC {
		t.Errorf("setpoint = %v, want ambient default", s.SetpointC)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative length", "enclosure:\n  length: -1\n"},
		{"zero dt air", "cooling:\n  delta_t_air_c: 0\n"},
		{"bad cooling type", "cooling:\n  type: magic\n"},
		{"bad solve mode", "solve_mode: everything\n"},
		{"bad units", "units: cubits\n"},
	}

	for _, tt := range tests {
		path := writeScenario(t, "case.yaml", tt.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
