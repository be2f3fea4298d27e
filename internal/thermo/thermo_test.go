package thermo

import (
	"math"
	"testing"
)

func TestConstantsPinned(t *testing.T) {
	// These values are part of the numeric contract; downstream sizing
	// results change if they drift.
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"AirCp", AirCp, 1005.0},
		{"AirDensity", AirDensity, 1.19},
		{"WaterCp", WaterCp, 4186.0},
		{"WaterDensity", WaterDensity, 998.0},
		{"KelvinOffset", KelvinOffset, 273.15},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestACHToUA(t *testing.T) {
	tests := []struct {
		name   string
		ach    float64
		volume float64
		want   float64
	}{
		{"one ACH in 100 ft3 enclosure", 1.0, 2.83168, 0.94070769},
		{"half ACH in 10 m3", 0.5, 10.0, 1.66104167},
		{"zero ACH", 0.0, 5.0, 0.0},
		{"zero volume", 3.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		got := ACHToUA(tt.ach, tt.volume, AirDensity, AirCp)
		if !closeRel(got, tt.want, 1e-6) {
			t.Errorf("%s: ACHToUA = %.8f, want %.8f", tt.name, got, tt.want)
		}
	}
}

func TestACHToUA_LinearInRate(t *testing.T) {
	base := ACHToUA(1.0, 2.83168, AirDensity, AirCp)
	doubled := ACHToUA(2.0, 2.83168, AirDensity, AirCp)
	if !closeRel(doubled, 2*base, 1e-12) {
		t.Fatalf("doubling ACH: got %v, want %v", doubled, 2*base)
	}
}

func closeRel(got, want, rel float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want)/math.Abs(want) <= rel
}
