package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/rbhale-git/laser-tms/internal/thermo"
)

func TestAirflow_MatchesFormula(t *testing.T) {
	tests := []struct {
		name string
		q    float64
		dt   float64
	}{
		{"canonical 100W at 5K", 100, 5},
		{"small load", 12.5, 3},
		{"large load", 2500, 10},
		{"sub-kelvin rise", 60, 0.5},
	}

	for _, tt := range tests {
		got, err := Airflow(tt.q, tt.dt)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		wantKgS := tt.q / (thermo.AirCp * tt.dt)
		if !closeRel(got.AirflowKgS, wantKgS, 1e-6) {
			t.Errorf("%s: AirflowKgS = %.9f, want %.9f", tt.name, got.AirflowKgS, wantKgS)
		}
		if !closeRel(got.AirflowM3S, wantKgS/thermo.AirDensity, 1e-6) {
			t.Errorf("%s: AirflowM3S = %.9f, want %.9f", tt.name, got.AirflowM3S, wantKgS/thermo.AirDensity)
		}
	}
}

func TestAirflow_ZeroDeltaT(t *testing.T) {
	for _, q := range []float64{0, 50, 100, -10} {
		_, err := Airflow(q, 0)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Airflow(%v, 0): want ErrInvalidInput, got %v", q, err)
		}
	}
}

func TestAirflow_ZeroLoad(t *testing.T) {
	got, err := Airflow(0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AirflowKgS != 0 || got.AirflowM3S != 0 {
		t.Errorf("zero load should need zero flow, got %+v", got)
	}
}

func TestAirflow_MonotoneAndLinear(t *testing.T) {
	wide, _ := Airflow(100, 10)
	narrow, _ := Airflow(100, 5)
	if narrow.AirflowKgS <= wide.AirflowKgS {
		t.Errorf("halving ΔT must increase flow: %.6f vs %.6f", narrow.AirflowKgS, wide.AirflowKgS)
	}

	single, _ := Airflow(100, 5)
	double, _ := Airflow(200, 5)
	if !closeRel(double.AirflowKgS, 2*single.AirflowKgS, 1e-12) {
		t.Errorf("doubling load must double flow: %.9f vs %.9f", double.AirflowKgS, single.AirflowKgS)
	}
}

func TestCoolantFlow(t *testing.T) {
	got, err := CoolantFlow(100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 100.0 / (thermo.WaterCp * 2.0)
	if !closeRel(got.CoolantKgS, want, 1e-6) {
		t.Errorf("CoolantKgS = %.9f, want %.9f", got.CoolantKgS, want)
	}
}

func TestCoolantFlow_ZeroDeltaT(t *testing.T) {
	_, err := CoolantFlow(100, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestCoilLeavingTemp(t *testing.T) {
	// With airflow sized for a 5 K rise the coil must supply air exactly
	// 5 K below return.
	air, err := Airflow(100, 5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := CoilLeavingTemp(100, air.AirflowKgS, 23.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closeAbs(got.CoilLeavingTempC, 18.5, 1e-9) {
		t.Errorf("CoilLeavingTempC = %.12f, want 18.5", got.CoilLeavingTempC)
	}
}

func TestCoilLeavingTemp_ZeroFlow(t *testing.T) {
	_, err := CoilLeavingTemp(100, 0, 23.5)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestHeaterRequirement(t *testing.T) {
	tests := []struct {
		name     string
		load     float64
		ua       float64
		ambient  float64
		setpoint float64
		want     float64
	}{
		{"cold ambient deficit", 10, 2, 15, 23.5, 7.0},
		{"load covers loss", 50, 2, 15, 23.5, 0},
		{"ambient at setpoint", 10, 2, 23.5, 23.5, 0},
		{"ambient above setpoint", 0, 5, 30, 23.5, 0},
		{"zero ua", 0, 0, 10, 23.5, 0},
		{"no load all loss", 0, 2, 13.5, 23.5, 20.0},
	}

	for _, tt := range tests {
		got := HeaterRequirement(tt.load, tt.ua, tt.ambient, tt.setpoint)
		if !closeAbs(got.HeaterRequiredW, tt.want, 1e-9) {
			t.Errorf("%s: HeaterRequiredW = %.6f, want %.6f", tt.name, got.HeaterRequiredW, tt.want)
		}
	}
}

func TestHeaterRequirement_NeverNegative(t *testing.T) {
	for _, amb := range []float64{23.5, 25, 40, 100} {
		got := HeaterRequirement(0, 10, amb, 23.5)
		if got.HeaterRequiredW != 0 {
			t.Errorf("ambient %.1f ≥ setpoint: heater = %v, want 0", amb, got.HeaterRequiredW)
		}
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		q    float64
		max  float64
		want float64
	}{
		{100, 500, 20},
		{525, 500, 105},
		{450, 500, 90},
		{0, 500, 0},
	}

	for _, tt := range tests {
		got, err := Utilization(tt.q, tt.max)
		if err != nil {
			t.Fatalf("Utilization(%v, %v): %v", tt.q, tt.max, err)
		}
		if !closeAbs(got, tt.want, 1e-9) {
			t.Errorf("Utilization(%v, %v) = %v, want %v", tt.q, tt.max, got, tt.want)
		}
	}
}

func TestUtilization_ZeroCapacity(t *testing.T) {
	_, err := Utilization(100, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func closeRel(got, want, rel float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want)/math.Abs(want) <= rel
}

func closeAbs(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}
