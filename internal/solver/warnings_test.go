package solver

import (
	"strings"
	"testing"
)

func TestComputeWarnings_Saturated(t *testing.T) {
	got := ComputeWarnings(105, 0)
	if len(got) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(got), got)
	}
	w := got[0]
	if w.Kind != WarnCoolingSaturated || w.Severity != SeverityError {
		t.Errorf("kind/severity = %v/%v, want saturated/error", w.Kind, w.Severity)
	}
	want := "COOLING SATURATED: Coil utilization at 105%. Increase coil capacity or reduce heat load."
	if w.Message != want {
		t.Errorf("message = %q, want %q", w.Message, want)
	}
}

func TestComputeWarnings_HeaterOnly(t *testing.T) {
	got := ComputeWarnings(50, 15)
	if len(got) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(got), got)
	}
	w := got[0]
	if w.Kind != WarnHeaterRequired || w.Severity != SeverityInfo {
		t.Errorf("kind/severity = %v/%v, want heater/info", w.Kind, w.Severity)
	}
	want := "Heater required: 15.0 W to maintain setpoint under current ambient conditions."
	if w.Message != want {
		t.Errorf("message = %q, want %q", w.Message, want)
	}
}

func TestComputeWarnings_Nominal(t *testing.T) {
	if got := ComputeWarnings(50, 0); len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
}

func TestComputeWarnings_HighUtilization(t *testing.T) {
	got := ComputeWarnings(95, 0)
	if len(got) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(got))
	}
	w := got[0]
	if w.Kind != WarnHighUtilization || w.Severity != SeverityWarning {
		t.Errorf("kind/severity = %v/%v, want high_utilization/warning", w.Kind, w.Severity)
	}
	want := "High coil utilization: 95%. Limited cooling margin remaining."
	if w.Message != want {
		t.Errorf("message = %q, want %q", w.Message, want)
	}
}

func TestComputeWarnings_Boundaries(t *testing.T) {
	// Exactly 100% is high utilization, not saturation; exactly 90% is
	// nominal.
	at100 := ComputeWarnings(100, 0)
	if len(at100) != 1 || at100[0].Kind != WarnHighUtilization {
		t.Errorf("at 100%%: got %v, want single high-utilization warning", at100)
	}
	if got := ComputeWarnings(90, 0); len(got) != 0 {
		t.Errorf("at 90%%: got %v, want none", got)
	}
}

func TestComputeWarnings_OrderPreserved(t *testing.T) {
	got := ComputeWarnings(105, 5)
	if len(got) != 2 {
		t.Fatalf("expected two warnings, got %d", len(got))
	}
	if got[0].Kind != WarnCoolingSaturated || got[1].Kind != WarnHeaterRequired {
		t.Errorf("order = [%v, %v], want [saturated, heater]", got[0].Kind, got[1].Kind)
	}
}

func TestCheckCoilApproach(t *testing.T) {
	// 18.5 °C leaving with 15 °C water and 2 K approach is achievable.
	if w := CheckCoilApproach(18.5, 15, 2); w != nil {
		t.Errorf("expected nil, got %v", w)
	}
	// Exactly at the limit is still achievable.
	if w := CheckCoilApproach(17, 15, 2); w != nil {
		t.Errorf("at limit: expected nil, got %v", w)
	}

	w := CheckCoilApproach(15.5, 15, 2)
	if w == nil {
		t.Fatal("expected warning below approach limit")
	}
	if w.Kind != WarnApproachLimited || w.Severity != SeverityWarning {
		t.Errorf("kind/severity = %v/%v, want approach_limited/warning", w.Kind, w.Severity)
	}
	if !strings.Contains(w.Message, "15.5") || !strings.Contains(w.Message, "17.0") {
		t.Errorf("message should quote the temperatures, got %q", w.Message)
	}
}

func TestSeverityAndKindStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{SeverityError.String(), "error"},
		{SeverityWarning.String(), "warning"},
		{SeverityInfo.String(), "info"},
		{WarnCoolingSaturated.String(), "cooling_saturated"},
		{WarnHighUtilization.String(), "high_utilization"},
		{WarnHeaterRequired.String(), "heater_required"},
		{WarnApproachLimited.String(), "approach_limited"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
