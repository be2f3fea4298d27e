package solver

import "fmt"

// Severity ranks a warning for display styling.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// WarningKind is the machine-readable taxonomy of operating warnings.
type WarningKind int

const (
	WarnCoolingSaturated WarningKind = iota
	WarnHighUtilization
	WarnHeaterRequired
	WarnApproachLimited
)

func (k WarningKind) String() string {
	switch k {
	case WarnCoolingSaturated:
		return "cooling_saturated"
	case WarnHighUtilization:
		return "high_utilization"
	case WarnHeaterRequired:
		return "heater_required"
	case WarnApproachLimited:
		return "approach_limited"
	default:
		return "unknown"
	}
}

// Warning pairs a classified operating condition with its operator-facing
// message.
type Warning struct {
	Kind     WarningKind
	Severity Severity
	Message  string
}

// ComputeWarnings classifies coil utilization and heater demand into an
// ordered message list. The message texts are stable contracts consumed
// verbatim by every presentation surface.
func ComputeWarnings(utilizationPct, heaterRequiredW float64) []Warning {
	var warnings []Warning

	if utilizationPct > 100.0 {
		warnings = append(warnings, Warning{
			Kind:     WarnCoolingSaturated,
			Severity: SeverityError,
			Message: fmt.Sprintf(
				"COOLING SATURATED: Coil utilization at %.0f%%. Increase coil capacity or reduce heat load.",
				utilizationPct),
		})
	} else if utilizationPct > 90.0 {
		warnings = append(warnings, Warning{
			Kind:     WarnHighUtilization,
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"High coil utilization: %.0f%%. Limited cooling margin remaining.",
				utilizationPct),
		})
	}

	if heaterRequiredW > 0.0 {
		warnings = append(warnings, Warning{
			Kind:     WarnHeaterRequired,
			Severity: SeverityInfo,
			Message: fmt.Sprintf(
				"Heater required: %.1f W to maintain setpoint under current ambient conditions.",
				heaterRequiredW),
		})
	}

	return warnings
}

// CheckCoilApproach flags a computed leaving temperature the coil cannot
// physically deliver: air cannot leave closer to the chilled water than
// the approach temperature. CoilLeavingTemp itself returns the unclamped
// value; this check runs after it. Returns nil when the result is
// achievable.
func CheckCoilApproach(leavingTempC, chilledWaterTempC, approachTempC float64) *Warning {
	minLeavingC := chilledWaterTempC + approachTempC
	if leavingTempC >= minLeavingC {
		return nil
	}
	return &Warning{
		Kind:     WarnApproachLimited,
		Severity: SeverityWarning,
		Message: fmt.Sprintf(
			"Coil approach limited: leaving air %.1f °C is below the achievable %.1f °C (chilled water %.1f °C + %.1f °C approach).",
			leavingTempC, minLeavingC, chilledWaterTempC, approachTempC),
	}
}
