// Package units converts between the SI quantities used by the solvers and
// the imperial quantities found on enclosure drawings and chiller datasheets.
// Solver code never imports this package; conversion happens at presentation
// boundaries only.
package units

import "github.com/rbhale-git/laser-tms/internal/thermo"

const (
	// Exact by definition of the international foot
	MetersPerFoot = 0.3048

	// Volumetric airflow: 1 m³/s in cubic feet per minute
	CFMPerCubicMeterSecond = 2118.88

	// Water volumetric flow per unit mass flow, density 998 kg/m³
	LPMWaterPerKgSecond = 60.0 / 998.0 * 1000.0

	// US liquid gallons per liter
	GPMPerLPM = 0.264172

	// Heat rate: 1 W in BTU per hour
	BTUPerHourPerWatt = 3.412142
)

// FeetToMeters converts a length in feet to meters.
func FeetToMeters(ft float64) float64 {
	return ft * MetersPerFoot
}

// MetersToFeet converts a length in meters to feet.
func MetersToFeet(m float64) float64 {
	return m / MetersPerFoot
}

// CubicFeetToCubicMeters converts a volume in ft³ to m³.
func CubicFeetToCubicMeters(ft3 float64) float64 {
	return ft3 * MetersPerFoot * MetersPerFoot * MetersPerFoot
}

// CubicMetersToCubicFeet converts a volume in m³ to ft³.
func CubicMetersToCubicFeet(m3 float64) float64 {
	return m3 / (MetersPerFoot * MetersPerFoot * MetersPerFoot)
}

// CubicMetersPerSecToCFM converts volumetric airflow from m³/s to CFM.
func CubicMetersPerSecToCFM(m3s float64) float64 {
	return m3s * CFMPerCubicMeterSecond
}

// CFMToCubicMetersPerSec converts volumetric airflow from CFM to m³/s.
func CFMToCubicMetersPerSec(cfm float64) float64 {
	return cfm / CFMPerCubicMeterSecond
}

// KgPerSecToLPMWater converts a water mass flow to liters per minute.
func KgPerSecToLPMWater(kgs float64) float64 {
	return kgs * LPMWaterPerKgSecond
}

// LPMWaterToKgPerSec converts a water volumetric flow in L/min to kg/s.
func LPMWaterToKgPerSec(lpm float64) float64 {
	return lpm / LPMWaterPerKgSecond
}

// LPMToGPM converts liters per minute to US gallons per minute.
func LPMToGPM(lpm float64) float64 {
	return lpm * GPMPerLPM
}

// GPMToLPM converts US gallons per minute to liters per minute.
func GPMToLPM(gpm float64) float64 {
	return gpm / GPMPerLPM
}

// WattsToBTUPerHour converts a heat rate in W to BTU/hr.
func WattsToBTUPerHour(w float64) float64 {
	return w * BTUPerHourPerWatt
}

// BTUPerHourToWatts converts a heat rate in BTU/hr to W.
func BTUPerHourToWatts(btu float64) float64 {
	return btu / BTUPerHourPerWatt
}

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32.0
}

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32.0) * 5.0 / 9.0
}

// CelsiusToKelvin converts °C to K.
func CelsiusToKelvin(c float64) float64 {
	return c + thermo.KelvinOffset
}

// KelvinToCelsius converts K to °C.
func KelvinToCelsius(k float64) float64 {
	return k - thermo.KelvinOffset
}
