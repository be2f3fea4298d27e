package thermo

// Thermophysical constants for enclosure heat-balance calculations.

const (
	// Air properties, evaluated for warm enclosure air (25-30 °C)
	AirCp      = 1005.0 // J/(kg·K)
	AirDensity = 1.19   // kg/m³

	// Chilled water properties at typical supply temperatures
	WaterCp      = 4186.0 // J/(kg·K)
	WaterDensity = 998.0  // kg/m³

	// Temperature scale offset
	KelvinOffset = 273.15 // K = °C + offset
)
