package thermo

// ACHToUA converts an air-change rate into an equivalent envelope conductance.
// Exchanging the enclosure volume n times per hour carries
// n·V·ρ·cp/3600 watts per kelvin of indoor-outdoor difference.
func ACHToUA(ach, volume, density, cp float64) float64 {
	return ach * volume * density * cp / 3600.0
}
