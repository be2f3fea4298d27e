package solver

import "errors"

// ErrInvalidInput is returned when a solver denominator would be zero
// (ΔT_air, ΔT_water, airflow mass rate, or coil capacity). Every other
// combination of finite inputs is accepted: plausibility checks on signs
// and ranges belong to the input-collection layer, not here.
var ErrInvalidInput = errors.New("invalid solver input")
