package model

import (
	"fmt"
	"strings"
)

// CoolingType is an integer enum for the plant configuration. It is
// descriptive: presentation uses it for labels and the loop schematic,
// solver math never branches on it.
type CoolingType int

const (
	CoolingUnknown CoolingType = iota
	CoolingAirCoil
	CoolingLiquid
	CoolingHybrid
)

func (c CoolingType) Valid() bool {
	return c == CoolingAirCoil || c == CoolingLiquid || c == CoolingHybrid
}

func (c CoolingType) String() string {
	switch c {
	case CoolingAirCoil:
		return "air_coil"
	case CoolingLiquid:
		return "liquid"
	case CoolingHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Label returns the display name used by selection widgets.
func (c CoolingType) Label() string {
	switch c {
	case CoolingAirCoil:
		return "Air Coil"
	case CoolingLiquid:
		return "Liquid"
	case CoolingHybrid:
		return "Hybrid"
	default:
		return "Unknown"
	}
}

func ParseCoolingType(s string) (CoolingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "air_coil", "air-coil", "aircoil":
		return CoolingAirCoil, nil
	case "liquid":
		return CoolingLiquid, nil
	case "hybrid":
		return CoolingHybrid, nil
	default:
		return CoolingUnknown, fmt.Errorf("invalid cooling type: %q", s)
	}
}

// SolveMode is an integer enum naming which quantity a solve pass treats
// as its output. Presentation highlights that solver's result and stops
// prompting for it; the math itself is identical in every mode.
type SolveMode int

const (
	ModeUnknown SolveMode = iota
	ModeAirflow
	ModeCoolant
	ModeCoilTemp
	ModeHeater
)

func (m SolveMode) Valid() bool {
	return m == ModeAirflow || m == ModeCoolant || m == ModeCoilTemp || m == ModeHeater
}

func (m SolveMode) String() string {
	switch m {
	case ModeAirflow:
		return "airflow"
	case ModeCoolant:
		return "coolant"
	case ModeCoilTemp:
		return "coil_temp"
	case ModeHeater:
		return "heater"
	default:
		return "unknown"
	}
}

// Description returns the long form shown beside the mode selector.
func (m SolveMode) Description() string {
	switch m {
	case ModeAirflow:
		return "Solve airflow given Q and ΔT_air"
	case ModeCoolant:
		return "Solve coolant flow given Q and ΔT_water"
	case ModeCoilTemp:
		return "Solve coil leaving air temperature"
	case ModeHeater:
		return "Solve heater requirement"
	default:
		return "Unknown solve mode"
	}
}

func ParseSolveMode(s string) (SolveMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "airflow":
		return ModeAirflow, nil
	case "coolant":
		return ModeCoolant, nil
	case "coil_temp", "coil-temp", "coiltemp":
		return ModeCoilTemp, nil
	case "heater":
		return ModeHeater, nil
	default:
		return ModeUnknown, fmt.Errorf("invalid solve mode: %q", s)
	}
}
