package tinygo_esc

import (
	"strings"
)

type (
	// Preset is an enum to represent the stored duty presets of an ESC.
	Preset uint8
)

const (
	PresetNil Preset = iota
	PresetArm
	PresetDisarm
	PresetMin
	PresetMax
)

// String returns the lower-case name of the preset.
func (p Preset) String() string {
	switch p {
	case PresetArm:
		return "arm"
	case PresetDisarm:
		return "disarm"
	case PresetMin:
		return "min"
	case PresetMax:
		return "max"
	default:
		return "nil"
	}
}

// ParsePreset returns the preset matching the given name.
//
// Parameters:
//
// name: The preset name, case-insensitive. "stop" is accepted as an alias of "disarm"
//
// Returns:
//
// The preset and true if the name is known, otherwise PresetNil and false
func ParsePreset(name string) (Preset, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "arm":
		return PresetArm, true
	case "disarm", "stop":
		return PresetDisarm, true
	case "min":
		return PresetMin, true
	case "max":
		return PresetMax, true
	default:
		return PresetNil, false
	}
}
