package pupil

import (
	"fmt"
	"strings"
)

// Unit identifies the unit OPD values are expressed in.
type Unit int

const (
	UnitWaves Unit = iota
	UnitNanometers
	UnitMicrons
)

// String returns the canonical long unit name.
func (u Unit) String() string {
	switch u {
	case UnitWaves:
		return "waves"
	case UnitNanometers:
		return "nanometers"
	case UnitMicrons:
		return "microns"
	default:
		return "unknown"
	}
}

// ParseUnit resolves a unit label. Accepted spellings include the short
// symbols used on plot axes ("nm", "um") and the lambda aliases for waves.
func ParseUnit(label string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "waves", "lambda", "λ", `$\lambda$`:
		return UnitWaves, nil
	case "nm", "nanometer", "nanometers":
		return UnitNanometers, nil
	case "um", "µm", "μm", "micron", "microns":
		return UnitMicrons, nil
	default:
		return 0, fmt.Errorf("pupil: unknown OPD unit %q", label)
	}
}

// toWaves returns the factor converting OPD values in this unit to waves at
// the given wavelength (µm).
func (u Unit) toWaves(wavelength float64) float64 {
	switch u {
	case UnitNanometers:
		return 1 / (wavelength * 1e3)
	case UnitMicrons:
		return 1 / wavelength
	default:
		return 1
	}
}
