package diagnose

import (
	"fmt"

	"github.com/speedwagon-io/condmon/internal/model"
)

// Limits are the three ISO 10816-3 zone boundaries [A/B, B/C, C/D] in mm/s
// RMS. Boundaries must be strictly increasing.
type Limits [3]float64

// Validate rejects non-increasing boundary tables.
func (l Limits) Validate() error {
	if !(l[0] < l[1] && l[1] < l[2]) {
		return fmt.Errorf("limits must be strictly increasing: %v", l)
	}
	return nil
}

// Warning returns the boundary that triggers root-cause analysis (B/C).
func (l Limits) Warning() float64 { return l[1] }

// MachineClass is the ISO 10816-3 power class of the machine.
type MachineClass string

const (
	ClassI   MachineClass = "I"   // small machines, < 15 kW
	ClassII  MachineClass = "II"  // medium machines, 15-300 kW
	ClassIII MachineClass = "III" // large machines, rigid foundation
	ClassIV  MachineClass = "IV"  // large machines, flexible foundation
)

// Rigid-foundation limit tables per ISO 10816-3.
var classLimits = map[MachineClass]Limits{
	ClassI:   {0.71, 1.80, 4.50},
	ClassII:  {1.12, 2.80, 7.10},
	ClassIII: {1.80, 4.50, 7.10},
	ClassIV:  {2.80, 7.10, 11.20},
}

// LimitsForClass returns the standard zone boundaries for a machine class.
func LimitsForClass(class MachineClass) (Limits, error) {
	l, ok := classLimits[class]
	if !ok {
		return Limits{}, fmt.Errorf("unknown machine class: %q", class)
	}
	return l, nil
}

// ClassForPower picks the machine class from the rated power. Covers the
// rigid-foundation case only; flexible mounts must set the class explicitly.
func ClassForPower(powerKW float64) MachineClass {
	switch {
	case powerKW < 15:
		return ClassI
	case powerKW <= 300:
		return ClassII
	default:
		return ClassIII
	}
}

// Classify maps a velocity reading to its severity zone. A value exactly on
// a boundary belongs to the lower zone, so Classify is total and
// non-decreasing in value.
func Classify(value float64, limits Limits) model.Zone {
	switch {
	case value <= limits[0]:
		return model.ZoneA
	case value <= limits[1]:
		return model.ZoneB
	case value <= limits[2]:
		return model.ZoneC
	default:
		return model.ZoneD
	}
}

// Acceptable reports whether a zone passes for the given assessment mode.
// Routine monitoring accepts long-term operation (zones A-B); commissioning
// acceptance requires new-machine condition (zone A).
func Acceptable(zone model.Zone, mode model.Mode) bool {
	if mode == model.ModeCommissioning {
		return zone == model.ZoneA
	}
	return zone <= model.ZoneB
}
