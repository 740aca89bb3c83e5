package model

import "fmt"

// Zone is an ISO 10816-3 vibration severity zone. Zones are ordered:
// A (new machine condition) through D (vibration causes damage).
type Zone int

const (
	ZoneA Zone = iota
	ZoneB
	ZoneC
	ZoneD
)

var zoneNames = [...]string{"A", "B", "C", "D"}

var zoneRemarks = [...]string{
	"New machine condition",
	"Unlimited long-term operation allowable",
	"Short-term operation allowable",
	"Vibration causes damage",
}

func (z Zone) String() string {
	if z < ZoneA || z > ZoneD {
		return "?"
	}
	return zoneNames[z]
}

// Remark returns the standard operator-facing description for the zone.
func (z Zone) Remark() string {
	if z < ZoneA || z > ZoneD {
		return ""
	}
	return zoneRemarks[z]
}

func (z Zone) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

func (z *Zone) UnmarshalJSON(data []byte) error {
	s := string(data)
	for i, name := range zoneNames {
		if s == `"`+name+`"` {
			*z = Zone(i)
			return nil
		}
	}
	return fmt.Errorf("unknown vibration zone: %s", s)
}

// Status is the overall machine condition bucket.
type Status string

const (
	StatusGood Status = "GOOD"
	StatusFair Status = "FAIR"
	StatusBad  Status = "BAD"
)

// ElectricalStatus is the rollup of electrical protection findings.
type ElectricalStatus string

const (
	ElecNormal ElectricalStatus = "NORMAL"
	ElecAlarm  ElectricalStatus = "ALARM"
	ElecTrip   ElectricalStatus = "TRIP"
)

// DiagnosticTag labels a fault pattern recognized by the rule matcher.
// Tags are pure functions of the current reading set; they carry no state.
type DiagnosticTag string

const (
	TagMisalignment  DiagnosticTag = "MISALIGNMENT"
	TagUnbalance     DiagnosticTag = "UNBALANCE"
	TagLooseness     DiagnosticTag = "LOOSENESS"
	TagBentShaft     DiagnosticTag = "BENT_SHAFT"
	TagOverhung      DiagnosticTag = "OVERHUNG"
	TagPipeStrain    DiagnosticTag = "PIPE_STRAIN"
	TagBearing       DiagnosticTag = "BEARING"
	TagCavitation    DiagnosticTag = "CAVITATION"
	TagLubrication   DiagnosticTag = "LUBRICATION"
	TagRecirculation DiagnosticTag = "RECIRCULATION"
	TagOverheat      DiagnosticTag = "OVERHEAT"
	TagAxialThrust   DiagnosticTag = "AXIAL_THRUST"
	TagSeal          DiagnosticTag = "SEAL"
)

// FindingSeverity grades a physical inspection finding.
type FindingSeverity string

const (
	FindingMinor FindingSeverity = "minor"
	FindingMajor FindingSeverity = "major"
)

// Finding is one physical-inspection observation from the visual checklist.
type Finding struct {
	Description string          `json:"description"`
	Severity    FindingSeverity `json:"severity"`
}
