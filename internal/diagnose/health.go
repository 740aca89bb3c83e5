package diagnose

import (
	"fmt"

	"github.com/speedwagon-io/condmon/internal/model"
)

// Severity weights and decision thresholds for the overall rollup.
const (
	weightCritical = 3
	weightWarning  = 1
	weightMajor    = 5

	scoreBad  = 3
	scoreFair = 1
)

// HealthInput collects everything the overall assessment looks at.
type HealthInput struct {
	MaxZone    model.Zone
	Electrical model.ElectricalStatus
	MaxTemp    float64
	TempWarn   float64
	TempTrip   float64
	Findings   []model.Finding
}

// AssessOverall combines the zone result, electrical status, peak
// temperature and physical findings into one GOOD/FAIR/BAD bucket via an
// additive severity score.
func AssessOverall(in HealthInput) model.Overall {
	score := 0
	var reasons []string

	switch in.MaxZone {
	case model.ZoneD:
		score += weightCritical
		reasons = append(reasons, "vibration in danger zone (Zone D)")
	case model.ZoneC:
		score += weightWarning
		reasons = append(reasons, "vibration elevated (Zone C)")
	}

	switch in.Electrical {
	case model.ElecTrip:
		score += weightCritical
		reasons = append(reasons, "electrical trip/fault condition")
	case model.ElecAlarm:
		score += weightWarning
		reasons = append(reasons, "electrical alarm condition")
	}

	if in.TempTrip > 0 && in.MaxTemp > in.TempTrip {
		score += weightCritical
		reasons = append(reasons, fmt.Sprintf("bearing overheat (%.1f C)", in.MaxTemp))
	} else if in.TempWarn > 0 && in.MaxTemp > in.TempWarn {
		score += weightWarning
		reasons = append(reasons, fmt.Sprintf("bearing temperature elevated (%.1f C)", in.MaxTemp))
	}

	for _, f := range in.Findings {
		switch f.Severity {
		case model.FindingMajor:
			score += weightMajor
			reasons = append(reasons, "physical: "+f.Description)
		case model.FindingMinor:
			score += weightWarning
			reasons = append(reasons, "physical: "+f.Description)
		}
	}

	out := model.Overall{Score: score, Reasons: reasons}
	switch {
	case score >= scoreBad:
		out.Status = model.StatusBad
		out.Action = "stop operation; repair may not be cost effective, evaluate unit replacement"
	case score >= scoreFair:
		out.Status = model.StatusFair
		out.Action = "increase monitoring; schedule minor repairs and replace missing parts"
	default:
		out.Status = model.StatusGood
		out.Action = "continue operation; no significant damage"
	}
	return out
}
