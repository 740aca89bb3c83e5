package diagnose

import "github.com/speedwagon-io/condmon/internal/model"

// barToMeterHead converts a pressure differential in bar to meters of
// liquid column for SG = 1.0.
const barToMeterHead = 10.197

// EvaluateHydraulic computes the actual total dynamic head from the gauge
// readings and buckets the deviation from rated head per API 610 / ISO 9906
// tolerance bands. Returns nil when no rated head is configured.
func EvaluateHydraulic(in model.HydraulicInput, ratedHeadM float64) *model.HydraulicResult {
	if ratedHeadM <= 0 || in.SpecificGravity <= 0 {
		return nil
	}

	actual := (in.DischargeBar - in.SuctionBar) * barToMeterHead / in.SpecificGravity
	deviation := (actual - ratedHeadM) / ratedHeadM * 100

	res := &model.HydraulicResult{
		ActualHeadM:  actual,
		RatedHeadM:   ratedHeadM,
		DeviationPct: deviation,
	}

	switch {
	case deviation < -20:
		res.Status = model.HydraulicCritical
		res.Cause = "severe internal damage (worn impeller or loose wear ring)"
		res.Action = "stop and overhaul: replace impeller and wear ring, check clearances"
	case deviation < -10:
		res.Status = model.HydraulicDegraded
		res.Cause = "internal wear (wear ring gap widening) or low speed"
		res.Action = "schedule maintenance: check efficiency and wear ring clearance at next stop"
	case deviation > 15:
		res.Status = model.HydraulicRestriction
		res.Cause = "discharge valve throttled or discharge line blocked"
		res.Action = "verify discharge valve opening against the operating procedure"
	default:
		res.Status = model.HydraulicNormal
		res.Cause = "performance matches the design curve"
		res.Action = "continue operation, monitor routine parameters"
	}

	return res
}
