package diagnose

import (
	"fmt"

	"github.com/speedwagon-io/condmon/internal/model"
)

// MatchRules scans one machine's reading set (up to 12 points) and emits
// fault diagnoses from directional-dominance patterns. Readings all below
// the warning limit produce no diagnoses. Each tag fires at most once.
func MatchRules(readings []model.Reading, warnLimit float64) []model.Diagnosis {
	anyHigh := false
	for _, r := range readings {
		if r.Value > warnLimit {
			anyHigh = true
			break
		}
	}
	if !anyHigh {
		return nil
	}

	get := func(loc model.Location, axis model.Axis) float64 {
		max := 0.0
		for _, r := range readings {
			if r.Location == loc && r.Axis == axis && r.Value > max {
				max = r.Value
			}
		}
		return max
	}
	axisMax := func(axis model.Axis) float64 {
		max := 0.0
		for _, r := range readings {
			if r.Axis == axis && r.Value > max {
				max = r.Value
			}
		}
		return max
	}

	var out []model.Diagnosis
	seen := make(map[model.DiagnosticTag]bool)
	add := func(tag model.DiagnosticTag, detail string, recs ...string) {
		if seen[tag] {
			return
		}
		seen[tag] = true
		out = append(out, model.Diagnosis{Tag: tag, Detail: detail, Recommendations: recs})
	}

	mDEA := get(model.MotorDE, model.Axial)
	mDEH := get(model.MotorDE, model.Horizontal)
	pDEA := get(model.PumpDE, model.Axial)

	// Angular misalignment: axial dominant at the coupling (DE side).
	if (mDEA > warnLimit && mDEA > 0.5*mDEH) || pDEA > warnLimit {
		add(model.TagMisalignment,
			"axial vibration dominant at the coupling (DE)",
			"check coupling alignment (laser/dial), target offset < 0.05 mm",
			"check for pipe strain on the pump flanges")
	}

	maxH := axisMax(model.Horizontal)
	maxV := axisMax(model.Vertical)
	maxA := axisMax(model.Axial)

	// Unbalance: horizontal dominant over vertical and axial.
	if maxH > warnLimit && maxH > maxV && maxH > maxA {
		add(model.TagUnbalance,
			"horizontal vibration dominant, typical 1xRPM unbalance pattern",
			"inspect impeller/fan for fouling or deposits",
			"re-balance rotor to G2.5/G6.3")
	}

	// Looseness: vertical above horizontal on the supports.
	if maxV > warnLimit && maxV > maxH {
		add(model.TagLooseness,
			"vertical vibration dominant, foundation or soft-foot looseness",
			"torque anchor bolts",
			"check motor feet for soft foot with a feeler gauge")
	}

	// Bent shaft: axial high at the motor NDE, away from the coupling.
	mNDEA := get(model.MotorNDE, model.Axial)
	if mNDEA > warnLimit && mNDEA > mDEA {
		add(model.TagBentShaft,
			"axial vibration highest at Motor NDE",
			"check motor shaft run-out")
	}

	// Overhung load / cooling fan: radial high at the motor NDE.
	mNDEH := get(model.MotorNDE, model.Horizontal)
	mNDEV := get(model.MotorNDE, model.Vertical)
	if (mNDEH > warnLimit || mNDEV > warnLimit) && mNDEH > mDEH {
		add(model.TagOverhung,
			"radial vibration concentrated at Motor NDE",
			"inspect motor cooling fan condition")
	}

	// Pipe strain / hydraulic: pump side vibrating well above the motor.
	var sumM, sumP float64
	var nM, nP int
	for _, r := range readings {
		switch r.Location {
		case model.MotorDE, model.MotorNDE:
			sumM += r.Value
			nM++
		case model.PumpDE, model.PumpNDE:
			sumP += r.Value
			nP++
		}
	}
	if nM > 0 && nP > 0 {
		avgM := sumM / float64(nM)
		avgP := sumP / float64(nP)
		if avgP > warnLimit && avgP > 1.5*avgM {
			add(model.TagPipeStrain,
				fmt.Sprintf("pump average %.2f mm/s well above motor average %.2f mm/s", avgP, avgM),
				"check pipe supports and flange strain on the pump")
		}
	}

	// No directional pattern matched but vibration is high: fall back to a
	// general bearing/cavitation indication.
	if len(out) == 0 {
		add(model.TagBearing,
			"vibration above the warning limit without a directional pattern",
			"check lubrication",
			"listen to bearing noise with a stethoscope",
			"check suction pressure for cavitation")
	}

	return out
}
