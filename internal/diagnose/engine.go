package diagnose

import (
	"fmt"
	"log/slog"

	"github.com/speedwagon-io/condmon/internal/config"
	"github.com/speedwagon-io/condmon/internal/model"
)

// Engine evaluates inspections against asset profiles. Evaluation is
// synchronous and pure apart from logging; one submission in, one report
// out.
type Engine struct {
	log *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	return &Engine{log: log}
}

// limitsFor resolves the zone boundaries for an asset: explicit override
// first, then the ISO table for its class, then the class derived from
// rated power.
func limitsFor(profile *config.AssetProfile) (Limits, error) {
	if len(profile.VibLimits) > 0 {
		if len(profile.VibLimits) != 3 {
			return Limits{}, fmt.Errorf("asset %s: vib_limits needs 3 boundaries, got %d", profile.Tag, len(profile.VibLimits))
		}
		l := Limits{profile.VibLimits[0], profile.VibLimits[1], profile.VibLimits[2]}
		if err := l.Validate(); err != nil {
			return Limits{}, fmt.Errorf("asset %s: %w", profile.Tag, err)
		}
		return l, nil
	}

	class := MachineClass(profile.MachineClass)
	if class == "" {
		class = ClassForPower(profile.PowerKW)
	}
	l, err := LimitsForClass(class)
	if err != nil {
		return Limits{}, fmt.Errorf("asset %s: %w", profile.Tag, err)
	}
	return l, nil
}

// Evaluate runs the full diagnostic chain for one inspection.
func (e *Engine) Evaluate(profile *config.AssetProfile, insp *model.Inspection) (*model.Report, error) {
	limits, err := limitsFor(profile)
	if err != nil {
		return nil, err
	}

	mode := insp.Mode
	if mode == "" {
		mode = model.ModeRoutine
	}

	report := model.NewReport(profile.Tag, profile.Name, mode)

	// Zone classification per point.
	report.Points = make([]model.PointResult, 0, len(insp.Readings))
	for _, r := range insp.Readings {
		zone := Classify(r.Value, limits)
		report.Points = append(report.Points, model.PointResult{
			Location: r.Location,
			Axis:     r.Axis,
			Value:    r.Value,
			Zone:     zone,
			Remark:   zone.Remark(),
		})
		if zone > report.MaxZone {
			report.MaxZone = zone
		}
	}
	report.Acceptable = Acceptable(report.MaxZone, mode)

	// Fault pattern matching.
	report.Vibration = MatchRules(insp.Readings, limits.Warning())

	axialHigh := false
	for _, d := range report.Vibration {
		if d.Tag == model.TagMisalignment {
			axialHigh = true
			break
		}
	}

	elecStatus := model.ElecNormal
	if insp.Electrical != nil {
		res := EvaluateElectrical(*insp.Electrical, profile.RatedVolt, profile.RatedFLC)
		report.Electrical = &res
		elecStatus = res.Status
	}

	var noiseSymptom model.NoiseSymptom = model.NoiseNone
	if insp.Noise != nil {
		noiseSymptom = insp.Noise.Symptom
		report.Noise = EvaluateNoise(*insp.Noise)
	}

	report.Temperature = EvaluateTemperature(insp.Temperatures, profile.TempWarn, noiseSymptom, axialHigh)

	if insp.Hydraulic != nil {
		report.Hydraulic = EvaluateHydraulic(*insp.Hydraulic, profile.RatedHeadM)
	}

	maxTemp := 0.0
	for _, t := range insp.Temperatures {
		if t > maxTemp {
			maxTemp = t
		}
	}

	report.Overall = AssessOverall(HealthInput{
		MaxZone:    report.MaxZone,
		Electrical: elecStatus,
		MaxTemp:    maxTemp,
		TempWarn:   profile.TempWarn,
		TempTrip:   profile.TempTrip,
		Findings:   insp.Findings,
	})

	e.log.Info("inspection evaluated",
		slog.String("asset_tag", profile.Tag),
		slog.String("report_id", report.ID),
		slog.String("max_zone", report.MaxZone.String()),
		slog.String("status", string(report.Overall.Status)),
		slog.Int("score", report.Overall.Score),
	)

	return report, nil
}
