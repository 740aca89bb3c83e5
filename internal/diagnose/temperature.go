package diagnose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/speedwagon-io/condmon/internal/model"
)

// EvaluateTemperature inspects bearing-housing temperatures against the
// asset's warning limit and infers a cause by cross-referencing the noise
// symptom and the vibration pattern. axialHigh should be true when the
// matcher flagged an axial-dominant (misalignment) pattern.
func EvaluateTemperature(temps map[string]float64, warnLimit float64, noise model.NoiseSymptom, axialHigh bool) []model.Diagnosis {
	if len(temps) == 0 {
		return nil
	}

	// Deterministic report ordering.
	locs := make([]string, 0, len(temps))
	for loc, val := range temps {
		if val > warnLimit {
			locs = append(locs, loc)
		}
	}
	if len(locs) == 0 {
		return nil
	}
	sort.Strings(locs)

	var out []model.Diagnosis
	for _, loc := range locs {
		val := temps[loc]
		base := fmt.Sprintf("overheat at %s (%.1f C)", loc, val)

		switch {
		case noise == model.NoiseSquealing:
			out = append(out, model.Diagnosis{
				Tag:    model.TagLubrication,
				Detail: base + ": heat with squealing points to dry grease",
				Recommendations: []string{
					"inspect grease condition and re-grease",
				},
			})
		case isDriveEnd(loc) && axialHigh:
			out = append(out, model.Diagnosis{
				Tag:    model.TagMisalignment,
				Detail: base + ": heat at the coupling side with axial vibration",
				Recommendations: []string{
					"perform hot alignment check and verify coupling position",
				},
			})
		case noise == model.NoiseGrowling:
			out = append(out, model.Diagnosis{
				Tag:    model.TagBearing,
				Detail: base + ": heat with growling noise indicates bearing damage",
				Recommendations: []string{
					"replace the bearing",
				},
			})
		case strings.Contains(loc, "Pump DE") && strings.Contains(loc, "Seal"):
			out = append(out, model.Diagnosis{
				Tag:    model.TagSeal,
				Detail: base + ": heat in the seal area, gland packing overtight or seal flush blocked",
				Recommendations: []string{
					"loosen the gland nut to a slight drip",
					"check the seal flush piping plan for blockage",
				},
			})
		case strings.Contains(loc, "Pump DE"):
			out = append(out, model.Diagnosis{
				Tag:    model.TagAxialThrust,
				Detail: base + ": pump thrust bearing hot without lubrication or alignment symptoms",
				Recommendations: []string{
					"check impeller setting and axial play",
					"verify guide vane position",
				},
			})
		default:
			out = append(out, model.Diagnosis{
				Tag:    model.TagOverheat,
				Detail: base,
				Recommendations: []string{
					"stop and inspect the bearing housing",
				},
			})
		}
	}
	return out
}

func isDriveEnd(loc string) bool {
	// "Motor DE" / "Pump DE" but not the NDE points.
	return len(loc) >= 2 && loc[len(loc)-2:] == "DE" &&
		(len(loc) < 3 || loc[len(loc)-3] == ' ')
}
