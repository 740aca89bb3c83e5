package diagnose

import (
	"strings"

	"github.com/speedwagon-io/condmon/internal/model"
)

// EvaluateNoise maps the reported audible symptom to fault indications.
// References: ISO 18436-2 for shaft/bearing noise, API 610 for cavitation
// and recirculation, API 686 for looseness.
func EvaluateNoise(obs model.NoiseObservation) []model.Diagnosis {
	var out []model.Diagnosis

	switch obs.Symptom {
	case model.NoiseGrowling:
		out = append(out, model.Diagnosis{
			Tag:             model.TagBearing,
			Detail:          "growling noise indicates bearing raceway damage (spalling)",
			Recommendations: []string{"replace the bearing"},
		})
	case model.NoiseSquealing:
		out = append(out, model.Diagnosis{
			Tag:             model.TagLubrication,
			Detail:          "squealing noise indicates insufficient lubrication",
			Recommendations: []string{"re-grease immediately"},
		})
	case model.NoiseScraping:
		out = append(out, model.Diagnosis{
			Tag:             model.TagMisalignment,
			Detail:          "metallic scraping indicates shaft rubbing",
			Recommendations: []string{"check alignment and shaft run-out"},
		})
	}

	if obs.Symptom == model.NoisePopping || strings.Contains(obs.Location, "Pump Casing") {
		out = append(out, model.Diagnosis{
			Tag:    model.TagCavitation,
			Detail: "popping/gravel noise from collapsing vapor bubbles",
			Recommendations: []string{
				"check for a clogged strainer or low tank level",
			},
		})
	}

	if obs.ValveResponse {
		out = append(out, model.Diagnosis{
			Tag:    model.TagRecirculation,
			Detail: "noise changed drastically with valve throttling: operating away from BEP",
			Recommendations: []string{
				"adjust discharge valve to bring flow into the allowed range",
			},
		})
	}

	if obs.Symptom == model.NoiseRumbling && strings.Contains(obs.Location, "Motor") {
		out = append(out, model.Diagnosis{
			Tag:             model.TagLooseness,
			Detail:          "rumbling at the motor indicates mechanical looseness",
			Recommendations: []string{"torque the anchor bolts"},
		})
	}

	return out
}
