package model

import "fmt"

// Mode selects the acceptance criteria for the vibration assessment.
// Commissioning acceptance (API 686) is stricter than routine monitoring.
type Mode string

const (
	ModeRoutine       Mode = "routine"
	ModeCommissioning Mode = "commissioning"
)

// NoiseSymptom is the audible noise character reported by the inspector.
type NoiseSymptom string

const (
	NoiseNone      NoiseSymptom = "none"
	NoiseGrowling  NoiseSymptom = "growling"
	NoiseSquealing NoiseSymptom = "squealing"
	NoiseScraping  NoiseSymptom = "scraping"
	NoisePopping   NoiseSymptom = "popping"
	NoiseRumbling  NoiseSymptom = "rumbling"
)

// NoiseObservation is the audible-noise part of the inspection form.
type NoiseObservation struct {
	Symptom  NoiseSymptom `json:"symptom"`
	Location string       `json:"location,omitempty"`
	// ValveResponse is true when throttling the discharge valve changed
	// the noise drastically (flow recirculation test).
	ValveResponse bool `json:"valve_response,omitempty"`
}

// ElectricalInput holds the three-phase panel readings plus the optional
// standstill insulation-resistance (megger) measurement.
type ElectricalInput struct {
	Volts     [3]float64 `json:"volts"`
	Amps      [3]float64 `json:"amps"`
	GroundAmp float64    `json:"ground_amp"`
	// InsulationMohm is the winding insulation resistance in megaohms;
	// zero means not tested.
	InsulationMohm float64 `json:"insulation_mohm,omitempty"`
}

// HydraulicInput holds the pressure-gauge readings for the head check.
type HydraulicInput struct {
	SuctionBar      float64 `json:"suction_bar"`
	DischargeBar    float64 `json:"discharge_bar"`
	SpecificGravity float64 `json:"specific_gravity"`
}

// Inspection is one form submission for a single asset. It is evaluated
// once, reported, and discarded; only the resulting report persists.
type Inspection struct {
	AssetTag string    `json:"asset_tag"`
	Mode     Mode      `json:"mode,omitempty"`
	Readings []Reading `json:"readings"`

	// Temperatures are bearing-housing temperatures in Celsius, keyed by
	// location ("Motor DE", "Pump NDE", ...).
	Temperatures map[string]float64 `json:"temperatures,omitempty"`

	Electrical *ElectricalInput  `json:"electrical,omitempty"`
	Noise      *NoiseObservation `json:"noise,omitempty"`
	Hydraulic  *HydraulicInput   `json:"hydraulic,omitempty"`
	Findings   []Finding         `json:"findings,omitempty"`
}

// Validate checks the submission before it reaches the engine.
func (in *Inspection) Validate() error {
	if in.AssetTag == "" {
		return fmt.Errorf("asset_tag is required")
	}
	switch in.Mode {
	case "", ModeRoutine, ModeCommissioning:
	default:
		return fmt.Errorf("unknown mode: %q", in.Mode)
	}
	if len(in.Readings) == 0 {
		return fmt.Errorf("at least one vibration reading is required")
	}
	if len(in.Readings) > 12 {
		return fmt.Errorf("too many readings: %d (max 12 points)", len(in.Readings))
	}
	seen := make(map[string]bool, len(in.Readings))
	for _, r := range in.Readings {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.Point()] {
			return fmt.Errorf("duplicate reading for point %s", r.Point())
		}
		seen[r.Point()] = true
	}
	for loc, temp := range in.Temperatures {
		if temp < -50 || temp > 300 {
			return fmt.Errorf("temperature at %s out of range: %.1f", loc, temp)
		}
	}
	if in.Electrical != nil {
		for _, v := range in.Electrical.Volts {
			if v < 0 {
				return fmt.Errorf("electrical voltage must be non-negative: %.1f", v)
			}
		}
		for _, a := range in.Electrical.Amps {
			if a < 0 {
				return fmt.Errorf("electrical current must be non-negative: %.1f", a)
			}
		}
		if in.Electrical.GroundAmp < 0 {
			return fmt.Errorf("electrical ground current must be non-negative: %.2f", in.Electrical.GroundAmp)
		}
		if in.Electrical.InsulationMohm < 0 {
			return fmt.Errorf("electrical insulation resistance must be non-negative: %.2f", in.Electrical.InsulationMohm)
		}
	}
	if in.Hydraulic != nil && in.Hydraulic.SpecificGravity <= 0 {
		return fmt.Errorf("specific_gravity must be positive")
	}
	for _, f := range in.Findings {
		if f.Severity != FindingMinor && f.Severity != FindingMajor {
			return fmt.Errorf("unknown finding severity: %q", f.Severity)
		}
	}
	return nil
}
