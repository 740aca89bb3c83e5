package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PointResult is the classified zone for one measurement point.
type PointResult struct {
	Location Location `json:"location"`
	Axis     Axis     `json:"axis"`
	Value    float64  `json:"value"`
	Zone     Zone     `json:"zone"`
	Remark   string   `json:"remark"`
}

// Diagnosis is one fault indication with its remediation advice.
type Diagnosis struct {
	Tag             DiagnosticTag `json:"tag"`
	Detail          string        `json:"detail"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// ElectricalFinding is one tripped protection rule, named by its ANSI
// device number (e.g. "46" for current unbalance).
type ElectricalFinding struct {
	ANSICode       string `json:"ansi_code"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// ElectricalResult is the NEMA/ANSI evaluation of the panel readings.
type ElectricalResult struct {
	Status           ElectricalStatus    `json:"status"`
	VoltUnbalance    float64             `json:"volt_unbalance_pct"`
	CurrentUnbalance float64             `json:"current_unbalance_pct"`
	Findings         []ElectricalFinding `json:"findings,omitempty"`
}

// HydraulicStatus buckets the head deviation per API 610 tolerance bands.
type HydraulicStatus string

const (
	HydraulicNormal      HydraulicStatus = "NORMAL"
	HydraulicDegraded    HydraulicStatus = "DEGRADED"
	HydraulicCritical    HydraulicStatus = "CRITICAL"
	HydraulicRestriction HydraulicStatus = "RESTRICTION"
)

// HydraulicResult is the differential-head performance check.
type HydraulicResult struct {
	ActualHeadM  float64         `json:"actual_head_m"`
	RatedHeadM   float64         `json:"rated_head_m"`
	DeviationPct float64         `json:"deviation_pct"`
	Status       HydraulicStatus `json:"status"`
	Cause        string          `json:"cause"`
	Action       string          `json:"action"`
}

// Overall is the aggregated machine condition.
type Overall struct {
	Status  Status   `json:"status"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
	Action  string   `json:"action"`
}

// Report is the full diagnostic output for one inspection. Reports are
// immutable once generated.
type Report struct {
	ID        string    `json:"id"`
	AssetTag  string    `json:"asset_tag"`
	AssetName string    `json:"asset_name,omitempty"`
	Mode      Mode      `json:"mode"`
	CreatedAt time.Time `json:"created_at"`

	Points     []PointResult `json:"points"`
	MaxZone    Zone          `json:"max_zone"`
	Acceptable bool          `json:"acceptable"`

	Vibration   []Diagnosis       `json:"vibration,omitempty"`
	Electrical  *ElectricalResult `json:"electrical,omitempty"`
	Temperature []Diagnosis       `json:"temperature,omitempty"`
	Noise       []Diagnosis       `json:"noise,omitempty"`
	Hydraulic   *HydraulicResult  `json:"hydraulic,omitempty"`

	Overall Overall `json:"overall"`
}

// NewReport allocates a report envelope for an asset.
func NewReport(assetTag, assetName string, mode Mode) *Report {
	return &Report{
		ID:        uuid.New().String(),
		AssetTag:  assetTag,
		AssetName: assetName,
		Mode:      mode,
		CreatedAt: time.Now().UTC(),
	}
}

func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

func ReportFromJSON(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
