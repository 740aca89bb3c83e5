package diagnose_test

import (
	"testing"

	"github.com/speedwagon-io/condmon/internal/diagnose"
	"github.com/speedwagon-io/condmon/internal/model"
)

func TestAssessOverall_AllClear(t *testing.T) {
	out := diagnose.AssessOverall(diagnose.HealthInput{
		MaxZone:    model.ZoneB,
		Electrical: model.ElecNormal,
		MaxTemp:    60,
		TempWarn:   75,
		TempTrip:   85,
	})

	if out.Status != model.StatusGood {
		t.Errorf("status = %s, want GOOD", out.Status)
	}
	if out.Score != 0 {
		t.Errorf("score = %d, want 0", out.Score)
	}
	if len(out.Reasons) != 0 {
		t.Errorf("expected no reasons, got %v", out.Reasons)
	}
}

func TestAssessOverall_ScoreWeights(t *testing.T) {
	tests := []struct {
		name string
		in   diagnose.HealthInput
		want int
	}{
		{"zone D", diagnose.HealthInput{MaxZone: model.ZoneD}, 3},
		{"zone C", diagnose.HealthInput{MaxZone: model.ZoneC}, 1},
		{"trip", diagnose.HealthInput{Electrical: model.ElecTrip}, 3},
		{"alarm", diagnose.HealthInput{Electrical: model.ElecAlarm}, 1},
		{"overheat", diagnose.HealthInput{MaxTemp: 90, TempWarn: 75, TempTrip: 85}, 3},
		{"warm", diagnose.HealthInput{MaxTemp: 80, TempWarn: 75, TempTrip: 85}, 1},
		{"major finding", diagnose.HealthInput{
			Findings: []model.Finding{{Description: "baseplate cracked", Severity: model.FindingMajor}},
		}, 5},
		{"minor finding", diagnose.HealthInput{
			Findings: []model.Finding{{Description: "guard missing bolt", Severity: model.FindingMinor}},
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := diagnose.AssessOverall(tt.in)
			if out.Score != tt.want {
				t.Errorf("score = %d, want %d", out.Score, tt.want)
			}
		})
	}
}

func TestAssessOverall_Buckets(t *testing.T) {
	// score 0 -> GOOD
	if got := diagnose.AssessOverall(diagnose.HealthInput{}).Status; got != model.StatusGood {
		t.Errorf("empty input: status = %s, want GOOD", got)
	}

	// score 1 -> FAIR
	fair := diagnose.AssessOverall(diagnose.HealthInput{MaxZone: model.ZoneC})
	if fair.Status != model.StatusFair {
		t.Errorf("zone C alone: status = %s, want FAIR", fair.Status)
	}

	// score 2 -> still FAIR
	fair2 := diagnose.AssessOverall(diagnose.HealthInput{
		MaxZone:    model.ZoneC,
		Electrical: model.ElecAlarm,
	})
	if fair2.Status != model.StatusFair {
		t.Errorf("zone C + alarm: status = %s, want FAIR", fair2.Status)
	}

	// score 3 -> BAD
	bad := diagnose.AssessOverall(diagnose.HealthInput{MaxZone: model.ZoneD})
	if bad.Status != model.StatusBad {
		t.Errorf("zone D alone: status = %s, want BAD", bad.Status)
	}

	// major finding alone crosses the BAD threshold
	major := diagnose.AssessOverall(diagnose.HealthInput{
		Findings: []model.Finding{{Description: "repair not cost effective", Severity: model.FindingMajor}},
	})
	if major.Status != model.StatusBad {
		t.Errorf("major finding alone: status = %s, want BAD", major.Status)
	}
}

func TestAssessOverall_CollectsReasons(t *testing.T) {
	out := diagnose.AssessOverall(diagnose.HealthInput{
		MaxZone:    model.ZoneD,
		Electrical: model.ElecTrip,
		MaxTemp:    95,
		TempWarn:   75,
		TempTrip:   85,
		Findings: []model.Finding{
			{Description: "grouting hollow", Severity: model.FindingMinor},
		},
	})

	if out.Score != 10 {
		t.Errorf("score = %d, want 10", out.Score)
	}
	if len(out.Reasons) != 4 {
		t.Errorf("expected 4 reasons, got %v", out.Reasons)
	}
	if out.Status != model.StatusBad {
		t.Errorf("status = %s, want BAD", out.Status)
	}
}
