package diagnose_test

import (
	"math"
	"testing"

	"github.com/speedwagon-io/condmon/internal/diagnose"
	"github.com/speedwagon-io/condmon/internal/model"
)

func TestEvaluateHydraulic_HeadFormula(t *testing.T) {
	// (4.5 - 0.5) * 10.197 / 0.74 = 55.12 m
	in := model.HydraulicInput{
		SuctionBar:      0.5,
		DischargeBar:    4.5,
		SpecificGravity: 0.74,
	}

	res := diagnose.EvaluateHydraulic(in, 60.0)
	if res == nil {
		t.Fatal("expected a result")
	}
	want := 4.0 * 10.197 / 0.74
	if math.Abs(res.ActualHeadM-want) > 0.01 {
		t.Errorf("actual head = %.2f, want %.2f", res.ActualHeadM, want)
	}
	// deviation ~ -8.1%, inside tolerance
	if res.Status != model.HydraulicNormal {
		t.Errorf("status = %s, want NORMAL (deviation %.1f%%)", res.Status, res.DeviationPct)
	}
}

func TestEvaluateHydraulic_Bands(t *testing.T) {
	tests := []struct {
		name      string
		discharge float64
		want      model.HydraulicStatus
	}{
		// rated 60 m, SG 1.0: head = (discharge - 0.5) * 10.197
		{"critical below -20%", 5.0, model.HydraulicCritical},    // 45.9 m, -23.5%
		{"degraded below -10%", 5.6, model.HydraulicDegraded},    // 52.0 m, -13.3%
		{"normal", 6.4, model.HydraulicNormal},                   // 60.2 m, +0.3%
		{"restriction above +15%", 7.5, model.HydraulicRestriction}, // 71.4 m, +19.0%
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := model.HydraulicInput{
				SuctionBar:      0.5,
				DischargeBar:    tt.discharge,
				SpecificGravity: 1.0,
			}
			res := diagnose.EvaluateHydraulic(in, 60.0)
			if res == nil {
				t.Fatal("expected a result")
			}
			if res.Status != tt.want {
				t.Errorf("status = %s (deviation %.1f%%), want %s", res.Status, res.DeviationPct, tt.want)
			}
		})
	}
}

func TestEvaluateHydraulic_NoRatedHead(t *testing.T) {
	in := model.HydraulicInput{SuctionBar: 0.5, DischargeBar: 4.5, SpecificGravity: 1.0}
	if res := diagnose.EvaluateHydraulic(in, 0); res != nil {
		t.Errorf("expected nil without a rated head, got %+v", res)
	}
}
