package diagnose_test

import (
	"testing"

	"github.com/speedwagon-io/condmon/internal/diagnose"
	"github.com/speedwagon-io/condmon/internal/model"
)

var classII = diagnose.Limits{1.12, 2.80, 7.10}

func TestClassify_ClassIIExamples(t *testing.T) {
	tests := []struct {
		value float64
		want  model.Zone
	}{
		{0.5, model.ZoneA},
		{2.0, model.ZoneB},
		{5.0, model.ZoneC},
		{9.0, model.ZoneD},
	}

	for _, tt := range tests {
		if got := diagnose.Classify(tt.value, classII); got != tt.want {
			t.Errorf("Classify(%.2f) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassify_BoundaryGoesToLowerZone(t *testing.T) {
	// A value exactly on a boundary belongs to the lower zone.
	tests := []struct {
		value float64
		want  model.Zone
	}{
		{1.12, model.ZoneA},
		{2.80, model.ZoneB},
		{7.10, model.ZoneC},
	}

	for _, tt := range tests {
		if got := diagnose.Classify(tt.value, classII); got != tt.want {
			t.Errorf("Classify(%.2f) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	prev := model.ZoneA
	for v := 0.0; v <= 15.0; v += 0.01 {
		z := diagnose.Classify(v, classII)
		if z < prev {
			t.Fatalf("Classify not monotonic: value %.2f mapped to %s after %s", v, z, prev)
		}
		prev = z
	}
}

func TestLimitsForClass(t *testing.T) {
	tests := []struct {
		class diagnose.MachineClass
		want  diagnose.Limits
	}{
		{diagnose.ClassI, diagnose.Limits{0.71, 1.80, 4.50}},
		{diagnose.ClassII, diagnose.Limits{1.12, 2.80, 7.10}},
		{diagnose.ClassIII, diagnose.Limits{1.80, 4.50, 7.10}},
		{diagnose.ClassIV, diagnose.Limits{2.80, 7.10, 11.20}},
	}

	for _, tt := range tests {
		got, err := diagnose.LimitsForClass(tt.class)
		if err != nil {
			t.Fatalf("LimitsForClass(%s): %v", tt.class, err)
		}
		if got != tt.want {
			t.Errorf("LimitsForClass(%s) = %v, want %v", tt.class, got, tt.want)
		}
	}

	if _, err := diagnose.LimitsForClass("V"); err == nil {
		t.Error("expected error for unknown class")
	}
}

func TestClassForPower(t *testing.T) {
	tests := []struct {
		powerKW float64
		want    diagnose.MachineClass
	}{
		{5, diagnose.ClassI},
		{15, diagnose.ClassII},
		{300, diagnose.ClassII},
		{500, diagnose.ClassIII},
	}

	for _, tt := range tests {
		if got := diagnose.ClassForPower(tt.powerKW); got != tt.want {
			t.Errorf("ClassForPower(%.0f) = %s, want %s", tt.powerKW, got, tt.want)
		}
	}
}

func TestLimits_Validate(t *testing.T) {
	if err := (diagnose.Limits{1, 2, 3}).Validate(); err != nil {
		t.Errorf("valid limits rejected: %v", err)
	}
	if err := (diagnose.Limits{2, 2, 3}).Validate(); err == nil {
		t.Error("expected error for non-increasing limits")
	}
	if err := (diagnose.Limits{3, 2, 1}).Validate(); err == nil {
		t.Error("expected error for decreasing limits")
	}
}

func TestAcceptable(t *testing.T) {
	tests := []struct {
		zone model.Zone
		mode model.Mode
		want bool
	}{
		{model.ZoneA, model.ModeRoutine, true},
		{model.ZoneB, model.ModeRoutine, true},
		{model.ZoneC, model.ModeRoutine, false},
		{model.ZoneD, model.ModeRoutine, false},
		{model.ZoneA, model.ModeCommissioning, true},
		{model.ZoneB, model.ModeCommissioning, false},
	}

	for _, tt := range tests {
		if got := diagnose.Acceptable(tt.zone, tt.mode); got != tt.want {
			t.Errorf("Acceptable(%s, %s) = %v, want %v", tt.zone, tt.mode, got, tt.want)
		}
	}
}
