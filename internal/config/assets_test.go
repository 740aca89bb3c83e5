package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/speedwagon-io/condmon/internal/config"
)

const assetsYAML = `assets:
  - tag: "P-02"
    name: "Pertalite transfer pump"
    area: "Filling Shed I"
    rated_volt: 380
    rated_flc: 35.5
    power_kw: 18.5
    rated_rpm: 2900
    machine_class: "II"
    rated_head_m: 60
  - tag: "733-P-103"
    name: "Product pump"
    rated_volt: 380
    rated_flc: 52.0
    power_kw: 30
    vib_limits: [1.80, 4.50, 7.10]
`

func writeAssets(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.yaml")
	if err := os.WriteFile(path, []byte(assetsYAML), 0o644); err != nil {
		t.Fatalf("write assets file: %v", err)
	}
	return path
}

func TestMustLoadAssets(t *testing.T) {
	cfg := config.MustLoadAssets(writeAssets(t))

	if len(cfg.Assets) != 2 {
		t.Fatalf("loaded %d assets, want 2", len(cfg.Assets))
	}

	p := cfg.Lookup("P-02")
	if p == nil {
		t.Fatal("P-02 not found")
	}
	if p.MachineClass != "II" || p.RatedHeadM != 60 || p.RatedFLC != 35.5 {
		t.Errorf("profile mismatch: %+v", p)
	}

	// Defaults apply to fields the file omits.
	if p.TempWarn != 75 || p.TempTrip != 85 {
		t.Errorf("temp limits = %.0f/%.0f, want defaults 75/85", p.TempWarn, p.TempTrip)
	}
	if p.Phase != 3 {
		t.Errorf("phase = %d, want default 3", p.Phase)
	}

	o := cfg.Lookup("733-P-103")
	if o == nil {
		t.Fatal("733-P-103 not found")
	}
	if len(o.VibLimits) != 3 || o.VibLimits[1] != 4.50 {
		t.Errorf("vib limits = %v, want override", o.VibLimits)
	}

	if cfg.Lookup("X-99") != nil {
		t.Error("unknown tag must return nil")
	}

	tags := cfg.Tags()
	if len(tags) != 2 || tags[0] != "P-02" {
		t.Errorf("tags = %v", tags)
	}
}

func TestMustLoadAssets_MissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing file")
		}
	}()
	config.MustLoadAssets(filepath.Join(t.TempDir(), "nope.yaml"))
}
