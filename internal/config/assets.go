package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// AssetsConfig is the static asset registry. Nameplate data changes rarely,
// so it lives in its own YAML file next to the service config.
type AssetsConfig struct {
	Assets []AssetProfile `yaml:"assets"`
}

// AssetProfile is the nameplate record plus condition limits for one
// pump/motor train. Looked up by tag, never mutated at runtime.
type AssetProfile struct {
	Tag  string `yaml:"tag"`
	Name string `yaml:"name"`
	Area string `yaml:"area"`

	// Electrical nameplate.
	RatedVolt float64 `yaml:"rated_volt"`
	RatedFLC  float64 `yaml:"rated_flc"`
	Phase     int     `yaml:"phase"`

	// Mechanical nameplate.
	PowerKW  float64 `yaml:"power_kw"`
	RatedRPM int     `yaml:"rated_rpm"`
	Mounting string  `yaml:"mounting"`

	// ISO 10816-3 machine class ("I".."IV"); empty means derive from power.
	MachineClass string `yaml:"machine_class,omitempty"`

	// Hydraulic design point; zero disables the head check.
	RatedHeadM float64 `yaml:"rated_head_m,omitempty"`

	// Condition limits; zeros fall back to the defaults below.
	TempWarn float64 `yaml:"temp_warn"`
	TempTrip float64 `yaml:"temp_trip"`

	// Optional per-asset override of the ISO zone boundaries [A/B, B/C, C/D].
	VibLimits []float64 `yaml:"vib_limits,omitempty"`
}

func MustLoadAssets(configPath string) *AssetsConfig {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("assets config file not found: " + configPath)
	}

	var cfg AssetsConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read assets config: " + err.Error())
	}

	// Defaults are applied here because cleanenv tags do not reach into
	// slice elements.
	for i := range cfg.Assets {
		p := &cfg.Assets[i]
		if p.Phase == 0 {
			p.Phase = 3
		}
		if p.Mounting == "" {
			p.Mounting = "rigid"
		}
		if p.TempWarn == 0 {
			p.TempWarn = 75
		}
		if p.TempTrip == 0 {
			p.TempTrip = 85
		}
	}

	return &cfg
}

// Lookup returns the profile for a tag, or nil when unknown.
func (c *AssetsConfig) Lookup(tag string) *AssetProfile {
	for i := range c.Assets {
		if c.Assets[i].Tag == tag {
			return &c.Assets[i]
		}
	}
	return nil
}

// Tags lists all registered asset tags in registry order.
func (c *AssetsConfig) Tags() []string {
	tags := make([]string, 0, len(c.Assets))
	for i := range c.Assets {
		tags = append(tags, c.Assets[i].Tag)
	}
	return tags
}
