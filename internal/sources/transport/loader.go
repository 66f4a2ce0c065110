package transport

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dayweave/planner/internal/domain"
)

// ProfileConfig is the YAML shape of an optional transport profile
// override file. Every field is optional; anything omitted keeps the
// built-in default.
type ProfileConfig struct {
	Modes map[string]ModeConfig `yaml:"modes,omitempty"`

	CyclingUpgradeMiles *float64 `yaml:"cyclingUpgradeMiles,omitempty"`
	DrivingUpgradeMiles *float64 `yaml:"drivingUpgradeMiles,omitempty"`
	BusBookingMiles     *float64 `yaml:"busBookingMiles,omitempty"`
}

// ModeConfig overrides the assumptions for one transport mode.
type ModeConfig struct {
	SpeedMPH    *float64 `yaml:"speedMph,omitempty"`
	CostPerMile *float64 `yaml:"costPerMile,omitempty"`
}

// Loader reads a transport profile file and merges it over the
// built-in defaults.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given path. An empty path means
// "defaults only".
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load returns the effective transport profile.
func (l *Loader) Load() (domain.Profile, error) {
	profile := domain.DefaultProfile()
	if l.filePath == "" {
		return profile, nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to read transport profile: %w", err)
	}

	var cfg ProfileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to parse transport profile yaml: %w", err)
	}

	return merge(profile, cfg)
}

func merge(profile domain.Profile, cfg ProfileConfig) (domain.Profile, error) {
	for name, mc := range cfg.Modes {
		mode, ok := domain.KnownMode(name)
		if !ok {
			return domain.Profile{}, fmt.Errorf("transport profile: unknown mode %q", name)
		}
		mp := profile.Modes[mode]
		if mc.SpeedMPH != nil {
			if *mc.SpeedMPH <= 0 {
				return domain.Profile{}, fmt.Errorf("transport profile: mode %q speed must be > 0", name)
			}
			mp.SpeedMPH = *mc.SpeedMPH
		}
		if mc.CostPerMile != nil {
			if *mc.CostPerMile < 0 {
				return domain.Profile{}, fmt.Errorf("transport profile: mode %q cost must be >= 0", name)
			}
			mp.CostPerMile = *mc.CostPerMile
		}
		profile.Modes[mode] = mp
	}

	if cfg.CyclingUpgradeMiles != nil {
		profile.CyclingUpgradeMiles = *cfg.CyclingUpgradeMiles
	}
	if cfg.DrivingUpgradeMiles != nil {
		profile.DrivingUpgradeMiles = *cfg.DrivingUpgradeMiles
	}
	if cfg.BusBookingMiles != nil {
		profile.BusBookingMiles = *cfg.BusBookingMiles
	}

	return profile, nil
}
