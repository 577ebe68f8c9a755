package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"reference": {
		Width: 80, Height: 80, Temperature: 2.40, Coupling: 1, Sweeps: 100,
		Burst: 10000, TempStep: 0.05, Init: InitDown, Format: "text",
	},
	"cold": {
		Width: 80, Height: 80, Temperature: 1.5, Coupling: 1, Sweeps: 750, Seed: 2,
		Burst: 10000, TempStep: 0.05, Init: InitRandom, Format: "text",
	},
	"critical": {
		Width: 80, Height: 80, Temperature: 2.269, Coupling: 1, Sweeps: 500,
		Burst: 10000, TempStep: 0.01, Init: InitRandom, Format: "text",
	},
	"hot": {
		Width: 80, Height: 80, Temperature: 4.0, Coupling: 1, Sweeps: 50,
		Burst: 10000, TempStep: 0.05, Init: InitRandom, Format: "text",
	},
	"small": {
		Width: 8, Height: 8, Temperature: 2.40, Coupling: 1, Sweeps: 16, Seed: 42,
		Burst: 64, TempStep: 0.05, Init: InitDown, Format: "text",
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := *p
	return &cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
