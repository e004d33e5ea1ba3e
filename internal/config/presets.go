package config

import "sort"

// Presets are named temperature-range configurations for common plasma
// environments.
var Presets = map[string]*Config{
	"photosphere": {
		TMin: 3e3, TMax: 1e5, Points: 100, Scale: "log",
	},
	"corona": {
		TMin: 1e5, TMax: 3e7, Points: 100, Scale: "log",
	},
	"flare": {
		TMin: 1e6, TMax: 1e9, Points: 150, Scale: "log",
	},
	"ism": {
		TMin: 1e2, TMax: 1e6, Points: 120, Scale: "log",
	},
}

// GetPreset returns the named preset applied over the defaults for the
// given element, or nil when unknown.
func GetPreset(element, name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if element != "" {
		cfg.Element = element
	}
	cfg.TMin = p.TMin
	cfg.TMax = p.TMax
	cfg.Points = p.Points
	cfg.Scale = p.Scale
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
