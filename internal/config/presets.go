package config

// Presets are named playback profiles for common uses of the player.
var Presets = map[string]*Config{
	// full-resolution playback of short tables
	"smooth": {
		ThinStep: 1, IntervalMs: 15, ShowOrbits: true,
		PadFraction: DefaultPadFraction, OrbitRadiiAU: []float64{1.0, 1.52},
		Theme: DefaultTheme,
	},
	// heavy thinning for integrator dumps with millions of rows
	"fast": {
		ThinStep: 20000, IntervalMs: 20, ShowOrbits: true,
		PadFraction: DefaultPadFraction, OrbitRadiiAU: []float64{1.0, 1.52},
		Theme: DefaultTheme,
	},
	// looping demo without the reference orbits
	"loop": {
		ThinStep: DefaultThinStep, IntervalMs: 20, Repeat: true, ShowOrbits: false,
		PadFraction: DefaultPadFraction, OrbitRadiiAU: []float64{1.0, 1.52},
		Theme: DefaultTheme,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
