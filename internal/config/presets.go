package config

var wallGray = [3]float64{0.1, 0.1, 0.1}

// presets are ready-made scenes. "water" is the classic bonded
// three-particle box; "collision" is an equal-mass head-on pair;
// "jam" wedges a particle into a gap narrower than its diameter so
// the solver provably never converges.
var presets = map[string]*Config{
	"water": {
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		TimeScale: DefaultTimeScale,
		Scene: SceneConfig{
			Particles: []ParticleConfig{
				{X: 3, Y: 0, VX: -1, VY: 0, Element: "oxygen"},
				{X: -3, Y: 0, Element: "hydrogen"},
				{X: -6, Y: 0.5, VX: 30, VY: 10, Element: "hydrogen"},
			},
			Bonds: [][2]int{{0, 1}, {0, 2}},
			Walls: []WallConfig{
				{X: -15, Y: 0, W: 1, H: 16, Color: wallGray},
				{X: 15, Y: 0, W: 1, H: 16, Color: wallGray},
				{X: 0, Y: 7.5, W: 30, H: 1, Color: wallGray},
				{X: 0, Y: -7.5, W: 30, H: 1, Color: wallGray},
			},
		},
	},
	"collision": {
		Dt:        DefaultDt,
		Duration:  5.0,
		TimeScale: DefaultTimeScale,
		Scene: SceneConfig{
			Particles: []ParticleConfig{
				{X: -8, Y: 0, VX: 4, VY: 0, Element: "oxygen"},
				{X: 8, Y: 0, VX: -4, VY: 0, Element: "oxygen"},
			},
		},
	},
	"jam": {
		Dt:        DefaultDt,
		Duration:  2.0,
		TimeScale: DefaultTimeScale,
		Scene: SceneConfig{
			Particles: []ParticleConfig{
				{X: 0, Y: 0, VX: 1, VY: 0, Element: "hydrogen"},
			},
			Walls: []WallConfig{
				{X: 1.3, Y: 0, W: 2, H: 10, Color: wallGray},
				{X: -1.3, Y: 0, W: 2, H: 10, Color: wallGray},
			},
		},
	},
}

// GetPreset returns a deep copy of a named preset, or nil if unknown.
func GetPreset(name string) *Config {
	src, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *src
	cp.Scene.Particles = append([]ParticleConfig(nil), src.Scene.Particles...)
	cp.Scene.Bonds = append([][2]int(nil), src.Scene.Bonds...)
	cp.Scene.Walls = append([]WallConfig(nil), src.Scene.Walls...)
	return &cp
}

// ListPresets returns all preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
