// Package config loads and saves sandbox scene files and run settings
// from YAML, and ships a few named presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkarpis/partbox/internal/physics"
	"github.com/mkarpis/partbox/internal/scene"
)

const (
	DefaultDt        = 0.005
	DefaultDuration  = 10.0
	DefaultTimeScale = 1
)

type Config struct {
	Scene     SceneConfig `yaml:"scene"`
	Dt        float64     `yaml:"dt"`
	Duration  float64     `yaml:"duration"`
	TimeScale int         `yaml:"time_scale"`
}

type SceneConfig struct {
	Particles []ParticleConfig `yaml:"particles"`
	Bonds     [][2]int         `yaml:"bonds"`
	Walls     []WallConfig     `yaml:"walls"`
}

type ParticleConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	VX      float64 `yaml:"vx"`
	VY      float64 `yaml:"vy"`
	Element string  `yaml:"element"`
}

type WallConfig struct {
	X     float64    `yaml:"x"`
	Y     float64    `yaml:"y"`
	W     float64    `yaml:"w"`
	H     float64    `yaml:"h"`
	Color [3]float64 `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		TimeScale: DefaultTimeScale,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToScene builds the runtime scene from the config, resolving element
// names and validating bond indices.
func (c *Config) ToScene() (*scene.Scene, error) {
	s := scene.New()

	for i, pc := range c.Scene.Particles {
		elem, err := physics.ParseElement(pc.Element)
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		s.Particles = append(s.Particles, physics.Particle{
			Pos:     physics.Vec2{X: pc.X, Y: pc.Y},
			Vel:     physics.Vec2{X: pc.VX, Y: pc.VY},
			Element: elem,
		})
	}

	for i, pair := range c.Scene.Bonds {
		a, b := pair[0], pair[1]
		if a == b {
			return nil, fmt.Errorf("bond %d: particle %d bonded to itself", i, a)
		}
		s.Bonds.Link(a, b)
	}

	for _, wc := range c.Scene.Walls {
		s.Walls = append(s.Walls, physics.Wall{
			Pos:   physics.Vec2{X: wc.X, Y: wc.Y},
			Size:  physics.Vec2{X: wc.W, Y: wc.H},
			Color: physics.RGB(wc.Color),
		})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
