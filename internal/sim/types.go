package sim

import (
	"fmt"

	"github.com/mkarpis/partbox/internal/physics"
	"github.com/mkarpis/partbox/internal/scene"
)

// Metric accumulates a scalar over the run.
type Metric interface {
	Name() string
	Observe(s *scene.Scene, t float64)
	Value() float64
	Reset()
}

// Observer sees the scene after every frame, along with the physics
// report for that frame's last tick.
type Observer interface {
	OnFrame(s *scene.Scene, rep physics.Report, t float64)
}

// Config controls a headless run. TimeScale is the number of physics
// ticks per recorded frame; each tick uses the same Dt.
type Config struct {
	Dt        float64
	Duration  float64
	TimeScale int
}

func DefaultConfig() Config {
	return Config{
		Dt:        0.005,
		Duration:  10.0,
		TimeScale: 1,
	}
}

// Result collects recorded frames and run-level aggregates. States
// holds one row per frame: px, py, vx, vy for every particle, in
// particle order.
type Result struct {
	States     [][]float64
	Times      []float64
	Metrics    map[string]float64
	Warnings   int
	BondsLeft  int
	StepsTaken int
}

// SimError marks a frame that produced invalid (NaN/Inf) state.
type SimError struct {
	Time  float64
	Frame int
}

func (e SimError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): invalid state (NaN/Inf)", e.Frame, e.Time)
}
