package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/mkarpis/partbox/internal/physics"
	"github.com/mkarpis/partbox/internal/scene"
)

// Runner drives a scene for a configured duration, recording frames
// and feeding metrics and observers. The scene is mutated in place;
// callers wanting to rerun from the start should Clone first.
type Runner struct {
	scene     *scene.Scene
	metrics   []Metric
	observers []Observer
}

func New(s *scene.Scene) *Runner {
	return &Runner{scene: s}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the scene frame by frame until the duration elapses or
// the context is canceled. Solver non-convergence is counted in
// Result.Warnings, never returned as an error: the step degrades to
// best effort by design.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validate(cfg); err != nil {
		return nil, err
	}

	// Round, don't truncate: Duration/Dt is rarely exact in floats.
	frames := int(math.Round(cfg.Duration / cfg.Dt / float64(cfg.TimeScale)))
	result := &Result{
		States:  make([][]float64, 0, frames+1),
		Times:   make([]float64, 0, frames+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.States = append(result.States, r.snapshot())
	result.Times = append(result.Times, t)

	for frame := 0; frame < frames; frame++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		var rep physics.Report
		for k := 0; k < cfg.TimeScale; k++ {
			rep = r.scene.Step(cfg.Dt)
			t += cfg.Dt
			if !rep.Converged {
				result.Warnings++
			}
		}
		result.StepsTaken += cfg.TimeScale

		for _, m := range r.metrics {
			m.Observe(r.scene, t)
		}
		for _, o := range r.observers {
			o.OnFrame(r.scene, rep, t)
		}

		result.States = append(result.States, r.snapshot())
		result.Times = append(result.Times, t)

		if !r.scene.IsValid() {
			return result, SimError{Time: t, Frame: frame}
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.BondsLeft = len(r.scene.Bonds)

	return result, nil
}

func (r *Runner) validate(cfg Config) error {
	// Advance itself accepts dt == 0, but a timed run would never end.
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.TimeScale < 1 {
		return fmt.Errorf("time scale must be at least 1, got %d", cfg.TimeScale)
	}
	if err := r.scene.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}
	return nil
}

func (r *Runner) snapshot() []float64 {
	row := make([]float64, 0, len(r.scene.Particles)*4)
	for i := range r.scene.Particles {
		p := &r.scene.Particles[i]
		row = append(row, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	}
	return row
}
