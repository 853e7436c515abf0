// Package scene holds the caller-owned simulation state handed to the
// physics step each tick, plus the aggregate diagnostics the UI and
// metrics read from it.
package scene

import (
	"fmt"

	"github.com/mkarpis/partbox/internal/physics"
)

// Scene owns the particle, bond, and wall collections for one
// simulation. The physics step borrows them for the duration of a
// tick; nothing else mutates them concurrently.
type Scene struct {
	Particles []physics.Particle
	Bonds     physics.BondSet
	Walls     []physics.Wall
}

// New returns an empty scene with an initialized bond graph.
func New() *Scene {
	return &Scene{Bonds: make(physics.BondSet)}
}

// Step advances the scene by dt.
func (s *Scene) Step(dt float64) physics.Report {
	return physics.Advance(s.Particles, s.Bonds, s.Walls, dt)
}

// Validate checks the bond graph against the particle collection.
// A bond referencing a missing particle is a setup bug that would
// otherwise surface as a panic mid-run.
func (s *Scene) Validate() error {
	for key := range s.Bonds {
		if key.A < 0 || key.A >= len(s.Particles) || key.B < 0 || key.B >= len(s.Particles) {
			return fmt.Errorf("bond (%d,%d) references out-of-range particle (have %d)",
				key.A, key.B, len(s.Particles))
		}
		if key.A >= key.B {
			return fmt.Errorf("bond (%d,%d) is not normalized", key.A, key.B)
		}
	}
	return nil
}

// Clone deep-copies the scene. Used to restore initial conditions on
// reset.
func (s *Scene) Clone() *Scene {
	c := &Scene{
		Particles: make([]physics.Particle, len(s.Particles)),
		Bonds:     make(physics.BondSet, len(s.Bonds)),
		Walls:     make([]physics.Wall, len(s.Walls)),
	}
	copy(c.Particles, s.Particles)
	copy(c.Walls, s.Walls)
	for k, v := range s.Bonds {
		c.Bonds[k] = v
	}
	return c
}

// KineticEnergy sums 1/2 m |v|^2 over all particles.
func (s *Scene) KineticEnergy() float64 {
	total := 0.0
	for i := range s.Particles {
		total += s.Particles[i].KineticEnergy()
	}
	return total
}

// Momentum sums m v over all particles.
func (s *Scene) Momentum() physics.Vec2 {
	var total physics.Vec2
	for i := range s.Particles {
		total = total.Add(s.Particles[i].Momentum())
	}
	return total
}

// IsValid reports whether every particle state is finite.
func (s *Scene) IsValid() bool {
	for i := range s.Particles {
		if !s.Particles[i].Pos.IsValid() || !s.Particles[i].Vel.IsValid() {
			return false
		}
	}
	return true
}
