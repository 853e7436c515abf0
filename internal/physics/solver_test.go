package physics

import (
	"math"
	"testing"
)

func totalMomentum(ps []Particle) Vec2 {
	var m Vec2
	for i := range ps {
		m = m.Add(ps[i].Momentum())
	}
	return m
}

func totalKinetic(ps []Particle) float64 {
	total := 0.0
	for i := range ps {
		total += ps[i].KineticEnergy()
	}
	return total
}

func TestCollisionConservesMomentumAndEnergy(t *testing.T) {
	// Overlapping, closing, unequal masses, off-axis velocity.
	particles := []Particle{
		{Pos: Vec2{-0.5, 0}, Vel: Vec2{1, 0.3}, Element: Hydrogen},
		{Pos: Vec2{0.5, 0.1}, Vel: Vec2{-1, 0}, Element: Oxygen},
	}

	p0 := totalMomentum(particles)
	e0 := totalKinetic(particles)

	iterations, converged := solveContacts(particles, nil)
	if !converged {
		t.Fatalf("expected convergence, got %d iterations", iterations)
	}

	p1 := totalMomentum(particles)
	e1 := totalKinetic(particles)

	if math.Abs(p1.X-p0.X) > 1e-9 || math.Abs(p1.Y-p0.Y) > 1e-9 {
		t.Errorf("momentum not conserved: before %+v, after %+v", p0, p1)
	}
	if math.Abs(e1-e0) > 1e-9 {
		t.Errorf("kinetic energy not conserved: before %f, after %f", e0, e1)
	}

	// The collision must actually have happened.
	if particles[0].Vel == (Vec2{1, 0.3}) {
		t.Error("expected first particle velocity to change")
	}
}

func TestEqualMassHeadOnSwap(t *testing.T) {
	// Two oxygen disks (radius ~2.26 each) at +-1 overlap heavily and
	// approach head-on: the elastic update swaps their velocities.
	particles := []Particle{
		{Pos: Vec2{-1, 0}, Vel: Vec2{1, 0}, Element: Oxygen},
		{Pos: Vec2{1, 0}, Vel: Vec2{-1, 0}, Element: Oxygen},
	}

	_, converged := solveContacts(particles, nil)
	if !converged {
		t.Fatal("expected convergence")
	}

	if math.Abs(particles[0].Vel.X+1) > 1e-12 || math.Abs(particles[0].Vel.Y) > 1e-12 {
		t.Errorf("first particle: expected velocity (-1,0), got %+v", particles[0].Vel)
	}
	if math.Abs(particles[1].Vel.X-1) > 1e-12 || math.Abs(particles[1].Vel.Y) > 1e-12 {
		t.Errorf("second particle: expected velocity (1,0), got %+v", particles[1].Vel)
	}
}

func TestSeparatingPairNotResolved(t *testing.T) {
	// Overlapping but already separating: the closing guard must leave
	// the pair alone.
	particles := []Particle{
		{Pos: Vec2{-1, 0}, Vel: Vec2{-1, 0}, Element: Oxygen},
		{Pos: Vec2{1, 0}, Vel: Vec2{1, 0}, Element: Oxygen},
	}

	iterations, converged := solveContacts(particles, nil)
	if !converged || iterations != 1 {
		t.Errorf("expected immediate convergence, got iterations=%d converged=%v", iterations, converged)
	}
	if particles[0].Vel != (Vec2{-1, 0}) || particles[1].Vel != (Vec2{1, 0}) {
		t.Error("separating pair must not be touched")
	}
}

func TestWallReflection(t *testing.T) {
	wall := Wall{Pos: Vec2{5, 0}, Size: Vec2{2, 10}}
	speed := 3.0
	particles := []Particle{
		// Left face of the wall is at x=4; hydrogen radius ~0.564.
		{Pos: Vec2{3.9, 0}, Vel: Vec2{speed, 0}, Element: Hydrogen},
	}

	_, converged := solveContacts(particles, []Wall{wall})
	if !converged {
		t.Fatal("expected convergence")
	}

	v := particles[0].Vel
	if math.Abs(v.X+speed) > 1e-12 || math.Abs(v.Y) > 1e-12 {
		t.Errorf("expected reflected velocity (%f,0), got %+v", -speed, v)
	}
	if math.Abs(v.Length()-speed) > 1e-12 {
		t.Errorf("speed not preserved: %f != %f", v.Length(), speed)
	}
}

func TestWallTangentialMotionUnaffected(t *testing.T) {
	wall := Wall{Pos: Vec2{5, 0}, Size: Vec2{2, 10}}
	particles := []Particle{
		// Penetrating, but sliding parallel to the face: n.v == 0.
		{Pos: Vec2{3.9, 0}, Vel: Vec2{0, 2}, Element: Hydrogen},
	}

	iterations, converged := solveContacts(particles, []Wall{wall})
	if !converged || iterations != 1 {
		t.Errorf("expected immediate convergence, got iterations=%d converged=%v", iterations, converged)
	}
	if particles[0].Vel != (Vec2{0, 2}) {
		t.Errorf("tangential velocity must be unchanged, got %+v", particles[0].Vel)
	}
}

func TestNoContactsConvergesImmediately(t *testing.T) {
	particles := []Particle{
		{Pos: Vec2{-10, 0}, Vel: Vec2{1, 0}, Element: Hydrogen},
		{Pos: Vec2{10, 0}, Vel: Vec2{-1, 0}, Element: Hydrogen},
	}
	walls := []Wall{{Pos: Vec2{0, 20}, Size: Vec2{40, 1}}}

	iterations, converged := solveContacts(particles, walls)
	if !converged {
		t.Error("expected convergence")
	}
	if iterations != 1 {
		t.Errorf("expected a single no-op scan, got %d", iterations)
	}
}

func TestIterationCapExhaustion(t *testing.T) {
	// A corridor narrower than the particle: each reflection sends the
	// particle into the opposite wall, so every scan resolves a
	// contact and the cap is the only way out.
	walls := []Wall{
		{Pos: Vec2{1.3, 0}, Size: Vec2{2, 10}},  // left face at x=0.3
		{Pos: Vec2{-1.3, 0}, Size: Vec2{2, 10}}, // right face at x=-0.3
	}
	particles := []Particle{
		{Pos: Vec2{0, 0}, Vel: Vec2{1, 0}, Element: Hydrogen},
	}

	iterations, converged := solveContacts(particles, walls)
	if converged {
		t.Error("expected non-convergence")
	}
	if iterations != MaxSolverIterations {
		t.Errorf("expected %d iterations, got %d", MaxSolverIterations, iterations)
	}
	if !particles[0].Vel.IsValid() || !particles[0].Pos.IsValid() {
		t.Error("cap exhaustion must not produce NaN state")
	}
}

func TestCoincidentCentersSkipped(t *testing.T) {
	particles := []Particle{
		{Pos: Vec2{0, 0}, Vel: Vec2{1, 0}, Element: Hydrogen},
		{Pos: Vec2{0, 0}, Vel: Vec2{-1, 0}, Element: Hydrogen},
	}

	_, converged := solveContacts(particles, nil)
	if !converged {
		t.Error("degenerate pair should be skipped, not looped on")
	}
	if !particles[0].Vel.IsValid() || !particles[1].Vel.IsValid() {
		t.Error("degenerate pair must not produce NaN velocities")
	}
}
