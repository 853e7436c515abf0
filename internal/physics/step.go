package physics

import "fmt"

// Report describes what one Advance call did. It replaces a printed
// warning: Converged == false means the solver hit its iteration cap
// and the frame proceeded with approximate velocities.
type Report struct {
	SolverIterations int
	Converged        bool
	BondsBroken      int
}

// Advance runs one physics tick over caller-owned state: contact
// resolution, then bond forces (breaking overstressed bonds), then
// integration. Walls are read-only; particles and bonds are mutated
// in place. dt must be non-negative.
//
// Advance panics if a bond references a particle index outside
// particles; that is an index-management bug in the caller, and
// skipping it silently would mask it.
func Advance(particles []Particle, bonds BondSet, walls []Wall, dt float64) Report {
	var rep Report
	rep.SolverIterations, rep.Converged = solveContacts(particles, walls)
	rep.BondsBroken = applyBondForces(particles, bonds, dt)
	integrate(particles, dt)
	return rep
}

// applyBondForces applies a one-sided Hookean impulse to every bonded
// pair and removes bonds whose required force exceeds the pair's
// strength. Returns the number of bonds broken.
//
// Deleting from a map being ranged over is safe in Go: the removed
// entry is simply never yielded again, so the shrinking graph is
// walked without skips or repeats.
func applyBondForces(particles []Particle, bonds BondSet, dt float64) int {
	broken := 0
	for key := range bonds {
		if key.A < 0 || key.A >= len(particles) || key.B < 0 || key.B >= len(particles) {
			panic(fmt.Sprintf("physics: bond (%d,%d) references out-of-range particle (have %d)",
				key.A, key.B, len(particles)))
		}
		a := &particles[key.A]
		b := &particles[key.B]

		gap := a.Pos.Distance(b.Pos) - (a.Radius() + b.Radius() + RestDistance)
		force := SpringK * gap

		if force > Strength(a.Element, b.Element) {
			delete(bonds, key)
			broken++
			continue
		}

		// Impulses weighted by the opposite mass so momentum is
		// preserved exactly. The direction vector is unnormalized,
		// matching the contact impulse formulation.
		ma, mb := a.Mass(), b.Mass()
		span := b.Pos.Sub(a.Pos)
		a.Vel = a.Vel.Add(span.Scale(force * 2 * mb / (ma + mb) * dt))
		b.Vel = b.Vel.Sub(span.Scale(force * 2 * ma / (ma + mb) * dt))
	}
	return broken
}

// integrate advances positions by the finalized velocities. Explicit
// Euler, no sub-stepping: callers wanting finer resolution invoke the
// whole step more often with a smaller dt.
func integrate(particles []Particle, dt float64) {
	for i := range particles {
		particles[i].Pos = particles[i].Pos.Add(particles[i].Vel.Scale(dt))
	}
}
