package physics

// MaxSolverIterations caps the contact-resolution loop. Dense
// many-body clusters can keep producing closing contacts after each
// round of impulses; past the cap the step proceeds with whatever
// velocity state exists and reports non-convergence.
const MaxSolverIterations = 100

// minSeparation guards the normalized separation direction: pairs
// closer than this are skipped rather than dividing by (near) zero.
const minSeparation = 1e-9

// solveContacts repeatedly scans all particle pairs and all
// particle/wall pairs, resolving one round of overlapping, closing
// contacts per iteration, until a full scan resolves nothing or the
// iteration cap is hit. Velocities are mutated, positions never.
//
// This is a Gauss-Seidel-style sequential solve: within a scan,
// later pairs see the impulses applied by earlier ones, and the
// result for three or more simultaneous contacts depends on index
// order. That approximation is accepted; an exact simultaneous solve
// is a different algorithm entirely.
func solveContacts(particles []Particle, walls []Wall) (iterations int, converged bool) {
	for iterations < MaxSolverIterations {
		iterations++
		collided := false

		for i := range particles {
			for j := i + 1; j < len(particles); j++ {
				if resolvePair(&particles[i], &particles[j]) {
					collided = true
				}
			}
		}

		for i := range particles {
			for w := range walls {
				if resolveWall(&particles[i], &walls[w]) {
					collided = true
				}
			}
		}

		if !collided {
			return iterations, true
		}
	}
	return iterations, false
}

// resolvePair applies the standard 2D elastic point-mass collision
// update to an overlapping, closing pair. Conserves momentum and
// kinetic energy.
func resolvePair(a, b *Particle) bool {
	d := a.Pos.Distance(b.Pos)
	if d >= a.Radius()+b.Radius() {
		return false
	}
	if d < minSeparation {
		// Coincident centers have no separation direction.
		return false
	}

	sep := a.Pos.Sub(b.Pos)
	relVel := a.Vel.Sub(b.Vel)
	if relVel.Dot(sep)/d >= 0 {
		// Overlapping but already separating.
		return false
	}

	ma, mb := a.Mass(), b.Mass()
	va, vb := a.Vel, b.Vel

	a.Vel = va.Sub(sep.Scale(2 * mb / (ma + mb) * va.Sub(vb).Dot(sep) / (d * d)))
	b.Vel = vb.Sub(sep.Scale(-1).Scale(2 * ma / (ma + mb) * vb.Sub(va).Dot(sep.Scale(-1)) / (d * d)))
	return true
}

// resolveWall reflects a particle penetrating a wall and moving
// further into it: v' = v - 2(v.n)n, with n the unit direction from
// the particle toward its closest point on the wall.
func resolveWall(p *Particle, w *Wall) bool {
	closest := w.ClosestPoint(p.Pos)
	toWall := closest.Sub(p.Pos)

	if toWall.LengthSq() >= p.Radius()*p.Radius() {
		return false
	}
	dist := toWall.Length()
	if dist < minSeparation {
		// Center inside the wall: no usable normal, leave it to the
		// next frame when the overlap direction is recoverable.
		return false
	}

	n := toWall.Scale(1 / dist)
	if n.Dot(p.Vel) <= 0 {
		// Touching or moving away, including travel parallel to the
		// surface.
		return false
	}

	p.Vel = p.Vel.Sub(n.Scale(2 * p.Vel.Dot(n)))
	return true
}
