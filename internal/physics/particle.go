package physics

// Particle is a mobile point-mass disk. Mass, radius, and color are
// derived from the element, never stored.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Element Element
}

func (p *Particle) Mass() float64 { return p.Element.Mass() }

func (p *Particle) Radius() float64 { return p.Element.Radius() }

func (p *Particle) Color() RGB { return p.Element.Color() }

// KineticEnergy returns 1/2 m |v|^2.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass() * p.Vel.LengthSq()
}

// Momentum returns m v.
func (p *Particle) Momentum() Vec2 {
	return p.Vel.Scale(p.Mass())
}
