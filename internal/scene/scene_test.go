package scene

import (
	"math"
	"testing"

	"github.com/mkarpis/partbox/internal/physics"
)

func TestValidate(t *testing.T) {
	s := New()
	s.Particles = []physics.Particle{
		{Element: physics.Hydrogen},
		{Element: physics.Oxygen},
	}
	s.Bonds.Link(0, 1)

	if err := s.Validate(); err != nil {
		t.Errorf("valid scene rejected: %v", err)
	}

	s.Bonds[physics.BondKey{A: 0, B: 7}] = physics.Bond{}
	if err := s.Validate(); err == nil {
		t.Error("expected error for out-of-range bond")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.Particles = []physics.Particle{
		{Pos: physics.Vec2{X: 1}, Element: physics.Hydrogen},
		{Pos: physics.Vec2{X: 2}, Element: physics.Hydrogen},
	}
	s.Bonds.Link(0, 1)

	c := s.Clone()
	c.Particles[0].Pos.X = 99
	delete(c.Bonds, physics.NewBondKey(0, 1))

	if s.Particles[0].Pos.X != 1 {
		t.Error("clone shares particle storage")
	}
	if !s.Bonds.Linked(0, 1) {
		t.Error("clone shares bond graph")
	}
}

func TestAggregates(t *testing.T) {
	s := New()
	s.Particles = []physics.Particle{
		{Vel: physics.Vec2{X: 2}, Element: physics.Hydrogen},
		{Vel: physics.Vec2{X: -1}, Element: physics.Oxygen},
	}

	ke := 0.5*1*4 + 0.5*16*1
	if math.Abs(s.KineticEnergy()-ke) > 1e-12 {
		t.Errorf("kinetic energy: expected %f, got %f", ke, s.KineticEnergy())
	}

	p := s.Momentum()
	if math.Abs(p.X-(2-16)) > 1e-12 || p.Y != 0 {
		t.Errorf("momentum: got %+v", p)
	}
}
