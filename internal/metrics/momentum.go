package metrics

import (
	"math"

	"github.com/mkarpis/partbox/internal/physics"
	"github.com/mkarpis/partbox/internal/scene"
)

// MomentumDrift tracks the largest deviation of total momentum from
// its first observed value. Particle/particle contacts and bond
// impulses preserve momentum; wall reflections do not (the wall has
// infinite mass), so this is only meaningful for wall-free scenes.
type MomentumDrift struct {
	initial  physics.Vec2
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(s *scene.Scene, t float64) {
	p := s.Momentum()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	drift := p.Sub(m.initial).Length()
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = physics.Vec2{}
	m.maxDrift = 0
	m.samples = 0
}

// BondCount reports the bond population at the last observation.
type BondCount struct {
	count int
}

func NewBondCount() *BondCount {
	return &BondCount{}
}

func (b *BondCount) Name() string { return "bonds" }

func (b *BondCount) Observe(s *scene.Scene, t float64) {
	b.count = len(s.Bonds)
}

func (b *BondCount) Value() float64 { return float64(b.count) }

func (b *BondCount) Reset() { b.count = 0 }
