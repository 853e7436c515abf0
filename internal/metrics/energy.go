// Package metrics provides run-level scalar observations over scene
// state: kinetic energy, momentum drift, and bond population.
package metrics

import (
	"github.com/mkarpis/partbox/internal/scene"
)

// KineticEnergy averages total kinetic energy over the run. With no
// external field and elastic contacts only, bond impulses are the
// only thing that changes it.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{}
}

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(s *scene.Scene, t float64) {
	k.total += s.KineticEnergy()
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}
