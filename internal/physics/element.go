package physics

import (
	"fmt"
	"math"
)

// Element identifies a particle species. The set is closed: every
// element is a row in the property table below, and nothing outside
// this package ever needs to know more than mass and color.
type Element int

const (
	Hydrogen Element = iota
	Oxygen

	numElements
)

// RGB is a display color with components in [0, 1].
type RGB [3]float64

type elementProps struct {
	name  string
	mass  float64
	color RGB
}

// Adding a species means adding one row here. Mass must stay positive:
// particle radii are derived from it.
var elementTable = [numElements]elementProps{
	Hydrogen: {name: "hydrogen", mass: 1.0, color: RGB{1, 1, 1}},
	Oxygen:   {name: "oxygen", mass: 16.0, color: RGB{1, 0, 0}},
}

// Elements returns every known element in declaration order.
func Elements() []Element {
	out := make([]Element, numElements)
	for i := range out {
		out[i] = Element(i)
	}
	return out
}

// ParseElement resolves a config-file species name.
func ParseElement(name string) (Element, error) {
	for i, p := range elementTable {
		if p.name == name {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("unknown element: %q", name)
}

func (e Element) String() string { return elementTable[e].name }

func (e Element) Mass() float64 { return elementTable[e].mass }

func (e Element) Color() RGB { return elementTable[e].color }

// Radius is the disk radius of a particle of this element, assuming
// constant areal density: r = sqrt(m / pi).
func (e Element) Radius() float64 {
	return math.Sqrt(e.Mass() / math.Pi)
}
