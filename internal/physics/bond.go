package physics

import "fmt"

// Bond spring parameters. RestDistance is the natural separation
// beyond contact (surface to surface); SpringK scales the restoring
// force per unit of stretch.
const (
	RestDistance = 0.5
	SpringK      = 40.0
)

// BondKey addresses a bond by its two particle indices, normalized so
// A < B. The bond graph holds at most one bond per unordered pair.
type BondKey struct {
	A, B int
}

// NewBondKey normalizes an index pair. Bonding a particle to itself is
// a caller bug.
func NewBondKey(a, b int) BondKey {
	if a == b {
		panic(fmt.Sprintf("physics: bond from particle %d to itself", a))
	}
	if a > b {
		a, b = b, a
	}
	return BondKey{A: a, B: b}
}

// Bond carries identity only: strength and rest parameters derive
// from the two particles' elements.
type Bond struct{}

// BondSet is the bond graph. It shrinks at runtime as bonds break;
// bonds never reform on their own.
type BondSet map[BondKey]Bond

// Link adds a bond between particles a and b, replacing any existing
// bond on that pair.
func (bs BondSet) Link(a, b int) {
	bs[NewBondKey(a, b)] = Bond{}
}

// Linked reports whether a bond exists between a and b.
func (bs BondSet) Linked(a, b int) bool {
	_, ok := bs[NewBondKey(a, b)]
	return ok
}

// Strength is the maximum restoring force a bond between the two
// element species can transmit before breaking. Symmetric in its
// arguments.
func Strength(a, b Element) float64 {
	return strengthTable[a][b]
}

var strengthTable = [numElements][numElements]float64{
	Hydrogen: {Hydrogen: 15.0, Oxygen: 25.0},
	Oxygen:   {Hydrogen: 25.0, Oxygen: 40.0},
}
