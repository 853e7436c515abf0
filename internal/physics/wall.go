package physics

// Wall is a static axis-aligned rectangle with infinite effective
// mass. Pos is the center, Size the full extent on each axis. Walls
// are never mutated by the physics step.
type Wall struct {
	Pos   Vec2
	Size  Vec2
	Color RGB
}

// ClosestPoint returns the point on the wall (boundary or interior)
// nearest to p, by clamping p relative to the center to +-Size/2.
func (w *Wall) ClosestPoint(p Vec2) Vec2 {
	rel := p.Sub(w.Pos)
	return Vec2{
		X: clamp(rel.X, -w.Size.X*0.5, w.Size.X*0.5),
		Y: clamp(rel.Y, -w.Size.Y*0.5, w.Size.Y*0.5),
	}.Add(w.Pos)
}

// Contains reports whether p lies inside the rectangle. Used by
// hit-testing in the presentation layer, not by the solver.
func (w *Wall) Contains(p Vec2) bool {
	rel := p.Sub(w.Pos)
	return rel.X >= -w.Size.X*0.5 && rel.X <= w.Size.X*0.5 &&
		rel.Y >= -w.Size.Y*0.5 && rel.Y <= w.Size.Y*0.5
}
