package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned bounding volume made of one Range per axis.
// It is a value type: operations return new boxes except Translate and
// Scale which mutate in place.
type Box struct {
	X Range
	Y Range
	Z Range
}

func NewBox(min, max mgl32.Vec3) Box {
	return Box{
		X: Range{Min: min.X(), Max: max.X()},
		Y: Range{Min: min.Y(), Max: max.Y()},
		Z: Range{Min: min.Z(), Max: max.Z()},
	}
}

// BoxAround returns the box of the given half extent centered on c.
func BoxAround(c mgl32.Vec3, halfExtent float32) Box {
	e := mgl32.Vec3{halfExtent, halfExtent, halfExtent}
	return NewBox(c.Sub(e), c.Add(e))
}

func (b Box) Min() mgl32.Vec3 {
	return mgl32.Vec3{b.X.Min, b.Y.Min, b.Z.Min}
}

func (b Box) Max() mgl32.Vec3 {
	return mgl32.Vec3{b.X.Max, b.Y.Max, b.Z.Max}
}

func (b Box) Center() mgl32.Vec3 {
	return mgl32.Vec3{b.X.Center(), b.Y.Center(), b.Z.Center()}
}

// Combine returns the smallest box containing both b and o, with the
// per-axis CombineEpsilon tolerance.
func (b Box) Combine(o Box) Box {
	return Box{
		X: b.X.Combine(o.X),
		Y: b.Y.Combine(o.Y),
		Z: b.Z.Combine(o.Z),
	}
}

func (b Box) Overlaps(o Box) bool {
	return b.X.Overlaps(o.X) && b.Y.Overlaps(o.Y) && b.Z.Overlaps(o.Z)
}

func (b Box) Contains(p mgl32.Vec3) bool {
	return b.X.Contains(p.X()) && b.Y.Contains(p.Y()) && b.Z.Contains(p.Z())
}

// Corners returns the eight corner points, every combination of the
// per-axis Min and Max.
func (b Box) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.X.Min, b.Y.Min, b.Z.Min},
		{b.X.Max, b.Y.Min, b.Z.Min},
		{b.X.Min, b.Y.Max, b.Z.Min},
		{b.X.Max, b.Y.Max, b.Z.Min},
		{b.X.Min, b.Y.Min, b.Z.Max},
		{b.X.Max, b.Y.Min, b.Z.Max},
		{b.X.Min, b.Y.Max, b.Z.Max},
		{b.X.Max, b.Y.Max, b.Z.Max},
	}
}

// Transform applies m to the min and max corners only and re-derives
// axis-aligned bounds from the two transformed points. This is an
// approximation that is only valid for transforms that do not rotate
// the box.
func (b Box) Transform(m mgl32.Mat4) Box {
	p := mgl32.TransformCoordinate(b.Min(), m)
	q := mgl32.TransformCoordinate(b.Max(), m)

	min := mgl32.Vec3{
		min32(p.X(), q.X()),
		min32(p.Y(), q.Y()),
		min32(p.Z(), q.Z()),
	}
	max := mgl32.Vec3{
		max32(p.X(), q.X()),
		max32(p.Y(), q.Y()),
		max32(p.Z(), q.Z()),
	}
	return NewBox(min, max)
}

// Translate shifts the box in place.
func (b *Box) Translate(v mgl32.Vec3) {
	b.X.Translate(v.X())
	b.Y.Translate(v.Y())
	b.Z.Translate(v.Z())
}

// Scale resizes the box in place about its center.
func (b *Box) Scale(s float32) {
	b.X.Scale(s)
	b.Y.Scale(s)
	b.Z.Scale(s)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
