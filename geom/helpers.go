package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Enclosing returns the tightest box containing every given point. An
// empty point set returns the degenerate zero box.
func Enclosing(points []mgl32.Vec3) Box {
	if len(points) == 0 {
		return Box{}
	}

	b := NewBox(points[0], points[0])
	for _, p := range points[1:] {
		if p.X() < b.X.Min {
			b.X.Min = p.X()
		}
		if p.X() > b.X.Max {
			b.X.Max = p.X()
		}
		if p.Y() < b.Y.Min {
			b.Y.Min = p.Y()
		}
		if p.Y() > b.Y.Max {
			b.Y.Max = p.Y()
		}
		if p.Z() < b.Z.Min {
			b.Z.Min = p.Z()
		}
		if p.Z() > b.Z.Max {
			b.Z.Max = p.Z()
		}
	}
	return b
}

// OutOfBounds reports whether any part of b lies outside [0, extent] on
// any axis. The world is assumed cubic with a non-negative origin.
func OutOfBounds(b Box, extent float32) bool {
	return b.X.Min < 0 || b.X.Max > extent ||
		b.Y.Min < 0 || b.Y.Max > extent ||
		b.Z.Min < 0 || b.Z.Max > extent
}

// DistanceTo approximates the distance from p to the box by subtracting
// the box's bounding-sphere radius from the distance to its center,
// floored at zero. Cheap and conservative rather than exact.
func DistanceTo(b Box, p mgl32.Vec3) float32 {
	lx := b.X.Length()
	ly := b.Y.Length()
	lz := b.Z.Length()
	radius := float32(math.Sqrt(float64(lx*lx+ly*ly+lz*lz))) / 2

	d := p.Sub(b.Center()).Len() - radius
	if d < 0 {
		return 0
	}
	return d
}
