package cull

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voidforge/starcull/geom"
)

// plane is ax + by + cz + d = 0 with the normal pointing inside the
// frustum.
type plane struct {
	a, b, c, d float32
}

func (p plane) normalize() plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// Frustum accepts a volume when no clip plane has all eight corners on
// its negative side. The test is conservative: it can accept a box that
// is outside the frustum in pathological orientations, but it never
// rejects a box that genuinely intersects it. Corners exactly on a
// plane count as inside.
//
// A Frustum captures the view-projection transform it was built from;
// the owner must build a new one whenever the camera moves or the
// projection changes.
type Frustum struct {
	planes [6]plane
}

// NewFrustum extracts the six clip planes (left, right, bottom, top,
// near, far) by adding and subtracting rows of the combined
// projection * view transform, then normalizing each plane.
func NewFrustum(viewProj mgl32.Mat4) Frustum {
	// mgl32 matrices are column-major: element (row r, col c) is at
	// index c*4+r.
	m00, m01, m02, m03 := viewProj[0], viewProj[4], viewProj[8], viewProj[12]
	m10, m11, m12, m13 := viewProj[1], viewProj[5], viewProj[9], viewProj[13]
	m20, m21, m22, m23 := viewProj[2], viewProj[6], viewProj[10], viewProj[14]
	m30, m31, m32, m33 := viewProj[3], viewProj[7], viewProj[11], viewProj[15]

	var f Frustum
	f.planes[0] = plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03}.normalize() // left
	f.planes[1] = plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03}.normalize() // right
	f.planes[2] = plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13}.normalize() // bottom
	f.planes[3] = plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13}.normalize() // top
	f.planes[4] = plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23}.normalize() // near
	f.planes[5] = plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23}.normalize() // far
	return f
}

func (f Frustum) IsVisible(b geom.Box) bool {
	corners := b.Corners()

	for _, p := range f.planes {
		satisfied := false
		for _, c := range corners {
			satisfied = satisfied || p.a*c.X()+p.b*c.Y()+p.c*c.Z()+p.d >= 0
		}
		if !satisfied {
			return false
		}
	}
	return true
}
