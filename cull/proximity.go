package cull

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voidforge/starcull/geom"
)

// Proximity accepts a volume when its closest corner lies within
// Lookahead of From, boundary included. Entity logic must run slightly
// before a region becomes visually exposed, so the test is over
// inclusive rather than geometrically tight.
type Proximity struct {
	From      mgl32.Vec3
	Lookahead float32
}

func NewProximity(from mgl32.Vec3, lookahead float32) Proximity {
	return Proximity{From: from, Lookahead: lookahead}
}

func (p Proximity) IsVisible(b geom.Box) bool {
	corners := b.Corners()

	nearest := corners[0].Sub(p.From).Len()
	for _, c := range corners[1:] {
		if d := c.Sub(p.From).Len(); d < nearest {
			nearest = d
		}
	}
	return nearest <= p.Lookahead
}
