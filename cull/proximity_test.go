package cull

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/voidforge/starcull/geom"
)

func TestProximity(t *testing.T) {
	// Nearest corner of the box is (3,4,0), exactly 5 units from the
	// origin.
	box := geom.NewBox(mgl32.Vec3{3, 4, 0}, mgl32.Vec3{10, 10, 10})

	t.Run("nearest corner exactly at lookahead is accepted", func(t *testing.T) {
		p := NewProximity(mgl32.Vec3{0, 0, 0}, 5)
		require.True(t, p.IsVisible(box))
	})

	t.Run("nearest corner beyond lookahead is rejected", func(t *testing.T) {
		p := NewProximity(mgl32.Vec3{0, 0, 0}, 4)
		require.False(t, p.IsVisible(box))

		moved := box
		moved.Translate(mgl32.Vec3{1, 0, 0})
		p = NewProximity(mgl32.Vec3{0, 0, 0}, 5)
		require.False(t, p.IsVisible(moved))
	})

	t.Run("reference point inside the volume is accepted", func(t *testing.T) {
		p := NewProximity(mgl32.Vec3{5, 5, 5}, 20)
		require.True(t, p.IsVisible(box))
	})
}
