package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voidforge/starcull/sector"
)

// World is an in-memory occupancy index over a fixed set of scattered
// entities. Entity positions are bucketed into the section containing
// them at every detail level when the world is built; after that the
// world is read only, which is what makes IsOccupied safe to call from
// many culling workers at once.
type World struct {
	levels        int
	sectionLength float32
	extent        float32
	occupied      map[sector.ID]int
	entities      []mgl32.Vec3
}

// BuildWorld scatters the scenario's clusters and indexes the
// resulting entity positions at every detail level.
func BuildWorld(scn Scenario) *World {
	w := &World{
		levels:        scn.DetailLevels,
		sectionLength: scn.SectionLength,
		extent:        scn.WorldExtent,
		occupied:      make(map[sector.ID]int),
	}

	rng := rand.New(rand.NewSource(scn.Seed))
	for _, c := range scn.Clusters {
		for i := 0; i < c.Count; i++ {
			p := mgl32.Vec3{
				clamp(c.Center[0]+jitter(rng, c.Radius), scn.WorldExtent),
				clamp(c.Center[1]+jitter(rng, c.Radius), scn.WorldExtent),
				clamp(c.Center[2]+jitter(rng, c.Radius), scn.WorldExtent),
			}
			w.addEntity(p)
		}
	}
	return w
}

func (w *World) addEntity(p mgl32.Vec3) {
	w.entities = append(w.entities, p)

	for level := 0; level < w.levels; level++ {
		edge := w.sectionLength * float32(int32(1)<<level)
		w.occupied[sector.ID{
			Level: int32(level),
			X:     int32(math.Floor(float64(p.X() / edge))),
			Z:     int32(math.Floor(float64(p.Z() / edge))),
			Y:     int32(math.Floor(float64(p.Y() / edge))),
		}]++
	}
}

func (w *World) MaxDetailLevel() int {
	return w.levels
}

func (w *World) IsOccupied(id sector.ID) bool {
	return w.occupied[id] > 0
}

func (w *World) EntityCount() int {
	return len(w.entities)
}

// OccupiedSectionCount counts the distinct occupied sections across
// all detail levels.
func (w *World) OccupiedSectionCount() int {
	return len(w.occupied)
}

func jitter(rng *rand.Rand, radius float32) float32 {
	return (rng.Float32()*2 - 1) * radius
}

func clamp(v, extent float32) float32 {
	if v < 0 {
		return 0
	}
	if v > extent {
		return extent
	}
	return v
}
