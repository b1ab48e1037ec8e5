package sector

import (
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voidforge/starcull/cull"
	"github.com/voidforge/starcull/geom"
	"github.com/voidforge/starcull/sched"
)

// DefaultSectionLength is the cell edge length at detail level 0, in
// world units.
const DefaultSectionLength float32 = 32

// candidates are filtered in fixed-size batches so that the merge lock
// is taken once per batch, not once per section.
const chunkSize = 25

// candidate pairs a section with its world-space bounds during
// enumeration.
type candidate struct {
	id  ID
	box geom.Box
}

// Finder runs culling queries against an occupancy index. The base
// section length is carried per instance so concurrent queries with
// different resolutions cannot interfere; changing it affects
// subsequent queries only.
//
// Each Finder owns its own scheduling history, so one adaptive curve
// per call site. A Finder must not be used from multiple goroutines at
// once.
type Finder struct {
	// SectionLength is the cell edge length at detail level 0. Cells
	// double in edge length with each level above it.
	SectionLength float32

	// SingleThreaded forces every batch onto the calling thread,
	// bypassing the adaptive split.
	SingleThreaded bool

	history *sched.History
}

func NewFinder(sectionLength float32) *Finder {
	if sectionLength <= 0 {
		sectionLength = DefaultSectionLength
	}
	return &Finder{
		SectionLength: sectionLength,
		history:       &sched.History{},
	}
}

// FindAround queries a box of half extent radius centered on pos, with
// the minimum corner clamped to the non-negative octant. Useful for
// logic culling, which looks in all directions.
func (f *Finder) FindAround(pred cull.Predicate, idx Index, pos mgl32.Vec3, radius float32) *Result {
	return f.FindVisibleInBox(pred, idx, clampToWorld(geom.BoxAround(pos, radius)))
}

// FindAhead queries a box of half extent radius whose center is pushed
// forward from pos by half the radius along dir, with the minimum
// corner clamped to the non-negative octant. Useful for render
// culling, where the camera looks ahead.
func (f *Finder) FindAhead(pred cull.Predicate, idx Index, pos, dir mgl32.Vec3, radius float32) *Result {
	center := pos
	if dir.Len() > 0 {
		center = pos.Add(dir.Normalize().Mul(radius / 2))
	}
	return f.FindVisibleInBox(pred, idx, clampToWorld(geom.BoxAround(center, radius)))
}

// FindVisibleInBox returns every section inside query, at every detail
// level, that is both occupied and accepted by pred. Candidates are
// filtered in parallel batches; each worker accumulates a local result
// and merges it into the shared aggregate under a single lock
// acquisition per batch.
func (f *Finder) FindVisibleInBox(pred cull.Predicate, idx Index, query geom.Box) *Result {
	start := time.Now()

	cands := f.enumerate(idx.MaxDetailLevel(), query)
	sectionsEnumerated.Add(float64(len(cands)))

	var mu sync.Mutex
	agg := NewResult()

	filter := func(batch []candidate) {
		local := NewResult()
		for _, c := range batch {
			if !idx.IsOccupied(c.id) {
				continue
			}
			if !pred.IsVisible(c.box) {
				continue
			}
			local.Add(c.id)
		}
		if local.Len() == 0 {
			return
		}
		mu.Lock()
		agg.Merge(local)
		mu.Unlock()
	}

	batches := batch(cands, chunkSize)
	if f.SingleThreaded {
		for _, b := range batches {
			filter(b)
		}
	} else {
		sched.Process(f.history, batches, filter)
	}

	sectionsVisible.Add(float64(agg.Len()))
	passDuration.Observe(time.Since(start).Seconds())
	return agg
}

// enumerate generates every (id, bounds) candidate inside query across
// all detail levels. The cell edge length at level L is the base
// section length times 2^L; coverage per axis is a ceiling division of
// the query extent, starting from the floor division of the query
// minimum corner.
func (f *Finder) enumerate(levels int, query geom.Box) []candidate {
	var cands []candidate

	for level := 0; level < levels; level++ {
		edge := f.SectionLength * float32(int32(1)<<level)

		nx := cellsNeeded(query.X, edge)
		ny := cellsNeeded(query.Y, edge)
		nz := cellsNeeded(query.Z, edge)

		baseX := cellIndex(query.X.Min, edge)
		baseY := cellIndex(query.Y.Min, edge)
		baseZ := cellIndex(query.Z.Min, edge)

		for ix := int32(0); ix < nx; ix++ {
			for iy := int32(0); iy < ny; iy++ {
				for iz := int32(0); iz < nz; iz++ {
					id := ID{
						Level: int32(level),
						X:     baseX + ix,
						Z:     baseZ + iz,
						Y:     baseY + iy,
					}
					min := mgl32.Vec3{
						float32(id.X) * edge,
						float32(id.Y) * edge,
						float32(id.Z) * edge,
					}
					max := mgl32.Vec3{
						min.X() + edge,
						min.Y() + edge,
						min.Z() + edge,
					}
					cands = append(cands, candidate{id: id, box: geom.NewBox(min, max)})
				}
			}
		}
	}
	return cands
}

// cellsNeeded is the number of whole cells of the given edge length
// covering the range.
func cellsNeeded(r geom.Range, edge float32) int32 {
	return int32(math.Ceil(float64(r.Length() / edge)))
}

// cellIndex is the grid index of the cell containing v.
func cellIndex(v, edge float32) int32 {
	return int32(math.Floor(float64(v / edge)))
}

// clampToWorld lifts the minimum corner into the non-negative octant;
// the world occupies non-negative coordinates only.
func clampToWorld(b geom.Box) geom.Box {
	if b.X.Min < 0 {
		b.X.Min = 0
	}
	if b.Y.Min < 0 {
		b.Y.Min = 0
	}
	if b.Z.Min < 0 {
		b.Z.Min = 0
	}
	return b
}

func batch(cands []candidate, size int) [][]candidate {
	var batches [][]candidate
	for len(cands) > size {
		batches = append(batches, cands[:size])
		cands = cands[size:]
	}
	if len(cands) > 0 {
		batches = append(batches, cands)
	}
	return batches
}
