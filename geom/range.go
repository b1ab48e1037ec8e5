package geom

// CombineEpsilon is the tolerance used when merging ranges. Edges that
// differ by less than this are treated as equal so that float noise at
// a shared boundary does not keep regenerating slightly different
// bounds.
const CombineEpsilon float32 = 0.01

// Range is a closed scalar interval on a single axis. All operations
// assume Min <= Max; the invariant is not enforced and callers must
// preserve it.
type Range struct {
	Min float32
	Max float32
}

func NewRange(min, max float32) Range {
	return Range{Min: min, Max: max}
}

func (r Range) Length() float32 {
	return r.Max - r.Min
}

func (r Range) Center() float32 {
	return (r.Min + r.Max) / 2
}

// Combine returns the smallest range containing both r and o, up to
// CombineEpsilon.
func (r Range) Combine(o Range) Range {
	res := r
	if o.Min < res.Min-CombineEpsilon {
		res.Min = o.Min
	}
	if o.Max > res.Max+CombineEpsilon {
		res.Max = o.Max
	}
	return res
}

// Overlaps reports whether r and o share at least one point. Touching
// boundaries count as overlapping.
func (r Range) Overlaps(o Range) bool {
	return r.Min <= o.Max && r.Max >= o.Min
}

// Contains reports whether v lies within r, boundaries included.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Translate shifts the range in place.
func (r *Range) Translate(d float32) {
	r.Min += d
	r.Max += d
}

// Scale resizes the range in place about its center.
func (r *Range) Scale(s float32) {
	c := r.Center()
	half := r.Length() / 2 * s
	r.Min = c - half
	r.Max = c + half
}
