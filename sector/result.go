package sector

// Result is the outcome of one culling query: a deduplicating set for
// membership checks and an insertion-ordered sequence for iteration.
// Sequence order reflects scheduling order of the parallel merge, not
// spatial order, and is not stable across runs; the membership set is
// deterministic for a given occupancy snapshot. A Result is built
// fresh per query and is not safe for concurrent mutation.
type Result struct {
	members map[ID]struct{}
	ordered []ID
}

func NewResult() *Result {
	return &Result{members: make(map[ID]struct{})}
}

// Add records the section if it is not already present.
func (r *Result) Add(id ID) {
	if _, ok := r.members[id]; ok {
		return
	}
	r.members[id] = struct{}{}
	r.ordered = append(r.ordered, id)
}

// Merge adds every section of o into r, preserving o's local order.
func (r *Result) Merge(o *Result) {
	for _, id := range o.ordered {
		r.Add(id)
	}
}

func (r *Result) Contains(id ID) bool {
	_, ok := r.members[id]
	return ok
}

func (r *Result) Len() int {
	return len(r.ordered)
}

// IDs returns the sections in insertion order. The returned slice is
// owned by the result and must not be modified.
func (r *Result) IDs() []ID {
	return r.ordered
}
