// Package sector enumerates the coarse regions of the world that are
// close or visible enough to warrant further processing this frame.
// The world is decomposed into a multi-resolution grid: cell edge
// length doubles with each detail level, so the number of cells
// examined stays bounded even for large query volumes, without
// building or walking an explicit tree.
package sector

// ID addresses one grid cell at one detail level. Identity is purely
// structural: two IDs with the same tuple refer to the same region, and
// the zero-cost comparability makes ID usable directly as a map key
// into the occupancy index and result sets.
type ID struct {
	Level int32
	X     int32
	Z     int32
	Y     int32
}

// Index is the external occupancy service recording which sections
// currently contain tracked content. Implementations must be safe for
// concurrent reads: IsOccupied is called from many worker goroutines
// during a culling pass without external synchronization.
type Index interface {
	// MaxDetailLevel returns the number of detail levels to enumerate.
	// Levels 0 through MaxDetailLevel-1 are walked.
	MaxDetailLevel() int

	// IsOccupied reports whether the section currently has any tracked
	// entity content.
	IsOccupied(ID) bool
}
