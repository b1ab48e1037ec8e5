// Package cull decides which world-space volumes are relevant to a
// viewer. Two predicates share the contract: a cheap distance test used
// by entity logic and a geometrically exact frustum test used by
// rendering.
package cull

import (
	"github.com/voidforge/starcull/geom"
)

// Predicate reports whether a volume is relevant to its holder. The two
// implementations share no state format; callers only hold the
// contract.
type Predicate interface {
	IsVisible(geom.Box) bool
}
