package sector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultAdd(t *testing.T) {
	r := NewResult()
	r.Add(ID{Level: 0, X: 1, Z: 2, Y: 3})
	r.Add(ID{Level: 0, X: 1, Z: 2, Y: 3})
	r.Add(ID{Level: 1, X: 0, Z: 0, Y: 0})

	require.Equal(t, 2, r.Len())
	require.True(t, r.Contains(ID{Level: 0, X: 1, Z: 2, Y: 3}))
	require.True(t, r.Contains(ID{Level: 1, X: 0, Z: 0, Y: 0}))
	require.False(t, r.Contains(ID{Level: 2, X: 0, Z: 0, Y: 0}))
}

func TestResultMerge(t *testing.T) {
	a := NewResult()
	a.Add(ID{X: 1})
	a.Add(ID{X: 2})

	b := NewResult()
	b.Add(ID{X: 2})
	b.Add(ID{X: 3})

	a.Merge(b)
	require.Equal(t, 3, a.Len())
	require.Equal(t, []ID{{X: 1}, {X: 2}, {X: 3}}, a.IDs(), "merge preserves insertion order and dedups")
}
