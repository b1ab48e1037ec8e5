package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeAllowedOneThread(t *testing.T) {
	t.Run("weighted sum over uniform samples", func(t *testing.T) {
		var h History
		for i := 0; i < 5; i++ {
			h.Record(1000 * time.Microsecond)
		}
		h.RecordTotal(time.Second)

		// 1000us * (0.6 + 0.24 + 0.096 + 0.0384 + 0.01536) = 989.76us
		require.InDelta(t, 989760, float64(h.TimeAllowedOneThread()), 1)
	})

	t.Run("clamped to a tenth of the last total", func(t *testing.T) {
		var h History
		for i := 0; i < 5; i++ {
			h.Record(1000 * time.Microsecond)
		}
		h.RecordTotal(2 * time.Millisecond)

		require.Equal(t, 200*time.Microsecond, h.TimeAllowedOneThread())
	})

	t.Run("recency weighting dominates", func(t *testing.T) {
		var h History
		for i := 0; i < 5; i++ {
			h.Record(100 * time.Microsecond)
		}
		h.Record(10000 * time.Microsecond) // most recent, evicts one old sample
		h.RecordTotal(time.Second)

		// 0.6*10000 + (0.24+0.096+0.0384+0.01536)*100 = 6038.976us
		require.InDelta(t, 6038976, float64(h.TimeAllowedOneThread()), 1)
	})

	t.Run("empty history allows nothing", func(t *testing.T) {
		var h History
		require.Equal(t, time.Duration(0), h.TimeAllowedOneThread())
	})
}

func TestRecordEvictsOldest(t *testing.T) {
	var h History
	for i := 1; i <= 6; i++ {
		h.Record(time.Duration(i) * time.Millisecond)
	}

	// Samples are now 6,5,4,3,2ms most recent first; the 1ms sample is
	// gone.
	require.Equal(t, 6*time.Millisecond, h.recent(0))
	require.Equal(t, 5*time.Millisecond, h.recent(1))
	require.Equal(t, 2*time.Millisecond, h.recent(4))
}

func TestRecordTotalFloor(t *testing.T) {
	var h History
	h.RecordTotal(500 * time.Nanosecond)
	require.Equal(t, time.Millisecond, h.lastTotal, "sub-microsecond totals fall back to the fixed floor")

	h.RecordTotal(3 * time.Millisecond)
	require.Equal(t, 3*time.Millisecond, h.lastTotal)
}
