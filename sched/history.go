// Package sched sizes the single-thread/parallel split for bulk
// classification work. Naively parallelizing a small workload pays
// fixed dispatch and synchronization overhead that can exceed the
// workload itself, so Process self-tunes how much it runs on the
// calling thread from recent timing history.
package sched

import (
	"time"
)

const (
	historyLen = 5

	// alpha is the recency weight: the most recent sample contributes
	// alpha, the next alpha*(1-alpha), and so on. With 0.6 the fifth
	// oldest sample is negligible.
	alpha = 0.6
)

// History holds the recent single-thread phase durations that drive
// the split decision, plus the total duration of the last call. It is
// owned by a single caller context and must not be mutated
// concurrently; only the orchestrating thread touches it.
type History struct {
	samples   [historyLen]time.Duration
	cursor    int // next write slot
	lastTotal time.Duration
}

// Record pushes a single-thread phase duration, evicting the oldest
// sample.
func (h *History) Record(d time.Duration) {
	h.samples[h.cursor] = d
	h.cursor = (h.cursor + 1) % historyLen
}

// RecordTotal stores the total duration of the last budgeted call,
// which caps the next single-thread budget at a tenth of its value.
// Sub-microsecond timer readings are replaced with a fixed 1ms floor
// to keep the ratio meaningful.
func (h *History) RecordTotal(d time.Duration) {
	if d.Microseconds() == 0 {
		d = time.Millisecond
	}
	h.lastTotal = d
}

// TimeAllowedOneThread returns the duration the single-thread phase may
// spend: an exponentially decaying weighted sum of the recorded
// samples, most recent first, clamped to 10% of the last total call
// duration so an anomalously large sample cannot starve the parallel
// phase.
func (h *History) TimeAllowedOneThread() time.Duration {
	w := float64(alpha)
	var sum float64
	for i := 0; i < historyLen; i++ {
		sum += w * float64(h.recent(i))
		w *= 1 - alpha
	}

	ceiling := float64(h.lastTotal) / 10
	if sum > ceiling {
		sum = ceiling
	}
	return time.Duration(sum)
}

// recent returns the i-th most recent sample.
func (h *History) recent(i int) time.Duration {
	return h.samples[((h.cursor-1-i)%historyLen+historyLen)%historyLen]
}
