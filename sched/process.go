package sched

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Process applies fn to every item. Items are taken from the front on
// the calling thread, checking elapsed time after each one, until the
// allowed single-thread budget is spent; the remainder runs on a
// bounded parallel group to completion. The history is updated for
// future calls: the single-thread duration is recorded only when the
// phase ended by exceeding its budget, the total duration always.
//
// fn must be safe to call from multiple goroutines.
func Process[T any](h *History, items []T, fn func(T)) {
	start := time.Now()
	defer func() {
		h.RecordTotal(time.Since(start))
	}()

	allowed := h.TimeAllowedOneThread()

	next := 0
	for next < len(items) {
		fn(items[next])
		next++
		if time.Since(start) > allowed {
			break
		}
	}
	if next == len(items) {
		return
	}

	h.Record(time.Since(start))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, item := range items[next:] {
		item := item
		g.Go(func() error {
			fn(item)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error
}
