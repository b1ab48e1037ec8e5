package sector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sectionsEnumerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cull_sections_enumerated",
		Help: "The number of candidate sections generated by culling passes.",
	})

	sectionsVisible = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cull_sections_visible",
		Help: "The number of sections that survived occupancy and visibility checks.",
	})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "cull_pass_duration_seconds",
		Help: "The time to run a full culling pass.",
	})
)
