package sim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	frameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "sim_frame_duration_seconds",
		Help: "The time to run one simulated frame, both culling passes included.",
	})

	logicVisibleSections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_logic_visible_sections",
		Help: "The number of sections the logic pass accepted last frame.",
	})

	renderVisibleSections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_render_visible_sections",
		Help: "The number of sections the render pass accepted last frame.",
	})

	entityCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_entities",
		Help: "The number of entities scattered in the synthetic world.",
	})
)
