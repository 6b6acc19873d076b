package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector counts facade events on a caller-supplied registry.
type PrometheusCollector struct {
	compares        prometheus.Counter
	changes         prometheus.Counter
	sectionChanges  *prometheus.CounterVec
	reconstructions *prometheus.CounterVec
}

// NewPrometheus registers the tracediff counters on reg and returns the
// collector. Pass prometheus.DefaultRegisterer to use the process-global
// registry.
func NewPrometheus(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		compares: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracediff_compares_total",
			Help: "Number of trace comparisons performed.",
		}),
		changes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracediff_changes_total",
			Help: "Total changes reported across all comparisons.",
		}),
		sectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracediff_section_changes_total",
			Help: "Comparisons in which a given section reported changes.",
		}, []string{"section"}),
		reconstructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracediff_reconstructions_total",
			Help: "Topology reconstructions by inferred strategy.",
		}, []string{"strategy"}),
	}
	reg.MustRegister(c.compares, c.changes, c.sectionChanges, c.reconstructions)
	return c
}

func (c *PrometheusCollector) CompareObserved(totalChanges int, sectionsWithChanges []string) {
	c.compares.Inc()
	c.changes.Add(float64(totalChanges))
	for _, section := range sectionsWithChanges {
		c.sectionChanges.WithLabelValues(section).Inc()
	}
}

func (c *PrometheusCollector) ReconstructObserved(strategy string, groups, tools int) {
	c.reconstructions.WithLabelValues(strategy).Inc()
}
