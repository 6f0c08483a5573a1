package query

import "github.com/prometheus/client_golang/prometheus"

// Metrics tracks how often the view is rebuilt and how large it is
type Metrics struct {
	recomputations *prometheus.CounterVec
	viewSize       prometheus.Gauge
	catalogSize    prometheus.Gauge
}

// NewMetrics creates and registers the query engine collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		recomputations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_catalog_view_recomputations_total",
				Help: "Number of filtered view recomputations by trigger",
			},
			[]string{"trigger"},
		),
		viewSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_catalog_view_products",
			Help: "Products in the current filtered view",
		}),
		catalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_catalog_products",
			Help: "Products in the source catalog",
		}),
	}

	reg.MustRegister(m.recomputations, m.viewSize, m.catalogSize)
	return m
}

func (m *Metrics) observe(trigger string, v View) {
	if m == nil {
		return
	}
	m.recomputations.WithLabelValues(trigger).Inc()
	m.viewSize.Set(float64(v.Matched))
	m.catalogSize.Set(float64(v.Total))
}
