package cart

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/cart/domain"
)

// Metrics exposes the cart aggregates shown in the header and summary views
type Metrics struct {
	items     prometheus.Gauge
	lines     prometheus.Gauge
	value     prometheus.Gauge
	mutations *prometheus.CounterVec
}

// NewMetrics creates and registers the cart collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_cart_items",
			Help: "Units currently in the cart",
		}),
		lines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_cart_lines",
			Help: "Distinct products currently in the cart",
		}),
		value: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_cart_value",
			Help: "Total price of the cart",
		}),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_cart_mutations_total",
				Help: "Cart mutations by operation and persistence outcome",
			},
			[]string{"op", "status"},
		),
	}

	reg.MustRegister(m.items, m.lines, m.value, m.mutations)
	return m
}

func (m *Metrics) observe(c domain.Cart) {
	if m == nil {
		return
	}
	m.items.Set(float64(c.Count()))
	m.lines.Set(float64(c.Len()))
	m.value.Set(c.Total())
}

func (m *Metrics) mutation(op Op, c domain.Cart, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.mutations.WithLabelValues(string(op), status).Inc()
	m.observe(c)
}
