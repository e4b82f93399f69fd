// Package metrics exports catalog and cart state as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

const namespace = "catalog_cart"

// StateRecorder updates state gauges from session change events.
type StateRecorder struct {
	products prometheus.Gauge
	cart     prometheus.Gauge
	version  prometheus.Gauge
	changes  *prometheus.CounterVec
}

// NewStateRecorder registers the state metrics with reg.
func NewStateRecorder(reg prometheus.Registerer) *StateRecorder {
	factory := promauto.With(reg)

	return &StateRecorder{
		products: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_products",
			Help:      "Number of products in the catalog",
		}),
		cart: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cart_items_total",
			Help:      "Sum of cart item quantities",
		}),
		version: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "state_version",
			Help:      "Number of state changes since the session started",
		}),
		changes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_changes_total",
			Help:      "State changes by event type",
		}, []string{"type"}),
	}
}

// Notify records a change event.
func (r *StateRecorder) Notify(event model.ChangeEvent) {
	r.products.Set(float64(event.Products))
	r.cart.Set(float64(event.CartCount))
	r.version.Set(float64(event.Version))
	r.changes.WithLabelValues(event.Type).Inc()
}
