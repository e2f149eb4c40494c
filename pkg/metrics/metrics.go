// Package metrics provides Prometheus instrumentation for the stock ledger.
//
// Wire it up once in cmd/api/main.go:
//
//	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MovementsApplied counts committed stock movements by type (IN/OUT).
	MovementsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inventorytrack",
			Subsystem: "ledger",
			Name:      "movements_applied_total",
			Help:      "Total stock movements committed to the ledger.",
		},
		[]string{"type"},
	)

	// MovementsRejected counts rejected movements by reason.
	MovementsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inventorytrack",
			Subsystem: "ledger",
			Name:      "movements_rejected_total",
			Help:      "Total stock movements rejected before commit.",
		},
		[]string{"reason"}, // "validation" | "not_found" | "insufficient_stock" | "storage"
	)

	// ProductsCreated counts product records created through the API.
	ProductsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "inventorytrack",
			Subsystem: "catalog",
			Name:      "products_created_total",
			Help:      "Total products created.",
		},
	)
)

// DefaultRegistry is the registry exposed on /metrics.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		MovementsApplied,
		MovementsRejected,
		ProductsCreated,
	)
}

// Handler returns the handler that renders the metrics page.
func Handler() http.Handler {
	return promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
