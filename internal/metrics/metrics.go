package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the billing collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	InvoicesUpserted   *prometheus.CounterVec
	TriggersFired      *prometheus.CounterVec
	InvoiceSends       *prometheus.CounterVec
	BestEffortFailures *prometheus.CounterVec
	SweepDuration      prometheus.Histogram
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		InvoicesUpserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_invoices_upserted_total",
				Help: "Invoices written by the assembler",
			},
			[]string{"kind", "result"},
		),
		TriggersFired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_triggers_total",
				Help: "Billing triggers evaluated",
			},
			[]string{"trigger"},
		),
		InvoiceSends: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_invoice_sends_total",
				Help: "Invoice delivery attempts",
			},
			[]string{"channel", "status"},
		),
		BestEffortFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_best_effort_failures_total",
				Help: "Side effects that failed and were only logged",
			},
			[]string{"operation"},
		),
		SweepDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "billing_sweep_duration_seconds",
				Help:    "Duration of a full billing sweep",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	registry.MustRegister(
		m.InvoicesUpserted,
		m.TriggersFired,
		m.InvoiceSends,
		m.BestEffortFailures,
		m.SweepDuration,
	)
	return m
}

func (m *Metrics) InvoiceUpserted(kind, result string) {
	if m == nil {
		return
	}
	m.InvoicesUpserted.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) TriggerFired(trigger string) {
	if m == nil {
		return
	}
	m.TriggersFired.WithLabelValues(trigger).Inc()
}

func (m *Metrics) InvoiceSent(channel string, ok bool) {
	if m == nil {
		return
	}
	status := "success"
	if !ok {
		status = "failure"
	}
	m.InvoiceSends.WithLabelValues(channel, status).Inc()
}

func (m *Metrics) BestEffortFailed(operation string) {
	if m == nil {
		return
	}
	m.BestEffortFailures.WithLabelValues(operation).Inc()
}

func (m *Metrics) ObserveSweep(d time.Duration) {
	if m == nil {
		return
	}
	m.SweepDuration.Observe(d.Seconds())
}

// Handler exposes registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
