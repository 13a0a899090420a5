// Package metrics отдаёт состояние производства в Prometheus.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopfloor/internal/production"
	"shopfloor/internal/storage"
)

const namespace = "shopfloor"

// Source: то, что коллектор читает при каждом scrape.
type Source interface {
	Summary(workOrderID string) (storage.Summary, error)
	WorkOrders() []storage.WorkOrder
}

type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	expiries    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Operation and work order commands by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		expiries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "suspension_expiries_total",
				Help:      "Break and indirect time expiries",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(
		m.transitions,
		m.expiries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Watch регистрирует коллектор по доске.
func (m *Metrics) Watch(src Source) error {
	return m.registry.Register(&boardCollector{src: src})
}

func (m *Metrics) ObserveTransition(action string, err error) {
	m.transitions.WithLabelValues(action, outcome(err)).Inc()
}

func (m *Metrics) ObserveExpiry(status storage.OperationStatus) {
	m.expiries.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, production.ErrRejected):
		return "rejected"
	default:
		return "invalid"
	}
}

var (
	operationsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "operations"),
		"Operations by status",
		[]string{"status"}, nil,
	)
	elapsedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "elapsed_seconds"),
		"Timer seconds summed over all operations",
		nil, nil,
	)
	progressDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "work_order_progress_percent"),
		"Work order progress, produced/target*100",
		[]string{"work_order", "status"}, nil,
	)
)

type boardCollector struct {
	src Source
}

func (c *boardCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- operationsDesc
	ch <- elapsedDesc
	ch <- progressDesc
}

func (c *boardCollector) Collect(ch chan<- prometheus.Metric) {
	sum, err := c.src.Summary("")
	if err == nil {
		for _, status := range storage.OperationStatuses {
			ch <- prometheus.MustNewConstMetric(operationsDesc, prometheus.GaugeValue, float64(sum.Counts[status]), string(status))
		}
		ch <- prometheus.MustNewConstMetric(elapsedDesc, prometheus.GaugeValue, float64(sum.TotalSeconds))
	}

	for _, wo := range c.src.WorkOrders() {
		ch <- prometheus.MustNewConstMetric(progressDesc, prometheus.GaugeValue, float64(wo.Progress), wo.ID, string(wo.Status))
	}
}
