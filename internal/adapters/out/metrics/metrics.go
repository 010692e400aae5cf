// Package metrics exposes HTTP and checkout business metrics to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Metrics holds every collector of the service.
type Metrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	Checkouts *prometheus.CounterVec
	Vouchers  *prometheus.CounterVec
	Tips      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

var _ ports.CheckoutMetrics = (*Metrics)(nil)

// New registers the collectors on reg. Use prometheus.NewRegistry() in tests
// to avoid clashing with the default registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		Checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "evaluations_total",
			Help:      "Delivery options evaluations by whether the order could proceed.",
		}, []string{"can_proceed"}),
		Vouchers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "voucher_attempts_total",
			Help:      "Voucher previews and redemptions by outcome.",
		}, []string{"stage", "outcome"}),
		Tips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "tip_results_total",
			Help:      "Gateway tip results by final status.",
		}, []string{"status"}),
		gatherer: reg,
	}

	reg.MustRegister(m.Requests, m.LatencyMS, m.Checkouts, m.Vouchers, m.Tips)
	return m
}

func (m *Metrics) ObserveCheckout(canProceed bool) {
	m.Checkouts.WithLabelValues(strconv.FormatBool(canProceed)).Inc()
}

func (m *Metrics) ObserveVoucher(stage, outcome string) {
	m.Vouchers.WithLabelValues(stage, outcome).Inc()
}

func (m *Metrics) ObserveTipResult(status string) {
	m.Tips.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records every request under its route pattern, so path
// parameters do not explode the label space.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			handler := c.Path()
			if handler == "" {
				handler = "unmatched"
			}
			m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Microseconds()) / 1000)
			return err
		}
	}
}
