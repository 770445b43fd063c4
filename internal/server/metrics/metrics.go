// Package metrics exposes the server's Prometheus counters. A nil *Metrics
// is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Authentication outcomes. Failures are not broken down by reason.
const (
	OutcomeSuccess     = "success"
	OutcomeFailure     = "failure"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"
)

type Metrics struct {
	registry        *prometheus.Registry
	authentications *prometheus.CounterVec
	provisioned     *prometheus.CounterVec
	requests        *prometheus.CounterVec
}

// New creates the counters on a private registry together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		authentications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exactauth",
			Name:      "authentications_total",
			Help:      "Authentication attempts by outcome.",
		}, []string{"outcome"}),
		provisioned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exactauth",
			Name:      "accounts_provisioned_total",
			Help:      "Accounts created, by kind (regular or privileged).",
		}, []string{"kind"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exactauth",
			Name:      "requests_total",
			Help:      "Transport requests by transport, method and status.",
		}, []string{"transport", "method", "code"}),
	}
	reg.MustRegister(
		m.authentications,
		m.provisioned,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveAuthentication(outcome string) {
	if m == nil {
		return
	}
	m.authentications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveProvisioned(kind string) {
	if m == nil {
		return
	}
	m.provisioned.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveRequest(transport, method, code string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(transport, method, code).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
