package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveAuthentication(OutcomeSuccess)
	m.ObserveAuthentication(OutcomeFailure)
	m.ObserveAuthentication(OutcomeFailure)
	m.ObserveProvisioned("privileged")
	m.ObserveRequest("grpc", "/exactauth.v1.AuthService/Authenticate", "OK")

	body := scrape(t, m)
	assert.Contains(t, body, `exactauth_authentications_total{outcome="success"} 1`)
	assert.Contains(t, body, `exactauth_authentications_total{outcome="failure"} 2`)
	assert.Contains(t, body, `exactauth_accounts_provisioned_total{kind="privileged"} 1`)
	assert.Contains(t, body, `exactauth_requests_total{code="OK",method="/exactauth.v1.AuthService/Authenticate",transport="grpc"} 1`)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveAuthentication(OutcomeError)
	m.ObserveProvisioned("regular")
	m.ObserveRequest("http", "/", "200")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestHandler_IncludesRuntimeCollectors(t *testing.T) {
	assert.True(t, strings.Contains(scrape(t, New()), "go_goroutines"))
}
