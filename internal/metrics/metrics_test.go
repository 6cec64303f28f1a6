package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := New("siteadmin")

	m.ObserveRequest("GET", "/api/admin/category/categories", "200", 15*time.Millisecond)
	m.ObserveRequest("GET", "/api/admin/category/categories", "200", 5*time.Millisecond)
	m.RecordAuth("login", "failure")
	m.Notify("tag", "created", 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/admin/category/categories", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntityChanges.WithLabelValues("tag", "created")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "siteadmin_entity_changes_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	// Two instances must not panic on duplicate registration.
	a := New("siteadmin")
	b := New("siteadmin")
	a.Notify("blog", "deleted", 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.EntityChanges.WithLabelValues("blog", "deleted")))
}
