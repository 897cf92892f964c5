package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("POST", "/book", 303, 25*time.Millisecond)
	m.Observe("POST", "/book", 303, 30*time.Millisecond)
	m.Observe("GET", "", 200, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/book", "303")); got != 2 {
		t.Fatalf("expected 2 requests recorded, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unknown", "200")); got != 1 {
		t.Fatalf("expected empty route to normalize, got %v", got)
	}
}

func TestObserveNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("GET", "/", 200, time.Millisecond)
}
