package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"llmcalc/pkg/types"
)

func scrape(t *testing.T) []byte {
	t.Helper()
	mrr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(mrr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if mrr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", mrr.Code)
	}
	return mrr.Body.Bytes()
}

func preview(b []byte) string {
	if len(b) > 400 {
		b = b[:400]
	}
	return string(b)
}

// TestMetricsMiddleware_EmitsRequestCounters verifies that wrapping a handler
// with MetricsMiddleware results in request metrics being exposed via the
// Prometheus /metrics handler.
func TestMetricsMiddleware_EmitsRequestCounters(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	MetricsMiddleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	body := scrape(t)
	if !bytes.Contains(body, []byte("llmcalc_http_requests_total")) {
		t.Fatalf("expected to find llmcalc_http_requests_total in metrics; got: %q", preview(body))
	}
}

// TestMetricsMiddleware_UsesRoutePattern ensures requests are labeled by the
// chi route pattern rather than the raw URL path.
func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/v1/models/{id}/estimate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/models/some-unique-model.gguf/estimate", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	body := scrape(t)
	if !bytes.Contains(body, []byte(`path="/v1/models/{id}/estimate"`)) {
		t.Fatalf("expected route pattern label; got: %q", preview(body))
	}
	if bytes.Contains(body, []byte("some-unique-model.gguf")) {
		t.Fatalf("raw path leaked into labels")
	}
}

func TestObserveEstimate_CountsByModeAndFit(t *testing.T) {
	fits := estimatesTotal.WithLabelValues("UNIFIED_MEMORY", "true")
	spill := estimatesTotal.WithLabelValues("DISCRETE_GPU", "false")
	beforeFits := testutil.ToFloat64(fits)
	beforeSpill := testutil.ToFloat64(spill)

	observeEstimate(types.EstimateResponse{
		Input:          types.EstimateInput{MemoryMode: "UNIFIED_MEMORY"},
		RequiredVRAMGB: 117,
		Recommendation: types.Recommendation{GPUsRequired: 1, FitsUnified: true},
	})
	observeEstimate(types.EstimateResponse{
		Input:          types.EstimateInput{MemoryMode: "DISCRETE_GPU"},
		RequiredVRAMGB: 117,
		Recommendation: types.Recommendation{GPUsRequired: 5},
	})

	if got := testutil.ToFloat64(fits); got != beforeFits+1 {
		t.Fatalf("fits counter=%v, want %v", got, beforeFits+1)
	}
	if got := testutil.ToFloat64(spill); got != beforeSpill+1 {
		t.Fatalf("spill counter=%v, want %v", got, beforeSpill+1)
	}
}

func TestEstimateEndpointRecordsMetrics(t *testing.T) {
	counter := estimatesTotal.WithLabelValues("DISCRETE_GPU", "false")
	before := testutil.ToFloat64(counter)

	h := NewMux(&mockService{estimate: sampleEstimate()})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/estimate", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("estimates_total=%v, want %v", got, before+1)
	}

	body := scrape(t)
	if !bytes.Contains(body, []byte("llmcalc_estimate_required_vram_gb_bucket")) {
		t.Fatalf("missing vram histogram; got: %q", preview(body))
	}
}

func TestMetricsEndpointMounted(t *testing.T) {
	h := NewMux(&mockService{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
}
