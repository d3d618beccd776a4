package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"llmcalc/pkg/types"
)

type mockService struct {
	models   []types.Model
	status   types.StatusResponse
	ready    bool
	err      error
	lastReq  types.EstimateRequest
	lastID   string
	estimate types.EstimateResponse
}

func (m *mockService) ListModels() []types.Model    { return append([]types.Model(nil), m.models...) }
func (m *mockService) Status() types.StatusResponse { return m.status }
func (m *mockService) Ready() bool                  { return m.ready }
func (m *mockService) Estimate(req types.EstimateRequest) (types.EstimateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return types.EstimateResponse{}, m.err
	}
	return m.estimate, nil
}
func (m *mockService) EstimateModel(id string, req types.EstimateRequest) (types.EstimateResponse, error) {
	m.lastID = id
	resp, err := m.Estimate(req)
	resp.ModelID = id
	return resp, err
}
func (m *mockService) Compare(req types.EstimateRequest) (types.CompareResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return types.CompareResponse{}, m.err
	}
	return types.CompareResponse{Estimates: []types.EstimateResponse{m.estimate, m.estimate}}, nil
}
func (m *mockService) Quantizations() types.QuantizationsResponse {
	return types.QuantizationsResponse{Quantizations: []types.QuantizationInfo{{Name: "Q4", ModelFactor: 0.5}}}
}

type mockHTTPError struct {
	msg  string
	code int
}

func (e mockHTTPError) Error() string   { return e.msg }
func (e mockHTTPError) StatusCode() int { return e.code }

func sampleEstimate() types.EstimateResponse {
	return types.EstimateResponse{
		Input:          types.EstimateInput{MemoryMode: "DISCRETE_GPU"},
		RequiredVRAMGB: 117,
		Recommendation: types.Recommendation{GPUsRequired: 5, VRAMNeededGB: 117},
	}
}

func postEstimate(h http.Handler, body, ct string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewBufferString(body))
	if ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	h.ServeHTTP(w, req)
	return w
}

func TestModelsHandler(t *testing.T) {
	svc := &mockService{models: []types.Model{{ID: "m1"}, {ID: "m2"}}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/models", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.ModelsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Models) != 2 {
		t.Fatalf("models len=%d", len(body.Models))
	}
}

func TestStatusHandler(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{State: "ready", EstimatesTotal: 10}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.EstimatesTotal != 10 || body.State != "ready" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReadyz(t *testing.T) {
	r := NewMux(&mockService{ready: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz_NotReady(t *testing.T) {
	r := NewMux(&mockService{ready: false})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "loading") {
		t.Fatalf("body=%q", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestEstimateJSON(t *testing.T) {
	svc := &mockService{estimate: sampleEstimate()}
	w := postEstimate(NewMux(svc), `{"params_billions":65,"model_quant":"Q4","context_length":4096,"use_kv_cache":true}`, "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if svc.lastReq.ParamsBillions == nil || *svc.lastReq.ParamsBillions != 65 || svc.lastReq.ModelQuant != "Q4" {
		t.Fatalf("request not decoded: %+v", svc.lastReq)
	}
	if svc.lastReq.SystemMemoryGB != nil {
		t.Fatalf("omitted field should stay nil")
	}
	var body types.EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Recommendation.GPUsRequired != 5 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEstimateBadJSON(t *testing.T) {
	w := postEstimate(NewMux(&mockService{}), "not-json", "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestEstimateUnsupportedMediaType(t *testing.T) {
	w := postEstimate(NewMux(&mockService{}), `{}`, "text/plain")
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestContentTypeCaseInsensitive(t *testing.T) {
	w := postEstimate(NewMux(&mockService{}), `{}`, "Application/JSON; charset=utf-8")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with mixed-case content-type, got %d", w.Code)
	}
}

func TestEstimateBodyTooLarge(t *testing.T) {
	big := `{"model_quant":"` + strings.Repeat("a", (1<<20)+10) + `"}`
	w := postEstimate(NewMux(&mockService{}), big, "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for too-large body, got %d", w.Code)
	}
}

func TestEstimateHTTPErrorMapping(t *testing.T) {
	svc := &mockService{err: mockHTTPError{msg: "params_billions out of range", code: http.StatusBadRequest}}
	w := postEstimate(NewMux(svc), `{}`, "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Code != http.StatusBadRequest || !strings.Contains(body.Error, "out of range") {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestEstimateGenericErrorMaps500(t *testing.T) {
	w := postEstimate(NewMux(&mockService{err: io.EOF}), `{}`, "application/json")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestEstimateQuery(t *testing.T) {
	svc := &mockService{estimate: sampleEstimate()}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimate?params_billions=7&model_quant=F16&context_length=8192&use_kv_cache=false&kv_cache_quant=Q8&memory_mode=unified&system_memory_gb=64", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	req := svc.lastReq
	if *req.ParamsBillions != 7 || req.ModelQuant != "F16" || *req.ContextLength != 8192 || *req.UseKVCache || req.KVCacheQuant != "Q8" || req.MemoryMode != "unified" || *req.SystemMemoryGB != 64 {
		t.Fatalf("query not parsed: %+v", req)
	}
}

func TestEstimateQuery_BadNumbers(t *testing.T) {
	r := NewMux(&mockService{})
	for _, q := range []string{"params_billions=x", "context_length=1.5", "use_kv_cache=maybe", "system_memory_gb=lots"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimate?"+q, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", q, w.Code)
		}
	}
}

func TestCompareHandler(t *testing.T) {
	svc := &mockService{estimate: sampleEstimate()}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/compare?params_billions=13", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.CompareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Estimates) != 2 {
		t.Fatalf("estimates=%d", len(body.Estimates))
	}

	svc.err = mockHTTPError{msg: "bad", code: http.StatusBadRequest}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestQuantizationsHandler(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quantizations", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Q4"`) {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestEstimateModelHandler(t *testing.T) {
	svc := &mockService{estimate: sampleEstimate()}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/models/llama-2-7b.Q4_K_M.gguf/estimate?context_length=4096", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if svc.lastID != "llama-2-7b.Q4_K_M.gguf" || *svc.lastReq.ContextLength != 4096 {
		t.Fatalf("unexpected id=%q req=%+v", svc.lastID, svc.lastReq)
	}
}

func TestEstimateModelNotFound404(t *testing.T) {
	svc := &mockService{err: mockHTTPError{msg: "model not found: x", code: http.StatusNotFound}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/models/x/estimate", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWrappedHTTPErrorStillMapped(t *testing.T) {
	svc := &mockService{err: errors.Join(errors.New("ctx"), mockHTTPError{msg: "nf", code: http.StatusNotFound})}
	w := postEstimate(NewMux(svc), `{}`, "application/json")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
