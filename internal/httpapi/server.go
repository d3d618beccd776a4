package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"llmcalc/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListModels() []types.Model
	Status() types.StatusResponse
	Ready() bool
	Estimate(req types.EstimateRequest) (types.EstimateResponse, error)
	EstimateModel(id string, req types.EstimateRequest) (types.EstimateResponse, error)
	Compare(req types.EstimateRequest) (types.CompareResponse, error)
	Quantizations() types.QuantizationsResponse
}

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

type api struct {
	svc Service
}

func NewMux(svc Service) http.Handler {
	a := &api{svc: svc}
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/quantizations", a.quantizations)
		r.Get("/estimate", a.estimateQuery)
		r.Post("/estimate", a.estimateJSON)
		r.Get("/compare", a.compare)
		r.Get("/models", a.models)
		r.Get("/models/{id}/estimate", a.estimateModel)
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// quantizations godoc
// @Summary List quantization factors
// @Tags estimate
// @Produce json
// @Success 200 {object} types.QuantizationsResponse
// @Router /v1/quantizations [get]
func (a *api) quantizations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Quantizations())
}

// estimateJSON godoc
// @Summary Estimate VRAM, RAM and disk requirements
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body types.EstimateRequest true "Estimate input; omitted fields use server defaults"
// @Success 200 {object} types.EstimateResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 415 {object} types.ErrorResponse
// @Router /v1/estimate [post]
func (a *api) estimateJSON(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	// Limit body size (configurable, default 1MiB)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	resp, err := a.svc.Estimate(req)
	a.finishEstimate(w, r, start, resp, err)
}

// estimateQuery godoc
// @Summary Estimate from query parameters
// @Tags estimate
// @Produce json
// @Param params_billions query number false "Model size in billions"
// @Param model_quant query string false "Weight quantization"
// @Param context_length query int false "Context length in tokens"
// @Param use_kv_cache query bool false "Count the KV cache"
// @Param kv_cache_quant query string false "KV cache quantization"
// @Param memory_mode query string false "DISCRETE_GPU or UNIFIED_MEMORY"
// @Param system_memory_gb query number false "System memory in GB"
// @Success 200 {object} types.EstimateResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /v1/estimate [get]
func (a *api) estimateQuery(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, err := parseQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := a.svc.Estimate(req)
	a.finishEstimate(w, r, start, resp, err)
}

// compare godoc
// @Summary Estimate every model quantization for the same input
// @Tags estimate
// @Produce json
// @Success 200 {object} types.CompareResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /v1/compare [get]
func (a *api) compare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, err := parseQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := a.svc.Compare(req)
	if err != nil {
		a.writeServiceError(w, r, start, err)
		return
	}
	for _, e := range resp.Estimates {
		observeEstimate(e)
	}
	logRequest(r, LevelInfo, http.StatusOK, time.Since(start), nil, "compare")
	writeJSON(w, http.StatusOK, resp)
}

// models godoc
// @Summary List model files discovered in the models directory
// @Tags models
// @Produce json
// @Success 200 {object} types.ModelsResponse
// @Router /v1/models [get]
func (a *api) models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.ModelsResponse{Models: a.svc.ListModels()})
}

// estimateModel godoc
// @Summary Estimate a discovered model file
// @Tags models
// @Produce json
// @Param id path string true "Model ID (file name)"
// @Success 200 {object} types.EstimateResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /v1/models/{id}/estimate [get]
func (a *api) estimateModel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, err := parseQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := a.svc.EstimateModel(chi.URLParam(r, "id"), req)
	a.finishEstimate(w, r, start, resp, err)
}

func (a *api) finishEstimate(w http.ResponseWriter, r *http.Request, start time.Time, resp types.EstimateResponse, err error) {
	if err != nil {
		a.writeServiceError(w, r, start, err)
		return
	}
	observeEstimate(resp)
	logRequest(r, LevelInfo, http.StatusOK, time.Since(start), nil, "estimate")
	writeJSON(w, http.StatusOK, resp)
}

// writeServiceError maps err to a status via HTTPError, defaulting to 500.
func (a *api) writeServiceError(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	status := http.StatusInternalServerError
	var he HTTPError
	if errors.As(err, &he) {
		status = he.StatusCode()
	}
	lvl := LevelInfo
	if status >= http.StatusInternalServerError {
		lvl = LevelError
	}
	logRequest(r, lvl, status, time.Since(start), err, "estimate")
	writeJSONError(w, status, err.Error())
}

// parseQuery reads EstimateRequest fields from URL query parameters.
func parseQuery(r *http.Request) (types.EstimateRequest, error) {
	q := r.URL.Query()
	var req types.EstimateRequest
	if v := q.Get("params_billions"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errors.New("invalid params_billions parameter")
		}
		req.ParamsBillions = &f
	}
	if v := q.Get("context_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.New("invalid context_length parameter")
		}
		req.ContextLength = &n
	}
	if v := q.Get("use_kv_cache"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, errors.New("invalid use_kv_cache parameter")
		}
		req.UseKVCache = &b
	}
	if v := q.Get("system_memory_gb"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errors.New("invalid system_memory_gb parameter")
		}
		req.SystemMemoryGB = &f
	}
	req.ModelQuant = q.Get("model_quant")
	req.KVCacheQuant = q.Get("kv_cache_quant")
	req.MemoryMode = q.Get("memory_mode")
	return req, nil
}

// writeJSON encodes v before writing the header so an encoding failure
// becomes a 500 rather than an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logRequest(nil, LevelError, http.StatusInternalServerError, 0, err, "encode response")
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
