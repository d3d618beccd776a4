package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"llmcalc/internal/estimator"
	"llmcalc/pkg/types"
)

// State represents the lifecycle state of the service.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Service resolves requests and runs the estimator.
type Service struct {
	mu        sync.RWMutex
	state     State
	err       string
	registry  []types.Model
	modelsDir string
	scan      func(dir string) ([]types.Model, error)
	defaults  Defaults

	estimates atomic.Uint64
	startTime time.Time
}

// New constructs a Service. With a ModelsDir and Scan func the service starts
// in StateLoading until Refresh runs; otherwise it is ready immediately.
func New(cfg Config) *Service {
	s := &Service{
		state:     StateReady,
		registry:  append([]types.Model(nil), cfg.Registry...),
		modelsDir: cfg.ModelsDir,
		scan:      cfg.Scan,
		defaults:  cfg.Defaults.withFallbacks(),
		startTime: time.Now(),
	}
	if s.modelsDir != "" && s.scan != nil {
		s.state = StateLoading
	}
	return s
}

// Refresh rescans the models directory. A failed scan keeps the previous
// registry and moves the service to StateError.
func (s *Service) Refresh() error {
	if s.modelsDir == "" || s.scan == nil {
		return nil
	}
	models, err := s.scan(s.modelsDir)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateError
		s.err = err.Error()
		return fmt.Errorf("scan %s: %w", s.modelsDir, err)
	}
	s.registry = models
	s.state = StateReady
	s.err = ""
	return nil
}

// Ready reports whether the registry has been loaded.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateReady
}

// ListModels returns a copy of the discovered models.
func (s *Service) ListModels() []types.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Model, len(s.registry))
	copy(out, s.registry)
	return out
}

// Status summarizes the service for GET /status.
func (s *Service) Status() types.StatusResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := time.Now()
	return types.StatusResponse{
		State:          string(s.state),
		ModelsCount:    len(s.registry),
		ModelsDir:      s.modelsDir,
		EstimatesTotal: s.estimates.Load(),
		LastError:      s.err,
		UptimeSeconds:  int64(now.Sub(s.startTime).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}

// Defaults returns the effective request defaults.
func (s *Service) Defaults() Defaults { return s.defaults }

// Estimate resolves req against the defaults and runs the estimator.
func (s *Service) Estimate(req types.EstimateRequest) (types.EstimateResponse, error) {
	return s.estimateWith(req, s.defaults)
}

// EstimateModel estimates a discovered model. The model's parameter count and
// quantization act as defaults that req may override.
func (s *Service) EstimateModel(id string, req types.EstimateRequest) (types.EstimateResponse, error) {
	mdl, ok := s.getModelByID(id)
	if !ok {
		return types.EstimateResponse{}, ErrModelNotFound(id)
	}
	d := s.defaults
	if mdl.ParamsBillions > 0 {
		d.ParamsBillions = mdl.ParamsBillions
	} else if req.ParamsBillions == nil {
		return types.EstimateResponse{}, invalidInputError{err: fmt.Errorf("params_billions: unknown for model %s, pass it explicitly", id)}
	}
	if mdl.Quant != "" {
		d.ModelQuant = mdl.Quant
	} else if req.ModelQuant == "" {
		return types.EstimateResponse{}, invalidInputError{err: fmt.Errorf("model_quant: unknown for model %s, pass it explicitly", id)}
	}
	resp, err := s.estimateWith(req, d)
	if err != nil {
		return resp, err
	}
	resp.ModelID = mdl.ID
	return resp, nil
}

func (s *Service) estimateWith(req types.EstimateRequest, d Defaults) (types.EstimateResponse, error) {
	in, err := resolve(req, d)
	if err != nil {
		return types.EstimateResponse{}, err
	}
	s.estimates.Add(1)
	return renderResult(in, estimator.Estimate(in)), nil
}

// Compare evaluates req once for every model quantization. req.ModelQuant is
// ignored apart from validation.
func (s *Service) Compare(req types.EstimateRequest) (types.CompareResponse, error) {
	in, err := resolve(req, s.defaults)
	if err != nil {
		return types.CompareResponse{}, err
	}
	results := estimator.Compare(in)
	out := types.CompareResponse{Estimates: make([]types.EstimateResponse, 0, len(results))}
	for _, r := range results {
		out.Estimates = append(out.Estimates, renderResult(in, r))
	}
	s.estimates.Add(uint64(len(results)))
	return out, nil
}

// Quantizations returns the quantization catalog.
func (s *Service) Quantizations() types.QuantizationsResponse {
	return types.QuantizationsResponse{Quantizations: renderCatalog(estimator.Catalog())}
}

func (s *Service) getModelByID(id string) (types.Model, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, mdl := range s.registry {
		if mdl.ID == id {
			return mdl, true
		}
	}
	return types.Model{}, false
}
