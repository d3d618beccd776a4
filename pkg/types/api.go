package types

// EstimateRequest is the body of POST /v1/estimate. Omitted fields take the
// server defaults.
type EstimateRequest struct {
	// Model size in billions of parameters (1-1000).
	// example: 65
	ParamsBillions *float64 `json:"params_billions,omitempty" yaml:"params_billions,omitempty" example:"65"`
	// Weight quantization: F32, F16, Q8, Q6, Q5, Q4, Q3, Q2, GPTQ, AWQ.
	// example: Q4
	ModelQuant string `json:"model_quant,omitempty" yaml:"model_quant,omitempty" example:"Q4"`
	// Context length in tokens (128-32768).
	// example: 4096
	ContextLength *int `json:"context_length,omitempty" yaml:"context_length,omitempty" example:"4096"`
	// Whether the KV cache is counted.
	// example: true
	UseKVCache *bool `json:"use_kv_cache,omitempty" yaml:"use_kv_cache,omitempty" example:"true"`
	// KV cache quantization: F32, F16, Q8, Q5, Q4.
	// example: F16
	KVCacheQuant string `json:"kv_cache_quant,omitempty" yaml:"kv_cache_quant,omitempty" example:"F16"`
	// Memory architecture: DISCRETE_GPU or UNIFIED_MEMORY.
	// example: DISCRETE_GPU
	MemoryMode string `json:"memory_mode,omitempty" yaml:"memory_mode,omitempty" example:"DISCRETE_GPU"`
	// Installed system memory in GB (8-512).
	// example: 128
	SystemMemoryGB *float64 `json:"system_memory_gb,omitempty" yaml:"system_memory_gb,omitempty" example:"128"`
}

// Recommendation is the hardware recommendation for an estimate.
type Recommendation struct {
	// example: Multiple 24GB GPUs
	GPUType string `json:"gpu_type" yaml:"gpu_type" example:"Multiple 24GB GPUs"`
	// Required VRAM rounded to one decimal place.
	// example: 117
	VRAMNeededGB float64 `json:"vram_needed_gb" yaml:"vram_needed_gb" example:"117"`
	// example: false
	FitsUnified bool `json:"fits_unified" yaml:"fits_unified" example:"false"`
	// example: 128
	SystemRAMNeededGB float64 `json:"system_ram_needed_gb" yaml:"system_ram_needed_gb" example:"128"`
	// example: 5
	GPUsRequired int `json:"gpus_required" yaml:"gpus_required" example:"5"`
}

// Breakdown exposes the intermediate terms of the VRAM formula.
type Breakdown struct {
	// example: 32.5
	BaseModelGB float64 `json:"base_model_gb" yaml:"base_model_gb" example:"32.5"`
	// example: 2
	ContextScale float64 `json:"context_scale" yaml:"context_scale" example:"2"`
	// example: 65
	ModelMemGB float64 `json:"model_mem_gb" yaml:"model_mem_gb" example:"65"`
	// example: 52
	KVCacheGB float64 `json:"kv_cache_gb" yaml:"kv_cache_gb" example:"52"`
}

// EstimateInput echoes the resolved input after defaults were applied.
type EstimateInput struct {
	ParamsBillions float64 `json:"params_billions" yaml:"params_billions"`
	ModelQuant     string  `json:"model_quant" yaml:"model_quant"`
	ContextLength  int     `json:"context_length" yaml:"context_length"`
	UseKVCache     bool    `json:"use_kv_cache" yaml:"use_kv_cache"`
	KVCacheQuant   string  `json:"kv_cache_quant" yaml:"kv_cache_quant"`
	MemoryMode     string  `json:"memory_mode" yaml:"memory_mode"`
	SystemMemoryGB float64 `json:"system_memory_gb" yaml:"system_memory_gb"`
}

// EstimateResponse is returned by the estimate endpoints.
type EstimateResponse struct {
	Input EstimateInput `json:"input" yaml:"input"`
	// Unrounded VRAM requirement in GB.
	// example: 117
	RequiredVRAMGB float64 `json:"required_vram_gb" yaml:"required_vram_gb" example:"117"`
	// Weight file size in decimal GB.
	// example: 35.75
	OnDiskSizeGB   float64        `json:"on_disk_size_gb" yaml:"on_disk_size_gb" example:"35.75"`
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
	Breakdown      Breakdown      `json:"breakdown" yaml:"breakdown"`
	// Set when the estimate was derived from a discovered model file.
	ModelID string `json:"model_id,omitempty" yaml:"model_id,omitempty"`
}

// CompareResponse holds one estimate per model quantization.
type CompareResponse struct {
	Estimates []EstimateResponse `json:"estimates" yaml:"estimates"`
}

// QuantizationInfo describes one entry of the quantization tables.
type QuantizationInfo struct {
	// example: Q4
	Name string `json:"name" yaml:"name" example:"Q4"`
	// Weight memory multiplier relative to Q8.
	// example: 0.5
	ModelFactor float64 `json:"model_factor" yaml:"model_factor" example:"0.5"`
	// KV cache multiplier; 0 when not offered for the KV cache.
	// example: 0.5
	KVFactor float64 `json:"kv_factor" yaml:"kv_factor" example:"0.5"`
	// example: 4
	BitsPerParam float64 `json:"bits_per_param" yaml:"bits_per_param" example:"4"`
}

// QuantizationsResponse is returned by GET /v1/quantizations.
type QuantizationsResponse struct {
	Quantizations []QuantizationInfo `json:"quantizations" yaml:"quantizations"`
}

// ModelsResponse wraps the list of models returned by GET /v1/models.
type ModelsResponse struct {
	// List of discovered models.
	Models []Model `json:"models" yaml:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Overall state (loading until the model directory scan finished).
	// example: ready
	State string `json:"state" example:"ready"`
	// Number of discovered models.
	// example: 3
	ModelsCount int `json:"models_count" example:"3"`
	// Directory scanned for model files.
	// example: /home/user/models
	ModelsDir string `json:"models_dir,omitempty" example:"/home/user/models"`
	// Total estimates served.
	// example: 42
	EstimatesTotal uint64 `json:"estimates_total" example:"42"`
	// Last error observed (e.g. a failed directory scan).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
