package types

// Model represents a model weight file discovered on disk.
type Model struct {
	// Stable identifier for the model (the file name).
	// example: llama-2-13b.Q4_K_M.gguf
	ID string `json:"id" yaml:"id" example:"llama-2-13b.Q4_K_M.gguf"`
	// Human-friendly name.
	// example: llama-2-13b
	Name string `json:"name" yaml:"name" example:"llama-2-13b"`
	// Absolute path to the model file on disk.
	// example: /home/user/models/llama-2-13b.Q4_K_M.gguf
	Path string `json:"path" yaml:"path" example:"/home/user/models/llama-2-13b.Q4_K_M.gguf"`
	// Quantization mapped onto the estimator's enum (empty when unknown).
	// example: Q4
	Quant string `json:"quant" yaml:"quant" example:"Q4"`
	// Optional family (e.g., llama, mistral, phi).
	// example: llama
	Family string `json:"family,omitempty" yaml:"family,omitempty" example:"llama"`
	// Parameter count in billions (0 when unknown).
	// example: 13
	ParamsBillions float64 `json:"params_billions" yaml:"params_billions" example:"13"`
	// File size in bytes.
	// example: 7865956352
	SizeBytes int64 `json:"size_bytes" yaml:"size_bytes" example:"7865956352"`
}
