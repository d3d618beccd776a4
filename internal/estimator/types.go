package estimator

// Quantization names a numeric-precision scheme for model weights or KV cache.
type Quantization string

const (
	F32  Quantization = "F32"
	F16  Quantization = "F16"
	Q8   Quantization = "Q8"
	Q6   Quantization = "Q6"
	Q5   Quantization = "Q5"
	Q4   Quantization = "Q4"
	Q3   Quantization = "Q3"
	Q2   Quantization = "Q2"
	GPTQ Quantization = "GPTQ"
	AWQ  Quantization = "AWQ"
)

// MemoryMode describes how the host exposes graphics memory.
type MemoryMode string

const (
	DiscreteGPU   MemoryMode = "DISCRETE_GPU"
	UnifiedMemory MemoryMode = "UNIFIED_MEMORY"
)

// ModelConfig describes the model being loaded.
type ModelConfig struct {
	ParamsBillions float64
	Quantization   Quantization
	ContextLength  int
}

// KVCacheConfig describes the KV cache. Quantization is ignored when disabled.
type KVCacheConfig struct {
	Enabled      bool
	Quantization Quantization
}

// HardwareConfig describes the target machine.
type HardwareConfig struct {
	MemoryMode     MemoryMode
	SystemMemoryGB float64
}

// Input is everything one estimate needs.
type Input struct {
	Model    ModelConfig
	KVCache  KVCacheConfig
	Hardware HardwareConfig
}

// Recommendation is derived from the required VRAM and the hardware.
type Recommendation struct {
	GPUType string
	// VRAMNeededGB is the required VRAM rounded to one decimal place.
	VRAMNeededGB      float64
	FitsUnified       bool
	SystemRAMNeededGB float64
	GPUsRequired      int
}

// Breakdown shows the intermediate terms of the VRAM formula.
type Breakdown struct {
	BaseModelGB  float64
	ContextScale float64
	ModelMemGB   float64
	KVCacheGB    float64
}

// Result is the output of Estimate.
type Result struct {
	Quantization   Quantization
	RequiredVRAMGB float64
	OnDiskSizeGB   float64
	Recommendation Recommendation
	Breakdown      Breakdown
}
