package estimator

import (
	"fmt"
	"math"
	"strings"
)

// Bounds accepted by the input controls.
const (
	MinParamsBillions = 1
	MaxParamsBillions = 1000
	MinContextLength  = 128
	MaxContextLength  = 32768
	MinSystemMemoryGB = 8
	MaxSystemMemoryGB = 512
)

// ValidationError lists every out-of-range or unknown field of an Input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

// Validate checks in against the documented ranges and enum sets. Estimate does
// not call it; callers that accept user input should.
func (in Input) Validate() error {
	var p []string
	if !inRange(in.Model.ParamsBillions, MinParamsBillions, MaxParamsBillions) {
		p = append(p, fmt.Sprintf("params_billions %g out of range [%d, %d]", in.Model.ParamsBillions, MinParamsBillions, MaxParamsBillions))
	}
	if !IsModelQuantization(in.Model.Quantization) {
		p = append(p, fmt.Sprintf("unknown model quantization %q", in.Model.Quantization))
	}
	if in.Model.ContextLength < MinContextLength || in.Model.ContextLength > MaxContextLength {
		p = append(p, fmt.Sprintf("context_length %d out of range [%d, %d]", in.Model.ContextLength, MinContextLength, MaxContextLength))
	}
	if in.KVCache.Enabled && !IsKVQuantization(in.KVCache.Quantization) {
		p = append(p, fmt.Sprintf("unknown kv cache quantization %q", in.KVCache.Quantization))
	}
	if in.Hardware.MemoryMode != DiscreteGPU && in.Hardware.MemoryMode != UnifiedMemory {
		p = append(p, fmt.Sprintf("unknown memory mode %q", in.Hardware.MemoryMode))
	}
	if !inRange(in.Hardware.SystemMemoryGB, MinSystemMemoryGB, MaxSystemMemoryGB) {
		p = append(p, fmt.Sprintf("system_memory_gb %g out of range [%d, %d]", in.Hardware.SystemMemoryGB, MinSystemMemoryGB, MaxSystemMemoryGB))
	}
	if len(p) == 0 {
		return nil
	}
	return &ValidationError{Problems: p}
}

// inRange reports whether v is finite and within [lo, hi]. NaN compares false
// against both bounds, so it is rejected explicitly.
func inRange(v, lo, hi float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= lo && v <= hi
}
