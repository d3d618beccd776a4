package estimator

import "strings"

// defaultFactor is used for any quantization missing from a table (Q8 equivalent).
const defaultFactor = 1.0

var modelFactors = map[Quantization]float64{
	F32:  4.0,
	F16:  2.0,
	Q8:   1.0,
	Q6:   0.75,
	Q5:   0.625,
	Q4:   0.5,
	Q3:   0.375,
	Q2:   0.25,
	GPTQ: 0.4,
	AWQ:  0.35,
}

var kvFactors = map[Quantization]float64{
	F32: 4.0,
	F16: 2.0,
	Q8:  1.0,
	Q5:  0.625,
	Q4:  0.5,
}

// ModelFactor returns the weight memory multiplier relative to Q8.
func ModelFactor(q Quantization) float64 {
	if f, ok := modelFactors[q]; ok {
		return f
	}
	return defaultFactor
}

// KVFactor returns the KV cache memory multiplier relative to Q8.
func KVFactor(q Quantization) float64 {
	if f, ok := kvFactors[q]; ok {
		return f
	}
	return defaultFactor
}

// ModelQuantizations lists the model quantizations from highest to lowest precision.
func ModelQuantizations() []Quantization {
	return []Quantization{F32, F16, Q8, Q6, Q5, Q4, Q3, Q2, GPTQ, AWQ}
}

// KVQuantizations lists the KV cache quantizations from highest to lowest precision.
func KVQuantizations() []Quantization {
	return []Quantization{F32, F16, Q8, Q5, Q4}
}

// IsModelQuantization reports whether q has an entry in the model table.
func IsModelQuantization(q Quantization) bool {
	_, ok := modelFactors[q]
	return ok
}

// IsKVQuantization reports whether q has an entry in the KV table.
func IsKVQuantization(q Quantization) bool {
	_, ok := kvFactors[q]
	return ok
}

// ParseQuantization maps user or file-type spellings onto the enum.
// "q4_k_m", "Q4_0", "MOSTLY_Q4_K_M" and "q4" all yield Q4; "fp16" and "bf16"
// yield F16. The bool is false when nothing matches.
func ParseQuantization(s string) (Quantization, bool) {
	u := strings.ToUpper(strings.TrimSpace(s))
	u = strings.TrimPrefix(strings.TrimPrefix(u, "MOSTLY"), "_")
	u = strings.TrimPrefix(u, "GGML_TYPE_")
	switch u {
	case "":
		return "", false
	case "F32", "FP32":
		return F32, true
	case "F16", "FP16", "BF16":
		return F16, true
	case "GPTQ":
		return GPTQ, true
	case "AWQ":
		return AWQ, true
	}
	if strings.HasPrefix(u, "IQ") {
		u = u[1:]
	}
	if len(u) >= 2 && u[0] == 'Q' {
		q := Quantization(u[:2])
		if IsModelQuantization(q) {
			return q, true
		}
	}
	return "", false
}

// ParseMemoryMode accepts "discrete", "discrete_gpu", "unified", "unified_memory"
// in any case, with '-' or '_' separators.
func ParseMemoryMode(s string) (MemoryMode, bool) {
	u := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	switch u {
	case "DISCRETE", "DISCRETE_GPU", "GPU":
		return DiscreteGPU, true
	case "UNIFIED", "UNIFIED_MEMORY":
		return UnifiedMemory, true
	}
	return "", false
}
