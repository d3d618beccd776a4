package estimator

import "math"

const (
	// UnifiedMemoryCeiling is the share of unified memory usable as graphics memory.
	UnifiedMemoryCeiling = 0.75
	// DiscreteGPUCapacityGB is the VRAM of one discrete GPU.
	DiscreteGPUCapacityGB = 24
)

// GPU type labels reported in Recommendation.GPUType.
const (
	LabelUnified             = "Unified memory"
	LabelUnifiedInsufficient = "Unified memory (insufficient)"
	LabelSingleGPU           = "Single 24GB GPU"
	LabelMultiGPU            = "Multiple 24GB GPUs"
)

// Recommend picks hardware for the given VRAM requirement. Any memory mode
// other than UnifiedMemory is handled as DiscreteGPU.
func Recommend(requiredVRAMGB float64, hw HardwareConfig) Recommendation {
	rec := Recommendation{VRAMNeededGB: roundTenth(requiredVRAMGB)}
	if hw.MemoryMode == UnifiedMemory {
		rec.SystemRAMNeededGB = hw.SystemMemoryGB
		if requiredVRAMGB <= hw.SystemMemoryGB*UnifiedMemoryCeiling {
			rec.FitsUnified = true
			rec.GPUsRequired = 1
			rec.GPUType = LabelUnified
		} else {
			rec.GPUType = LabelUnifiedInsufficient
		}
		return rec
	}

	rec.SystemRAMNeededGB = math.Max(hw.SystemMemoryGB, requiredVRAMGB)
	if requiredVRAMGB <= DiscreteGPUCapacityGB {
		rec.GPUsRequired = 1
		rec.GPUType = LabelSingleGPU
		return rec
	}
	rec.GPUsRequired = int(math.Ceil(requiredVRAMGB / DiscreteGPUCapacityGB))
	rec.GPUType = LabelMultiGPU
	return rec
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
