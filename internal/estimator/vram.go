package estimator

const (
	// ReferenceContextTokens is the context length at which ContextScale is 1.
	ReferenceContextTokens = 2048
	// KVCacheOverheadRatio is the KV cache size relative to the weights at the reference context.
	KVCacheOverheadRatio = 0.2
)

// ContextScale returns max(1, ctx/2048). Short contexts never go below baseline.
func ContextScale(contextLength int) float64 {
	s := float64(contextLength) / ReferenceContextTokens
	if s < 1 {
		return 1
	}
	return s
}

// RequiredVRAMGB returns the unrounded VRAM requirement in GB.
func RequiredVRAMGB(model ModelConfig, kv KVCacheConfig) float64 {
	b := breakdown(model, kv)
	return b.ModelMemGB + b.KVCacheGB
}

func breakdown(model ModelConfig, kv KVCacheConfig) Breakdown {
	scale := ContextScale(model.ContextLength)
	base := model.ParamsBillions * ModelFactor(model.Quantization)
	var kvMem float64
	if kv.Enabled {
		kvMem = model.ParamsBillions * KVFactor(kv.Quantization) * scale * KVCacheOverheadRatio
	}
	return Breakdown{
		BaseModelGB:  base,
		ContextScale: scale,
		ModelMemGB:   base * scale,
		KVCacheGB:    kvMem,
	}
}
