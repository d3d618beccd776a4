package estimator

// Estimate computes the VRAM requirement, disk size and hardware recommendation.
// It performs no validation; see Input.Validate.
func Estimate(in Input) Result {
	b := breakdown(in.Model, in.KVCache)
	required := b.ModelMemGB + b.KVCacheGB
	return Result{
		Quantization:   in.Model.Quantization,
		RequiredVRAMGB: required,
		OnDiskSizeGB:   OnDiskSizeGB(in.Model),
		Recommendation: Recommend(required, in.Hardware),
		Breakdown:      b,
	}
}

// Compare evaluates in once per model quantization, in ModelQuantizations order.
func Compare(in Input) []Result {
	quants := ModelQuantizations()
	out := make([]Result, 0, len(quants))
	for _, q := range quants {
		v := in
		v.Model.Quantization = q
		out = append(out, Estimate(v))
	}
	return out
}

// QuantInfo summarizes one quantization for listings.
type QuantInfo struct {
	Quantization Quantization
	ModelFactor  float64
	// KVFactor is zero when the quantization is not offered for the KV cache.
	KVFactor     float64
	BitsPerParam float64
}

// Catalog returns QuantInfo for every model quantization.
func Catalog() []QuantInfo {
	quants := ModelQuantizations()
	out := make([]QuantInfo, 0, len(quants))
	for _, q := range quants {
		qi := QuantInfo{Quantization: q, ModelFactor: ModelFactor(q), BitsPerParam: BitsPerParam(q)}
		if IsKVQuantization(q) {
			qi.KVFactor = KVFactor(q)
		}
		out = append(out, qi)
	}
	return out
}
