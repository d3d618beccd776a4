package service

import (
	"llmcalc/internal/estimator"
	"llmcalc/pkg/types"
)

func renderInput(in estimator.Input) types.EstimateInput {
	return types.EstimateInput{
		ParamsBillions: in.Model.ParamsBillions,
		ModelQuant:     string(in.Model.Quantization),
		ContextLength:  in.Model.ContextLength,
		UseKVCache:     in.KVCache.Enabled,
		KVCacheQuant:   string(in.KVCache.Quantization),
		MemoryMode:     string(in.Hardware.MemoryMode),
		SystemMemoryGB: in.Hardware.SystemMemoryGB,
	}
}

func renderResult(in estimator.Input, res estimator.Result) types.EstimateResponse {
	ri := renderInput(in)
	ri.ModelQuant = string(res.Quantization)
	return types.EstimateResponse{
		Input:          ri,
		RequiredVRAMGB: res.RequiredVRAMGB,
		OnDiskSizeGB:   res.OnDiskSizeGB,
		Recommendation: types.Recommendation{
			GPUType:           res.Recommendation.GPUType,
			VRAMNeededGB:      res.Recommendation.VRAMNeededGB,
			FitsUnified:       res.Recommendation.FitsUnified,
			SystemRAMNeededGB: res.Recommendation.SystemRAMNeededGB,
			GPUsRequired:      res.Recommendation.GPUsRequired,
		},
		Breakdown: types.Breakdown{
			BaseModelGB:  res.Breakdown.BaseModelGB,
			ContextScale: res.Breakdown.ContextScale,
			ModelMemGB:   res.Breakdown.ModelMemGB,
			KVCacheGB:    res.Breakdown.KVCacheGB,
		},
	}
}

func renderCatalog(cat []estimator.QuantInfo) []types.QuantizationInfo {
	out := make([]types.QuantizationInfo, 0, len(cat))
	for _, qi := range cat {
		out = append(out, types.QuantizationInfo{
			Name:         string(qi.Quantization),
			ModelFactor:  qi.ModelFactor,
			KVFactor:     qi.KVFactor,
			BitsPerParam: qi.BitsPerParam,
		})
	}
	return out
}
