package service

import (
	"fmt"

	"llmcalc/internal/estimator"
	"llmcalc/pkg/types"
)

// resolve merges req over defaults and converts it to an estimator.Input.
func resolve(req types.EstimateRequest, d Defaults) (estimator.Input, error) {
	params := d.ParamsBillions
	if req.ParamsBillions != nil {
		params = *req.ParamsBillions
	}
	ctx := d.ContextLength
	if req.ContextLength != nil {
		ctx = *req.ContextLength
	}
	useKV := d.UseKVCache
	if req.UseKVCache != nil {
		useKV = *req.UseKVCache
	}
	sysMem := d.SystemMemoryGB
	if req.SystemMemoryGB != nil {
		sysMem = *req.SystemMemoryGB
	}

	mq, err := parseQuant("model_quant", firstNonEmpty(req.ModelQuant, d.ModelQuant))
	if err != nil {
		return estimator.Input{}, err
	}
	kq, err := parseQuant("kv_cache_quant", firstNonEmpty(req.KVCacheQuant, d.KVCacheQuant))
	if err != nil && useKV {
		return estimator.Input{}, err
	}
	if !useKV && !estimator.IsKVQuantization(kq) {
		// ignored by the estimator when the cache is off
		var ok bool
		if kq, ok = estimator.ParseQuantization(d.KVCacheQuant); !ok || !estimator.IsKVQuantization(kq) {
			kq = estimator.F16
		}
	}
	modeStr := firstNonEmpty(req.MemoryMode, d.MemoryMode)
	mode, ok := estimator.ParseMemoryMode(modeStr)
	if !ok {
		return estimator.Input{}, invalidInputError{err: fmt.Errorf("memory_mode: unknown value %q", modeStr)}
	}

	in := estimator.Input{
		Model:    estimator.ModelConfig{ParamsBillions: params, Quantization: mq, ContextLength: ctx},
		KVCache:  estimator.KVCacheConfig{Enabled: useKV, Quantization: kq},
		Hardware: estimator.HardwareConfig{MemoryMode: mode, SystemMemoryGB: sysMem},
	}
	if err := in.Validate(); err != nil {
		return estimator.Input{}, invalidInputError{err: err}
	}
	return in, nil
}

func parseQuant(field, s string) (estimator.Quantization, error) {
	q, ok := estimator.ParseQuantization(s)
	if !ok {
		return "", invalidInputError{err: fmt.Errorf("%s: unknown value %q", field, s)}
	}
	return q, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
