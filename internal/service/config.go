package service

import (
	"llmcalc/internal/estimator"
	"llmcalc/pkg/types"
)

// Defaults applied when corresponding Config.Defaults fields are unset.
const (
	defaultParamsBillions = 7
	defaultContextLength  = estimator.ReferenceContextTokens
	defaultSystemMemoryGB = 32
)

// Defaults are the fallback inputs for requests that omit fields.
type Defaults struct {
	ParamsBillions float64
	ModelQuant     string
	ContextLength  int
	UseKVCache     bool
	KVCacheQuant   string
	MemoryMode     string
	SystemMemoryGB float64
}

// Config encapsulates all tunables for Service construction.
type Config struct {
	Registry  []types.Model
	ModelsDir string
	// Scan refreshes Registry from ModelsDir; nil disables rescans.
	Scan     func(dir string) ([]types.Model, error)
	Defaults Defaults
}

func (d Defaults) withFallbacks() Defaults {
	if d.ParamsBillions <= 0 {
		d.ParamsBillions = defaultParamsBillions
	}
	if d.ModelQuant == "" {
		d.ModelQuant = string(estimator.Q4)
	}
	if d.ContextLength <= 0 {
		d.ContextLength = defaultContextLength
	}
	if d.KVCacheQuant == "" {
		d.KVCacheQuant = string(estimator.F16)
	}
	if d.MemoryMode == "" {
		d.MemoryMode = string(estimator.DiscreteGPU)
	}
	if d.SystemMemoryGB <= 0 {
		d.SystemMemoryGB = defaultSystemMemoryGB
	}
	return d
}
