package cli

import (
	"github.com/spf13/cobra"

	"llmcalc/pkg/types"
)

// estimateFlags mirrors types.EstimateRequest. Only flags set on the command
// line are copied into the request; the rest take the configured defaults.
type estimateFlags struct {
	params       float64
	quant        string
	context      int
	kvCache      bool
	kvQuant      string
	memoryMode   string
	systemMemory float64
}

func (f *estimateFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64VarP(&f.params, "params", "p", 0, "Model size in billions of parameters (1-1000)")
	fs.StringVarP(&f.quant, "quant", "q", "", "Weight quantization: F32|F16|Q8|Q6|Q5|Q4|Q3|Q2|GPTQ|AWQ")
	fs.IntVarP(&f.context, "context", "c", 0, "Context length in tokens (128-32768)")
	fs.BoolVar(&f.kvCache, "kv-cache", true, "Count the KV cache")
	fs.StringVar(&f.kvQuant, "kv-quant", "", "KV cache quantization: F32|F16|Q8|Q5|Q4")
	fs.StringVarP(&f.memoryMode, "memory-mode", "m", "", "Memory architecture: discrete|unified")
	fs.Float64Var(&f.systemMemory, "system-memory", 0, "Installed system memory in GB (8-512)")
}

func (f *estimateFlags) request(cmd *cobra.Command) types.EstimateRequest {
	fs := cmd.Flags()
	var req types.EstimateRequest
	if fs.Changed("params") {
		v := f.params
		req.ParamsBillions = &v
	}
	if fs.Changed("context") {
		v := f.context
		req.ContextLength = &v
	}
	if fs.Changed("kv-cache") {
		v := f.kvCache
		req.UseKVCache = &v
	}
	if fs.Changed("system-memory") {
		v := f.systemMemory
		req.SystemMemoryGB = &v
	}
	req.ModelQuant = f.quant
	req.KVCacheQuant = f.kvQuant
	req.MemoryMode = f.memoryMode
	return req
}
