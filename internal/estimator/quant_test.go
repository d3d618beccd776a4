package estimator

import "testing"

func TestFactorTables(t *testing.T) {
	model := map[Quantization]float64{F32: 4, F16: 2, Q8: 1, Q6: 0.75, Q5: 0.625, Q4: 0.5, Q3: 0.375, Q2: 0.25, GPTQ: 0.4, AWQ: 0.35}
	for q, want := range model {
		if got := ModelFactor(q); got != want {
			t.Fatalf("ModelFactor(%s)=%v, want %v", q, got, want)
		}
	}
	kv := map[Quantization]float64{F32: 4, F16: 2, Q8: 1, Q5: 0.625, Q4: 0.5}
	for q, want := range kv {
		if got := KVFactor(q); got != want {
			t.Fatalf("KVFactor(%s)=%v, want %v", q, got, want)
		}
	}
}

func TestFactorFallback(t *testing.T) {
	for _, q := range []Quantization{"", "Q7", "int8", "q4"} {
		if ModelFactor(q) != 1 || KVFactor(q) != 1 {
			t.Fatalf("fallback for %q should be 1.0", q)
		}
	}
	// model-only quants fall back in the KV table
	if KVFactor(Q6) != 1 || KVFactor(GPTQ) != 1 {
		t.Fatalf("KV table must not contain Q6/GPTQ")
	}
}

func TestParseQuantization(t *testing.T) {
	cases := map[string]Quantization{
		"f32":           F32,
		"FP16":          F16,
		"bf16":          F16,
		" q8 ":          Q8,
		"Q8_0":          Q8,
		"Q6_K":          Q6,
		"q5_k_s":        Q5,
		"Q4_K_M":        Q4,
		"MOSTLY_Q4_K_M": Q4,
		"IQ4_XS":        Q4,
		"Q3_K_L":        Q3,
		"q2_k":          Q2,
		"gptq":          GPTQ,
		"AWQ":           AWQ,
	}
	for in, want := range cases {
		got, ok := ParseQuantization(in)
		if !ok || got != want {
			t.Fatalf("ParseQuantization(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	for _, bad := range []string{"", "Q1", "Q9", "int4", "x"} {
		if _, ok := ParseQuantization(bad); ok {
			t.Fatalf("ParseQuantization(%q) should fail", bad)
		}
	}
}

func TestParseMemoryMode(t *testing.T) {
	cases := map[string]MemoryMode{
		"discrete":       DiscreteGPU,
		"DISCRETE_GPU":   DiscreteGPU,
		"discrete-gpu":   DiscreteGPU,
		"unified":        UnifiedMemory,
		"Unified_Memory": UnifiedMemory,
	}
	for in, want := range cases {
		if got, ok := ParseMemoryMode(in); !ok || got != want {
			t.Fatalf("ParseMemoryMode(%q)=%q,%v", in, got, ok)
		}
	}
	if _, ok := ParseMemoryMode("cloud"); ok {
		t.Fatalf("expected failure")
	}
}
