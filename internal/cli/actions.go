package cli

import "llmcalc/internal/registry"

// Indirection layer to allow stubbing in tests

var (
	fnScan  = registry.LoadDir
	fnServe = serve
)
