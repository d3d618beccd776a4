// Package estimator maps a model/hardware description to VRAM, system RAM and
// on-disk size estimates. It is organized by concern:
//
//   - types.go: Input, Result, Recommendation and the enum types.
//   - quant.go: quantization factor tables and string parsing.
//   - vram.go: context scaling and the required-VRAM formula.
//   - recommend.go: hardware recommendation for discrete GPUs and unified memory.
//   - disk.go: on-disk weight file size.
//   - estimate.go: Estimate/Compare entry points.
//   - validate.go: range checks used by callers before invoking Estimate.
//
// Every function here is pure: no I/O, no shared state, no errors. Unknown
// enum values degrade to documented defaults instead of failing.
package estimator
