// Package service sits between the CLI/HTTP surfaces and the estimator. It
// fills request defaults, parses enum strings, validates ranges, runs the
// estimator and renders results into pkg/types DTOs.
//
//   - service.go: Service type, constructor, registry refresh, status.
//   - config.go: Config and package defaults.
//   - errors.go: error types and Is* helpers.
//   - resolve.go: request -> estimator.Input mapping.
//   - render.go: estimator.Result -> types.EstimateResponse.
package service
