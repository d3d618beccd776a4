package main

// General API documentation for swaggo. Generate with `swag init -g cmd/llmcalc/docs.go`.
//
// @title           llmcalc API
// @version         1.0
// @description     HTTP API estimating VRAM, system RAM and disk requirements for running a large language model.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
