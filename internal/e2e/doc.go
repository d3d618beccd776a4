// Package e2e holds end-to-end tests that exercise the registry, service and
// HTTP layers together, plus black-box tests against the built binary.
package e2e
