//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "llmcalc/docs" // registers the OpenAPI document with swag
)

// MountSwagger serves the Swagger UI under /swagger/ and the document at
// /swagger/doc.json. Regenerate docs/ with `swag init -g cmd/llmcalc/docs.go`
// after changing handler annotations.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
