package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alonilk2/accounting-sub001/internal/infrastructure/memory"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Store *memory.Store
	Log   *logger.Logger
	// WithIssuer mounts /issuer-profile. Leaving it off exercises the
	// client's fallback identity path.
	WithIssuer bool
}

// Router registers the development backend routes. Paths match the external
// contract exactly; no /api prefix.
func Router(app *fiber.App, deps RouterDeps) {
	documentHandler := NewDocumentHandler(deps.Store, deps.Log)
	documents := app.Group("/documents")
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Post("/:id/cancel", documentHandler.Cancel)
	documents.Delete("/:id", documentHandler.Delete)

	if deps.WithIssuer {
		issuerHandler := NewIssuerHandler(deps.Store)
		app.Get("/issuer-profile", issuerHandler.Get)
	}
}
