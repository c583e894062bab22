package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alonilk2/accounting-sub001/internal/application/dto"
	"github.com/alonilk2/accounting-sub001/internal/infrastructure/memory"
)

// IssuerHandler serves GET /issuer-profile.
type IssuerHandler struct {
	store *memory.Store
}

// NewIssuerHandler constructs the handler.
func NewIssuerHandler(store *memory.Store) *IssuerHandler {
	return &IssuerHandler{store: store}
}

// Get returns the issuer profile, or 404 when none is installed (which the
// client absorbs via its fallback identity).
func (h *IssuerHandler) Get(c *fiber.Ctx) error {
	issuer := h.store.Issuer()
	if issuer == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "issuer profile not configured"})
	}
	return c.JSON(dto.FromIssuer(issuer))
}
