// Package http exposes the development backend over fiber. The routes and
// bodies mirror the external contract the client adapter is written against,
// so the CLI can run end to end without the real backend.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alonilk2/accounting-sub001/internal/application/dto"
	"github.com/alonilk2/accounting-sub001/internal/domain"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
	"github.com/alonilk2/accounting-sub001/internal/infrastructure/memory"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

// DocumentHandler serves the document endpoints from the in-memory store.
type DocumentHandler struct {
	store *memory.Store
	log   *logger.Logger
}

// NewDocumentHandler constructs the handler.
func NewDocumentHandler(store *memory.Store, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{store: store, log: log.WithComponent("devserver.documents")}
}

// List handles GET /documents.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	page, err := h.store.List(criteria)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]dto.DocumentSummary, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, dto.FromSummary(it))
	}
	return c.JSON(dto.DocumentPage{Items: items, TotalCount: page.TotalCount})
}

// GetByID handles GET /documents/:id.
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.store.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromDocument(doc))
}

// Cancel handles POST /documents/:id/cancel. Rejects non-PAID documents with
// a validation error, like the real backend.
func (h *DocumentHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.Cancel(id); err != nil {
		return writeError(c, err)
	}
	h.log.Info().Str("document_id", id).Msg("document cancelled, reservations released")
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete handles DELETE /documents/:id.
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.Delete(id); err != nil {
		return writeError(c, err)
	}
	h.log.Info().Str("document_id", id).Msg("document deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

// parseCriteria maps the query string onto FilterCriteria. Absent optional
// parameters stay zero-valued.
func parseCriteria(c *fiber.Ctx) (repository.FilterCriteria, error) {
	criteria := repository.FilterCriteria{
		Number:     c.Query("number"),
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		Page:       c.QueryInt("page", 1),
		PageSize:   c.QueryInt("page_size", repository.DefaultPageSize),
		SortBy:     c.Query("sort_by", repository.SortByDate),
		SortDir:    c.Query("sort_dir", repository.SortDesc),
	}

	from, err := dto.ParseOptionalTimestamp(c.Query("date_from"))
	if err != nil {
		return criteria, err
	}
	to, err := dto.ParseOptionalTimestamp(c.Query("date_to"))
	if err != nil {
		return criteria, err
	}
	criteria.DateFrom = from
	criteria.DateTo = to
	return criteria, criteria.Validate()
}

// writeError maps domain errors onto the contract's status codes and
// {"code","message"} body.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
