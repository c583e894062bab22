package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alonilk2/accounting-sub001/internal/domain"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
)

// Criteria violations, all classified as validation errors.
var (
	ErrInvalidPage       = fmt.Errorf("%w: page must be >= 1", domain.ErrValidation)
	ErrInvalidPageSize   = fmt.Errorf("%w: page size must be positive", domain.ErrValidation)
	ErrInvertedDateRange = fmt.Errorf("%w: date range start is after its end", domain.ErrValidation)
)

// Sort fields accepted by the list endpoint.
const (
	SortByDate   = "date"
	SortByNumber = "number"
	SortByTotal  = "total"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPageSize applied when the caller does not choose one.
const DefaultPageSize = 25

// FilterCriteria combines the filter, sort and pagination parameters of one
// list query. Zero-valued optional fields are omitted from the outgoing
// request, not sent empty.
type FilterCriteria struct {
	Number     string     // substring match on document number
	CustomerID string     // exact match
	Status     string     // entity.Status* or empty for all
	DateFrom   *time.Time // inclusive
	DateTo     *time.Time // inclusive
	Page       int        // 1-based
	PageSize   int
	SortBy     string // Sort* field constants
	SortDir    string // SortAsc or SortDesc
}

// DefaultCriteria returns the criteria active at controller mount: page 1,
// default page size, document date descending, no filters.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Page:     1,
		PageSize: DefaultPageSize,
		SortBy:   SortByDate,
		SortDir:  SortDesc,
	}
}

// Validate enforces the criteria invariants: page ≥ 1, positive page size,
// and DateFrom ≤ DateTo when both are present.
func (c FilterCriteria) Validate() error {
	if c.Page < 1 {
		return ErrInvalidPage
	}
	if c.PageSize < 1 {
		return ErrInvalidPageSize
	}
	if c.DateFrom != nil && c.DateTo != nil && c.DateFrom.After(*c.DateTo) {
		return ErrInvertedDateRange
	}
	return nil
}

// PageResult is one page of document summaries in server-assigned order.
// Invariants: len(Items) ≤ PageSize of the originating criteria and
// len(Items) ≤ TotalCount.
type PageResult struct {
	Items      []entity.DocumentSummary
	TotalCount int
}

// DocumentRepository is the outbound port to the document backend. The
// concrete implementation is an HTTP adapter; tests inject fakes.
type DocumentRepository interface {
	// List executes one list query and returns the matching page.
	List(ctx context.Context, criteria FilterCriteria) (*PageResult, error)
	// GetByID fetches the full printable record of one document.
	GetByID(ctx context.Context, id string) (*entity.PrintableDocument, error)
	// Cancel transitions a document to CANCELLED and releases its stock
	// reservations. The backend enforces the PAID precondition.
	Cancel(ctx context.Context, id string) error
	// Delete removes the document regardless of status.
	Delete(ctx context.Context, id string) error
}

// IssuerRepository is the outbound port for the issuer identity printed on
// documents. Get failing is an expected degradation; callers substitute the
// fallback literal.
type IssuerRepository interface {
	Get(ctx context.Context) (*entity.IssuerProfile, error)
}
