// Package documents holds the filtered-list core of the tax-document view:
// one owned FilterCriteria value, the last successfully fetched page, and the
// status-gated lifecycle transitions (cancel, delete) applied against it.
package documents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alonilk2/accounting-sub001/internal/domain"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

// Destructive actions that require confirmation before touching the backend.
const (
	ActionCancel = "cancel"
	ActionDelete = "delete"
)

// PendingAction is a destructive action awaiting confirmation. At most one
// exists per controller; requesting a new one replaces it.
type PendingAction struct {
	Kind       string // ActionCancel or ActionDelete
	DocumentID string
}

// SearchInput is the free-text/enum/date state of the search form, merged
// into the criteria by Search.
type SearchInput struct {
	Number     string
	CustomerID string
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// ListController owns the criteria, the displayed page and the pending
// destructive action of one document list view. All state behind one mutex;
// the displayed page always reflects the most recently issued query that
// completed (stale responses are discarded by sequence number).
type ListController struct {
	repo repository.DocumentRepository
	log  *logger.Logger

	mu       sync.Mutex
	seq      uint64 // sequence of the latest issued query
	criteria repository.FilterCriteria
	page     repository.PageResult
	loading  bool
	err      error
	pending  *PendingAction
}

// NewListController constructs the controller with the default criteria
// (page 1, document date descending). No query is issued until the first
// operation.
func NewListController(repo repository.DocumentRepository, log *logger.Logger) *ListController {
	return &ListController{
		repo:     repo,
		log:      log.WithComponent("documents.list"),
		criteria: repository.DefaultCriteria(),
	}
}

// SetFilters replaces the active criteria atomically and issues exactly one
// re-query. Invalid criteria are rejected up front and the previous criteria
// remain in effect.
func (c *ListController) SetFilters(ctx context.Context, criteria repository.FilterCriteria) error {
	if err := criteria.Validate(); err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return err
	}
	return c.runQuery(ctx, criteria)
}

// Search merges the current form inputs into the criteria, resets to page 1
// and re-queries. Page size and sort are preserved.
func (c *ListController) Search(ctx context.Context, in SearchInput) error {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()

	criteria.Number = in.Number
	criteria.CustomerID = in.CustomerID
	criteria.Status = in.Status
	criteria.DateFrom = in.DateFrom
	criteria.DateTo = in.DateTo
	criteria.Page = 1
	return c.SetFilters(ctx, criteria)
}

// Clear resets all filters to the defaults (page 1, default sort) and forces
// a re-query.
func (c *ListController) Clear(ctx context.Context) error {
	return c.runQuery(ctx, repository.DefaultCriteria())
}

// ChangePage converts the zero-based page index of the pager widget into the
// 1-based server page and re-queries with the same filters and page size.
func (c *ListController) ChangePage(ctx context.Context, pageIndex int) error {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()

	criteria.Page = pageIndex + 1
	return c.SetFilters(ctx, criteria)
}

// ChangePageSize resets to page 1 with the new size, same filters.
func (c *ListController) ChangePageSize(ctx context.Context, newSize int) error {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()

	criteria.Page = 1
	criteria.PageSize = newSize
	return c.SetFilters(ctx, criteria)
}

// Refresh re-runs the current criteria unchanged.
func (c *ListController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()
	return c.runQuery(ctx, criteria)
}

// runQuery issues one list query tagged with a fresh sequence number. A
// completing query mutates the displayed state only while its sequence is
// still the latest; older responses are logged and dropped. On failure the
// previously displayed rows are retained and the error is surfaced.
func (c *ListController) runQuery(ctx context.Context, criteria repository.FilterCriteria) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.criteria = criteria
	c.loading = true
	c.mu.Unlock()

	res, err := c.repo.List(ctx, criteria)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		c.log.Debug().Uint64("seq", seq).Uint64("latest", c.seq).
			Msg("discarding stale list response")
		return nil
	}
	c.loading = false
	if err != nil {
		c.err = err
		c.log.Warn().Err(err).Int("page", criteria.Page).Msg("list query failed")
		return err
	}
	c.err = nil
	c.page = *res
	c.log.Debug().Int("page", criteria.Page).Int("items", len(res.Items)).
		Int("total", res.TotalCount).Msg("list query completed")
	return nil
}

// RequestCancel opens the cancel confirmation for a document. The PAID
// precondition is enforced by only exposing the action in that state; the
// backend is the authority and re-checks on confirm.
func (c *ListController) RequestCancel(documentID string) {
	c.setPending(ActionCancel, documentID)
}

// RequestDelete opens the delete confirmation. No status precondition on the
// client side.
func (c *ListController) RequestDelete(documentID string) {
	c.setPending(ActionDelete, documentID)
}

func (c *ListController) setPending(kind, documentID string) {
	c.mu.Lock()
	c.pending = &PendingAction{Kind: kind, DocumentID: documentID}
	c.mu.Unlock()
}

// AbortPending closes the confirmation without touching the backend.
func (c *ListController) AbortPending() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
}

// ConfirmPending executes the pending destructive action. On success the
// confirmation closes and the current query is re-issued so the list reflects
// the transition. On failure the error is surfaced and the confirmation stays
// open so the user can retry or abort.
func (c *ListController) ConfirmPending(ctx context.Context) error {
	c.mu.Lock()
	pending := c.pending
	c.mu.Unlock()
	if pending == nil {
		return fmt.Errorf("%w: no action awaiting confirmation", domain.ErrConflict)
	}

	var err error
	switch pending.Kind {
	case ActionCancel:
		err = c.repo.Cancel(ctx, pending.DocumentID)
	case ActionDelete:
		err = c.repo.Delete(ctx, pending.DocumentID)
	default:
		err = fmt.Errorf("%w: unknown action %q", domain.ErrValidation, pending.Kind)
	}
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		c.log.Warn().Err(err).Str("action", pending.Kind).
			Str("document_id", pending.DocumentID).Msg("lifecycle transition failed")
		return err
	}

	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	c.log.Info().Str("action", pending.Kind).
		Str("document_id", pending.DocumentID).Msg("lifecycle transition applied")
	return c.Refresh(ctx)
}

// Criteria returns a copy of the active criteria.
func (c *ListController) Criteria() repository.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Page returns the last successfully fetched page. Retained across failed
// queries until a successful one replaces it.
func (c *ListController) Page() repository.PageResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Loading reports whether a query is in flight.
func (c *ListController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last surfaced error, nil after a successful query.
func (c *ListController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Pending returns the action awaiting confirmation, nil when there is none.
func (c *ListController) Pending() *PendingAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return nil
	}
	p := *c.pending
	return &p
}
