package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alonilk2/accounting-sub001/internal/application/dto"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
)

var _ repository.DocumentRepository = (*Client)(nil)

// List executes GET /documents with the criteria encoded as query
// parameters and normalizes every summary's document date.
func (c *Client) List(ctx context.Context, criteria repository.FilterCriteria) (*repository.PageResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	var page dto.DocumentPage
	path := "/documents?" + encodeQuery(criteria).Encode()
	if err := c.do(ctx, http.MethodGet, path, &page); err != nil {
		return nil, err
	}

	items := make([]entity.DocumentSummary, 0, len(page.Items))
	for _, it := range page.Items {
		summary, err := it.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("api: document %s: %w", it.ID, err)
		}
		items = append(items, summary)
	}
	c.log.Debug().Int("items", len(items)).Int("total", page.TotalCount).
		Int("page", criteria.Page).Msg("documents listed")
	return &repository.PageResult{Items: items, TotalCount: page.TotalCount}, nil
}

// GetByID executes GET /documents/:id and normalizes every date-bearing
// field of the record.
func (c *Client) GetByID(ctx context.Context, id string) (*entity.PrintableDocument, error) {
	var record dto.Document
	if err := c.do(ctx, http.MethodGet, "/documents/"+id, &record); err != nil {
		return nil, err
	}
	doc, err := record.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("api: document %s: %w", id, err)
	}
	return doc, nil
}

// Cancel executes POST /documents/:id/cancel. No body is required either
// way; idempotency is not assumed.
func (c *Client) Cancel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/documents/"+id+"/cancel", nil)
}

// Delete executes DELETE /documents/:id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/documents/"+id, nil)
}
