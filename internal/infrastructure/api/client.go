// Package api is the HTTP adapter to the accounting backend. It implements
// the document and issuer ports, builds canonical query strings from the
// filter criteria, and maps transport/status failures onto the domain error
// taxonomy.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alonilk2/accounting-sub001/internal/application/dto"
	"github.com/alonilk2/accounting-sub001/internal/domain"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

// Date-range query parameters travel as calendar dates, not instants.
const wireDateLayout = "2006-01-02"

// Client talks to the document backend over HTTP. It implements
// repository.DocumentRepository and repository.IssuerRepository.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient constructs the adapter. baseURL has no trailing slash; timeout
// bounds every call end to end.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithComponent("api.client"),
	}
}

// do issues one request and decodes a 2xx JSON body into out (skipped when
// out is nil). Failures map onto the domain taxonomy:
//
//	network failure      -> domain.ErrTransport
//	404                  -> domain.ErrNotFound
//	400 / 422            -> domain.ErrValidation (server message preserved)
//	any other non-2xx    -> domain.ErrTransport
func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s %s: %v", domain.ErrTransport, method, path, err)
		}
		return nil
	}

	msg := readErrorMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s: %s", domain.ErrNotFound, method, path, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	default:
		return fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrTransport, method, path, resp.StatusCode, msg)
	}
}

// readErrorMessage extracts the {"code","message"} body of a failed call,
// falling back to the raw body.
func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return "no error body"
	}
	var e dto.ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}

// encodeQuery builds the canonical query string of one list request. Absent
// optional fields are omitted, never sent empty.
func encodeQuery(criteria repository.FilterCriteria) url.Values {
	q := url.Values{}
	if criteria.Number != "" {
		q.Set("number", criteria.Number)
	}
	if criteria.CustomerID != "" {
		q.Set("customer_id", criteria.CustomerID)
	}
	if criteria.Status != "" {
		q.Set("status", criteria.Status)
	}
	if criteria.DateFrom != nil {
		q.Set("date_from", criteria.DateFrom.Format(wireDateLayout))
	}
	if criteria.DateTo != nil {
		q.Set("date_to", criteria.DateTo.Format(wireDateLayout))
	}
	q.Set("page", fmt.Sprint(criteria.Page))
	q.Set("page_size", fmt.Sprint(criteria.PageSize))
	if criteria.SortBy != "" {
		q.Set("sort_by", criteria.SortBy)
	}
	if criteria.SortDir != "" {
		q.Set("sort_dir", criteria.SortDir)
	}
	return q
}
