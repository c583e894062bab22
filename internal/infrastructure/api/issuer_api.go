package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alonilk2/accounting-sub001/internal/application/dto"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
)

var _ repository.IssuerRepository = (*Client)(nil)

// Get executes GET /issuer-profile and normalizes its two timestamps. Any
// failure here is non-fatal to callers; the assembler substitutes the
// fallback identity.
func (c *Client) Get(ctx context.Context) (*entity.IssuerProfile, error) {
	var record dto.IssuerProfile
	if err := c.do(ctx, http.MethodGet, "/issuer-profile", &record); err != nil {
		return nil, err
	}
	issuer, err := record.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("api: issuer profile: %w", err)
	}
	return issuer, nil
}
