package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alonilk2/accounting-sub001/internal/domain"
)

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, DefaultPageSize, c.PageSize)
	assert.Equal(t, SortByDate, c.SortBy)
	assert.Equal(t, SortDesc, c.SortDir)
	assert.Empty(t, c.Number)
	assert.Nil(t, c.DateFrom)
	assert.Nil(t, c.DateTo)
	require.NoError(t, c.Validate())
}

func TestValidate_PageBounds(t *testing.T) {
	c := DefaultCriteria()
	c.Page = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidPage)
	assert.ErrorIs(t, c.Validate(), domain.ErrValidation)

	c = DefaultCriteria()
	c.PageSize = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidPageSize)
}

func TestValidate_DateRange(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	c := DefaultCriteria()
	c.DateFrom = &from
	c.DateTo = &to
	assert.ErrorIs(t, c.Validate(), ErrInvertedDateRange)

	// Equal bounds are a valid single-day range.
	c.DateTo = &from
	assert.NoError(t, c.Validate())

	// Open-ended ranges are fine.
	c.DateTo = nil
	assert.NoError(t, c.Validate())
}
