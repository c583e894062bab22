package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alonilk2/accounting-sub001/internal/domain"
)

func TestParseTimestamp_AcceptedLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-06-30T12:00:00Z", time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)},
		{"2026-06-30T12:00:00.250Z", time.Date(2026, 6, 30, 12, 0, 0, 250_000_000, time.UTC)},
		{"2026-06-30", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseTimestamp(c.in)
		require.NoError(t, err, c.in)
		assert.True(t, got.Equal(c.want), "parsing %s", c.in)
	}
}

func TestParseTimestamp_RejectsGarbage(t *testing.T) {
	_, err := ParseTimestamp("30/06/2026")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ParseTimestamp("")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseOptionalTimestamp_EmptyIsAbsent(t *testing.T) {
	got, err := ParseOptionalTimestamp("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalTimestamp("2026-06-30")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestDocumentToEntity_NormalizesEveryDateField(t *testing.T) {
	record := Document{
		ID:        "doc-1",
		Number:    "1001",
		Date:      "2026-06-30T00:00:00Z",
		DueDate:   "2026-07-31",
		CreatedAt: "2026-06-30T09:15:00Z",
		UpdatedAt: "2026-07-01T08:00:00Z",
	}

	doc, err := record.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, 2026, doc.Date.Year())
	require.NotNil(t, doc.DueDate)
	assert.Equal(t, time.July, doc.DueDate.Month())
	assert.False(t, doc.CreatedAt.IsZero())
	assert.False(t, doc.UpdatedAt.IsZero())
}

func TestDocumentToEntity_OptionalFieldsMayBeAbsent(t *testing.T) {
	record := Document{ID: "doc-2", Number: "1002", Date: "2026-06-01"}

	doc, err := record.ToEntity()
	require.NoError(t, err)
	assert.Nil(t, doc.DueDate)
	assert.True(t, doc.CreatedAt.IsZero())
}

func TestDocumentToEntity_MissingRequiredDateFails(t *testing.T) {
	record := Document{ID: "doc-3", Number: "1003"}
	_, err := record.ToEntity()
	assert.ErrorIs(t, err, domain.ErrValidation)
}
