package dto

import (
	"fmt"
	"time"

	"github.com/alonilk2/accounting-sub001/internal/domain"
)

// Accepted wire layouts, tried in order. The backend emits RFC 3339; some
// date-only fields arrive without a time component.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp converts a wire timestamp string into a time value. Every
// date-bearing field of every fetched record goes through here; there is no
// per-field inline parsing anywhere else.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", domain.ErrValidation, s)
}

// ParseOptionalTimestamp is ParseTimestamp for fields that may be absent;
// an empty string yields nil without error.
func ParseOptionalTimestamp(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatTimestamp is the single encode-side counterpart of ParseTimestamp.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
