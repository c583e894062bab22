package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lifecycle statuses of a tax document. PAID → CANCELLED is the only
// permitted status transition; CANCELLED is terminal. Deletion is a separate
// destructive operation, not a status.
const (
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// Payment methods as stored on the document.
const (
	PaymentCash     = "CASH"
	PaymentCredit   = "CREDIT"
	PaymentTransfer = "TRANSFER"
	PaymentCheck    = "CHECK"
)

// DocumentSummary is the read-only list projection of a tax document.
// Collections of summaries are replaced wholesale on every query, never
// patched in place.
type DocumentSummary struct {
	ID            string
	Number        string
	Date          time.Time
	CustomerName  string
	Status        string // see Status* constants
	PaymentMethod string // see Payment* constants
	TotalAmount   decimal.Decimal
}

// CanCancel reports whether the cancel action is offered for this document.
// The backend remains the authority; this only gates the UI.
func (d DocumentSummary) CanCancel() bool {
	return d.Status == StatusPaid
}

// DocumentLine is one monetary line of a printable document.
type DocumentLine struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // percentage, e.g. 17 for 17% VAT
	Total       decimal.Decimal
}

// PrintableDocument is the full detail record used by the print view.
// All date fields are typed values; wire timestamps are normalized before
// the entity is constructed. Immutable for the lifetime of one print session.
type PrintableDocument struct {
	ID            string
	Number        string
	Date          time.Time
	DueDate       *time.Time // nil when the document has no due date
	CustomerID    string
	CustomerName  string
	Lines         []DocumentLine
	NetTotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	GrandTotal    decimal.Decimal
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
