package dto

import (
	"github.com/shopspring/decimal"

	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
)

// Wire shapes of the document backend. Timestamps
// travel as ISO-8601 strings and are normalized into time.Time exactly once,
// via the helpers in normalize.go, when a DTO is converted to an entity.

// DocumentSummary is one row of GET /documents.
type DocumentSummary struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	CustomerName  string          `json:"customer_name"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// DocumentPage is the envelope of GET /documents.
type DocumentPage struct {
	Items      []DocumentSummary `json:"items"`
	TotalCount int               `json:"total_count"`
}

// DocumentLine is one monetary line of a full document record.
type DocumentLine struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Total       decimal.Decimal `json:"total"`
}

// Document is the full record returned by GET /documents/:id.
type Document struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	DueDate       string          `json:"due_date,omitempty"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	Lines         []DocumentLine  `json:"lines"`
	NetTotal      decimal.Decimal `json:"net_total"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at,omitempty"`
	UpdatedAt     string          `json:"updated_at,omitempty"`
}

// IssuerProfile is the record returned by GET /issuer-profile.
type IssuerProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
	Currency  string `json:"currency"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ErrorResponse is the error body of every endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToEntity normalizes the summary's document date and maps to the domain
// projection.
func (d DocumentSummary) ToEntity() (entity.DocumentSummary, error) {
	date, err := ParseTimestamp(d.Date)
	if err != nil {
		return entity.DocumentSummary{}, err
	}
	return entity.DocumentSummary{
		ID:            d.ID,
		Number:        d.Number,
		Date:          date,
		CustomerName:  d.CustomerName,
		Status:        d.Status,
		PaymentMethod: d.PaymentMethod,
		TotalAmount:   d.TotalAmount,
	}, nil
}

// ToEntity normalizes every date-bearing field of the full record: document
// date (required), due date (only if present), created/updated (only if
// present).
func (d Document) ToEntity() (*entity.PrintableDocument, error) {
	date, err := ParseTimestamp(d.Date)
	if err != nil {
		return nil, err
	}
	dueDate, err := ParseOptionalTimestamp(d.DueDate)
	if err != nil {
		return nil, err
	}
	created, err := ParseOptionalTimestamp(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := ParseOptionalTimestamp(d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.DocumentLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, entity.DocumentLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate,
			Total:       l.Total,
		})
	}

	doc := &entity.PrintableDocument{
		ID:            d.ID,
		Number:        d.Number,
		Date:          date,
		DueDate:       dueDate,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		Lines:         lines,
		NetTotal:      d.NetTotal,
		TaxTotal:      d.TaxTotal,
		GrandTotal:    d.GrandTotal,
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
	}
	if created != nil {
		doc.CreatedAt = *created
	}
	if updated != nil {
		doc.UpdatedAt = *updated
	}
	return doc, nil
}

// ToEntity normalizes the issuer's two timestamps and maps to the domain
// profile.
func (p IssuerProfile) ToEntity() (*entity.IssuerProfile, error) {
	created, err := ParseTimestamp(p.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := ParseTimestamp(p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &entity.IssuerProfile{
		ID:        p.ID,
		Name:      p.Name,
		TaxID:     p.TaxID,
		Address:   p.Address,
		Currency:  p.Currency,
		Phone:     p.Phone,
		Email:     p.Email,
		Website:   p.Website,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

// FromSummary maps a domain summary to its wire shape (devserver encode side).
func FromSummary(s entity.DocumentSummary) DocumentSummary {
	return DocumentSummary{
		ID:            s.ID,
		Number:        s.Number,
		Date:          FormatTimestamp(s.Date),
		CustomerName:  s.CustomerName,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		TotalAmount:   s.TotalAmount,
	}
}

// FromDocument maps a full domain record to its wire shape.
func FromDocument(d *entity.PrintableDocument) Document {
	lines := make([]DocumentLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, DocumentLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate,
			Total:       l.Total,
		})
	}
	out := Document{
		ID:            d.ID,
		Number:        d.Number,
		Date:          FormatTimestamp(d.Date),
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		Lines:         lines,
		NetTotal:      d.NetTotal,
		TaxTotal:      d.TaxTotal,
		GrandTotal:    d.GrandTotal,
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
	}
	if d.DueDate != nil {
		out.DueDate = FormatTimestamp(*d.DueDate)
	}
	if !d.CreatedAt.IsZero() {
		out.CreatedAt = FormatTimestamp(d.CreatedAt)
	}
	if !d.UpdatedAt.IsZero() {
		out.UpdatedAt = FormatTimestamp(d.UpdatedAt)
	}
	return out
}

// FromIssuer maps a domain issuer profile to its wire shape.
func FromIssuer(p *entity.IssuerProfile) IssuerProfile {
	return IssuerProfile{
		ID:        p.ID,
		Name:      p.Name,
		TaxID:     p.TaxID,
		Address:   p.Address,
		Currency:  p.Currency,
		Phone:     p.Phone,
		Email:     p.Email,
		Website:   p.Website,
		CreatedAt: FormatTimestamp(p.CreatedAt),
		UpdatedAt: FormatTimestamp(p.UpdatedAt),
	}
}
