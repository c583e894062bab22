package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
)

// Israeli VAT rate used by the fixture documents.
var seedVATRate = decimal.NewFromInt(17)

// NewSeededStore returns a store preloaded with fixture documents and an
// issuer profile, enough to exercise every filter, both lifecycle
// transitions and the print view.
func NewSeededStore() *Store {
	s := NewStore()
	now := time.Now()

	s.SetIssuer(&entity.IssuerProfile{
		ID:        "1",
		Name:      "Northline Trading Ltd.",
		TaxID:     "514293867",
		Address:   "12 Ha'Melacha St, Holon",
		Currency:  "ILS",
		Phone:     "03-5551234",
		Email:     "billing@northline.co.il",
		Website:   "www.northline.co.il",
		CreatedAt: now.AddDate(-2, 0, 0),
		UpdatedAt: now.AddDate(0, -1, 0),
	})

	fixtures := []struct {
		id, number, customerID, customerName, status, payment string
		daysAgo                                               int
		net                                                   string
		dueInDays                                             *int
	}{
		{"11", "1001", "c-100", "Rimon Catering", entity.StatusPaid, entity.PaymentCredit, 3, "150.00", nil},
		{"12", "1002", "c-101", "Galil Hardware", entity.StatusPaid, entity.PaymentTransfer, 7, "820.50", intPtr(30)},
		{"13", "1003", "c-100", "Rimon Catering", entity.StatusCancelled, entity.PaymentCash, 12, "96.00", nil},
		{"14", "1004", "c-102", "Dekel Office Supply", entity.StatusPaid, entity.PaymentCheck, 20, "1240.00", intPtr(14)},
		{"15", "1005", "c-103", "Aviv Motors", entity.StatusPaid, entity.PaymentCredit, 31, "3310.75", nil},
		{"16", "2001", "c-101", "Galil Hardware", entity.StatusCancelled, entity.PaymentTransfer, 45, "410.00", nil},
	}

	for _, f := range fixtures {
		net, _ := decimal.NewFromString(f.net)
		tax := net.Mul(seedVATRate).Div(decimal.NewFromInt(100)).Round(2)
		date := now.AddDate(0, 0, -f.daysAgo)

		doc := &entity.PrintableDocument{
			ID:           f.id,
			Number:       f.number,
			Date:         date,
			CustomerID:   f.customerID,
			CustomerName: f.customerName,
			Lines: []entity.DocumentLine{
				{
					Description: "Goods and services",
					Quantity:    decimal.NewFromInt(1),
					UnitPrice:   net,
					TaxRate:     seedVATRate,
					Total:       net,
				},
			},
			NetTotal:      net,
			TaxTotal:      tax,
			GrandTotal:    net.Add(tax),
			PaymentMethod: f.payment,
			Status:        f.status,
			CreatedAt:     date,
			UpdatedAt:     date,
		}
		if f.dueInDays != nil {
			due := date.AddDate(0, 0, *f.dueInDays)
			doc.DueDate = &due
		}
		s.Put(doc)
	}
	return s
}

func intPtr(n int) *int { return &n }
